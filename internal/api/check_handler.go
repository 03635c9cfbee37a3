package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/mxverify/internal/logger"
)

// CheckHandler handles POST /check.
// The request body is a JSON array of address strings; the response is a
// JSON object mapping each non-empty address to its status message.
func CheckHandler(checker Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var addresses []string
		if err := json.NewDecoder(r.Body).Decode(&addresses); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				respondError(w, http.StatusBadRequest, "expected a JSON array of strings")
			} else {
				respondError(w, http.StatusBadRequest, "invalid JSON")
			}
			return
		}

		results := checker.CheckAll(r.Context(), addresses)

		log := logger.FromContext(r.Context())
		log.Info().
			Int("addresses", len(addresses)).
			Int("results", len(results)).
			Msg("batch check completed")

		response := make(map[string]string, len(results))
		for _, res := range results {
			response[res.Address] = res.Status.Message()
		}

		respondJSON(w, http.StatusOK, response)
	}
}
