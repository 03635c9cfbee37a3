package api

import "net/http"

// HealthzHandler handles GET /healthz.
// Always returns 200 OK with {"status":"ok"}; the engine has no
// downstream dependency to probe beyond the recursive resolvers.
func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
