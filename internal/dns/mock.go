package dns

import (
	"context"
	"slices"
)

// MockResolver is a Resolver used for testing.
// Set MX records in the MX field, which maps FQDNs (with trailing dot) to
// records. Names absent from every field resolve as NXDOMAIN.
type MockResolver struct {
	// MX maps FQDNs to their mail exchangers. A name mapped to an empty
	// slice exists but has no MX records (ErrNoRecords).
	MX map[string][]MX

	// Fail contains FQDNs that return ErrServFail.
	Fail []string

	// Slow contains FQDNs that return ErrTimeout.
	Slow []string
}

var _ Resolver = MockResolver{}

// LookupMX returns the configured records for the given domain.
func (r MockResolver) LookupMX(ctx context.Context, name string) ([]MX, error) {
	if err := ctx.Err(); err != nil {
		return nil, classifyCtxErr(err)
	}

	fqdn := ensureAbsolute(name)

	if slices.Contains(r.Fail, fqdn) {
		return nil, ErrServFail
	}
	if slices.Contains(r.Slow, fqdn) {
		return nil, ErrTimeout
	}

	records, ok := r.MX[fqdn]
	if !ok {
		return nil, ErrNotFound
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return slices.Clone(records), nil
}
