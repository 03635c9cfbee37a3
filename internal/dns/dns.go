// Package dns provides MX record resolution with a stable error taxonomy.
//
// Lookup failures are reported through sentinel errors so that callers can
// classify them without depending on the underlying DNS library:
// ErrNotFound (NXDOMAIN), ErrNoRecords (the name exists but has no usable
// MX records), ErrTimeout (the query deadline passed) and ErrServFail
// (the nameservers could not produce an answer).
package dns

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates an authoritative "domain does not exist" response.
	ErrNotFound = errors.New("dns: domain not found")

	// ErrNoRecords indicates the domain exists but has no MX records.
	ErrNoRecords = errors.New("dns: no mx records")

	// ErrTimeout indicates the query exceeded its deadline.
	ErrTimeout = errors.New("dns: query timed out")

	// ErrServFail indicates no nameserver could produce an answer.
	ErrServFail = errors.New("dns: server failure")
)

// MX is a single mail exchanger record.
type MX struct {
	Host string
	Pref uint16
}

// Resolver looks up MX records for a domain. Implementations must honor
// context cancellation and return one of the package sentinel errors for
// classifiable failures.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]MX, error)
}

// IsNotFound reports whether err is an NXDOMAIN-equivalent error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTimeout reports whether err is a query timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsTemporary reports whether the failure may succeed on retry.
func IsTemporary(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrServFail)
}

// ensureAbsolute ensures the domain name ends with a dot (FQDN format).
func ensureAbsolute(name string) string {
	if len(name) == 0 || name[len(name)-1] != '.' {
		return name + "."
	}
	return name
}
