package verifier

// Status classifies the outcome of checking a single address.
type Status int

const (
	// StatusValid means the domain has at least one MX record.
	StatusValid Status = iota
	// StatusNoDomain means the domain does not exist or cannot be encoded
	// for DNS. A malformed domain cannot receive mail either way, so the
	// two conditions are deliberately not distinguished.
	StatusNoDomain
	// StatusNoMX means the domain exists but has no usable MX records,
	// or the resolver could not determine an answer.
	StatusNoMX
	// StatusTimeout means the MX query exceeded its deadline. This is the
	// only transient class; callers may reasonably retry it.
	StatusTimeout
	// StatusInvalidFormat means the address failed syntactic validation
	// and no DNS work was attempted.
	StatusInvalidFormat
)

// String returns a short machine-friendly label, used as a metric value.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusNoDomain:
		return "no_domain"
	case StatusNoMX:
		return "no_mx"
	case StatusTimeout:
		return "timeout"
	case StatusInvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}

// Message returns the user-facing text reported for the status.
func (s Status) Message() string {
	switch s {
	case StatusValid:
		return "domain valid"
	case StatusNoDomain:
		return "domain missing"
	case StatusNoMX:
		return "MX records missing or invalid"
	case StatusTimeout:
		return "timeout (network issue)"
	case StatusInvalidFormat:
		return "invalid email format"
	default:
		return "unknown"
	}
}
