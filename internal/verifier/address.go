package verifier

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// addressPattern is a deliberately permissive filter: a non-empty local
// part, a single @, and a domain part containing at least one dot, with
// no whitespace anywhere. Full RFC 5322 grammar rejects addresses people
// actually use and accepts ones no mail system routes, so this trades a
// little precision for recall.
var addressPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// parseAddress validates the address shape and extracts the domain part,
// lower-cased. The second return value is false when the address is
// syntactically invalid.
func parseAddress(address string) (string, bool) {
	if !addressPattern.MatchString(address) {
		return "", false
	}
	_, domain, _ := strings.Cut(address, "@")
	return strings.ToLower(domain), true
}

// encodeDomain converts a possibly internationalized domain to its
// ASCII-compatible (punycode) form. Domain names must be A-labels before
// they hit the wire; the Lookup profile also rejects disallowed code
// points and label-length violations.
func encodeDomain(domain string) (string, error) {
	return idna.Lookup.ToASCII(domain)
}
