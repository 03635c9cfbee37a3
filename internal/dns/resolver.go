package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	mdns "github.com/miekg/dns"
)

// DefaultTimeout is the query timeout applied when Config.Timeout is zero.
const DefaultTimeout = 3 * time.Second

// Config contains configuration for the MX resolver.
type Config struct {
	// Nameservers is a list of DNS servers to query (e.g., "8.8.8.8:53").
	// If empty, system resolvers from /etc/resolv.conf are used,
	// falling back to public DNS (8.8.8.8, 1.1.1.1).
	Nameservers []string

	// Timeout bounds both the per-query exchange and the overall lookup.
	// Default is DefaultTimeout.
	Timeout time.Duration
}

// MXResolver implements Resolver using github.com/miekg/dns.
// Each LookupMX call is a single resolution attempt: every configured
// nameserver is tried at most once within one shared deadline.
type MXResolver struct {
	config Config
	client *mdns.Client
}

var _ Resolver = (*MXResolver)(nil)

// NewResolver creates an MX resolver for the configured nameservers.
func NewResolver(config Config) *MXResolver {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if len(config.Nameservers) == 0 {
		config.Nameservers = systemNameservers()
	}

	return &MXResolver{
		config: config,
		client: &mdns.Client{
			Timeout: config.Timeout,
		},
	}
}

// systemNameservers tries to get system DNS servers from resolv.conf.
func systemNameservers() []string {
	config, err := mdns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		// Fallback to common public DNS servers
		return []string{"8.8.8.8:53", "1.1.1.1:53"}
	}

	servers := make([]string, 0, len(config.Servers))
	for _, s := range config.Servers {
		if !strings.Contains(s, ":") {
			s = s + ":53"
		}
		servers = append(servers, s)
	}
	return servers
}

// LookupMX retrieves MX records for the given domain name.
// The returned records are unordered; callers only need presence.
func (r *MXResolver) LookupMX(ctx context.Context, name string) ([]MX, error) {
	m := new(mdns.Msg)
	m.SetQuestion(ensureAbsolute(name), mdns.TypeMX)
	m.RecursionDesired = true

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	var lastErr error

	for _, server := range r.config.Nameservers {
		if err := ctx.Err(); err != nil {
			return nil, classifyCtxErr(err)
		}

		resp, _, err := r.client.ExchangeContext(ctx, m, server)
		if err != nil {
			if isTimeoutErr(err) {
				lastErr = ErrTimeout
			} else {
				lastErr = fmt.Errorf("dns query failed: %w", err)
			}
			continue
		}

		switch resp.Rcode {
		case mdns.RcodeSuccess:
			records := make([]MX, 0, len(resp.Answer))
			for _, rr := range resp.Answer {
				if mx, ok := rr.(*mdns.MX); ok {
					records = append(records, MX{
						Host: strings.TrimSuffix(mx.Mx, "."),
						Pref: mx.Preference,
					})
				}
			}
			if len(records) == 0 {
				return nil, ErrNoRecords
			}
			return records, nil
		case mdns.RcodeNameError: // NXDOMAIN
			return nil, ErrNotFound
		case mdns.RcodeServerFailure:
			lastErr = ErrServFail
			continue
		default:
			lastErr = fmt.Errorf("dns: unexpected rcode %d", resp.Rcode)
			continue
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrServFail
}

// isTimeoutErr reports whether an exchange error was a deadline expiry.
func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classifyCtxErr maps context errors to the package taxonomy.
func classifyCtxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
