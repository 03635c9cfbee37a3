// Package verifier implements concurrent email-domain validation.
//
// Given a batch of addresses it determines, per unique domain, whether
// the domain can plausibly receive mail: syntactic validation, IDNA
// encoding, and an MX lookup, with the number of simultaneous lookups
// bounded and repeated domains resolved once per run.
package verifier

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/avolkov/mxverify/internal/dns"
	"github.com/avolkov/mxverify/internal/metrics"
)

// DefaultConcurrency is the number of simultaneously in-flight checks
// allowed when no explicit limit is configured.
const DefaultConcurrency = 50

// Result pairs an input address with its check outcome.
type Result struct {
	Address string
	Status  Status
}

// Verifier checks whether email addresses belong to domains that can
// receive mail. One Verifier owns one domain cache; results are
// deduplicated across all checks made through it.
type Verifier struct {
	resolver    dns.Resolver
	cache       *domainCache
	concurrency int
	flight      singleflight.Group
	log         zerolog.Logger
}

// New creates a Verifier using the given resolver. A concurrency value
// below 1 falls back to DefaultConcurrency.
func New(resolver dns.Resolver, concurrency int, log zerolog.Logger) *Verifier {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Verifier{
		resolver:    resolver,
		cache:       newDomainCache(),
		concurrency: concurrency,
		log:         log,
	}
}

// Check validates a single address. It never fails: every outcome,
// including resolver errors, maps to a Status.
func (v *Verifier) Check(ctx context.Context, address string) Result {
	address = strings.TrimSpace(address)

	domain, ok := parseAddress(address)
	if !ok {
		metrics.ChecksTotal.WithLabelValues(StatusInvalidFormat.String()).Inc()
		return Result{Address: address, Status: StatusInvalidFormat}
	}

	status, hit := v.cache.Get(domain)
	if !hit {
		metrics.CacheMissesTotal.Inc()
		// Concurrent first checks of the same domain collapse into a
		// single lookup; every waiter receives the same status.
		resolved, _, _ := v.flight.Do(domain, func() (interface{}, error) {
			status, cacheable := v.resolveDomain(ctx, domain)
			if cacheable {
				v.cache.Put(domain, status)
			}
			return status, nil
		})
		status = resolved.(Status)
	} else {
		metrics.CacheHitsTotal.Inc()
	}

	metrics.ChecksTotal.WithLabelValues(status.String()).Inc()
	return Result{Address: address, Status: status}
}

// resolveDomain encodes the domain and performs the MX lookup, mapping
// every failure mode to a terminal Status. First applicable rule wins.
// The second return reports whether the status may be cached: a lookup
// abandoned because the caller cancelled says nothing about the domain.
func (v *Verifier) resolveDomain(ctx context.Context, domain string) (Status, bool) {
	encoded, err := encodeDomain(domain)
	if err != nil {
		// A domain that cannot be encoded cannot receive mail, same as
		// one that does not exist.
		return StatusNoDomain, true
	}

	metrics.LookupsInFlight.Inc()
	start := time.Now()
	records, err := v.resolver.LookupMX(ctx, encoded)
	metrics.LookupDuration.Observe(time.Since(start).Seconds())
	metrics.LookupsInFlight.Dec()

	switch {
	case err == nil && len(records) > 0:
		return StatusValid, true
	case err == nil:
		return StatusNoMX, true
	case dns.IsNotFound(err):
		return StatusNoDomain, true
	case errors.Is(err, dns.ErrNoRecords), errors.Is(err, dns.ErrServFail):
		return StatusNoMX, true
	case dns.IsTimeout(err):
		v.log.Warn().Str("domain", domain).Msg("mx lookup timed out")
		return StatusTimeout, true
	case errors.Is(err, context.Canceled):
		// The caller gave up mid-lookup. The domain stays unrecorded so
		// a later check resolves it from scratch.
		return StatusTimeout, false
	default:
		// Conservative fallback: an unclassified resolver failure means
		// we cannot route mail there, not that the batch should abort.
		v.log.Error().Err(err).Str("domain", domain).Msg("unexpected resolver error")
		return StatusNoMX, true
	}
}

// CheckAll validates a batch of addresses, running at most the configured
// number of checks concurrently. Empty strings are skipped; the returned
// slice holds one Result per scheduled address in input order.
func (v *Verifier) CheckAll(ctx context.Context, addresses []string) []Result {
	scheduled := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if addr != "" {
			scheduled = append(scheduled, addr)
		}
	}
	metrics.BatchSize.Observe(float64(len(scheduled)))

	results := make([]Result, len(scheduled))

	var g errgroup.Group
	g.SetLimit(v.concurrency)
	for i, addr := range scheduled {
		g.Go(func() error {
			results[i] = v.Check(ctx, addr)
			return nil
		})
	}
	// Check never returns an error, so Wait only synchronizes.
	_ = g.Wait()

	return results
}
