package verifier

import "sync"

// domainCache maps a domain to its resolved status for the lifetime of
// one Verifier. Entries are never evicted or expired; a result computed
// once holds for the rest of the run.
type domainCache struct {
	mu      sync.Mutex
	entries map[string]Status
}

func newDomainCache() *domainCache {
	return &domainCache{
		entries: make(map[string]Status),
	}
}

// Get returns the cached status for domain, if present.
func (c *domainCache) Get(domain string) (Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, ok := c.entries[domain]
	return status, ok
}

// Put stores the status for domain. The first write wins; a cached
// status is never overwritten within a run.
func (c *domainCache) Put(domain string, status Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[domain]; ok {
		return
	}
	c.entries[domain] = status
}

// Len returns the number of cached domains.
func (c *domainCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
