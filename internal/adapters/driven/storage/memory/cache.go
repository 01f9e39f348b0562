// Package memory provides in-memory implementations of storage ports.
// Used by tests and as a degraded fallback when the durable store
// cannot be opened.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

// Ensure SummaryCache implements the interface.
var _ driven.SummaryCache = (*SummaryCache)(nil)

// SummaryCache is an in-memory implementation of driven.SummaryCache.
// Contents do not survive process exit.
type SummaryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewSummaryCache creates a new in-memory summary cache.
func NewSummaryCache() *SummaryCache {
	return &SummaryCache{
		entries: make(map[string]string),
	}
}

// Get returns the cached content for a key.
func (c *SummaryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	content, ok := c.entries[key]
	return content, ok, nil
}

// Put stores content for a key, replacing any existing entry.
func (c *SummaryCache) Put(_ context.Context, key, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = content
	return nil
}

// Len returns the number of cached entries.
func (c *SummaryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close releases resources. No-op for the in-memory cache.
func (c *SummaryCache) Close() error {
	return nil
}
