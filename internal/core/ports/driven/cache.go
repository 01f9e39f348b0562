package driven

import "context"

// SummaryCache is a durable key-value cache of fetched reference text,
// keyed by domain.CacheKey. Entries never expire; cached reference text is
// expected to be referentially stable. Concurrent writers for the same key
// are resolved last-writer-wins.
type SummaryCache interface {
	// Get returns the cached content for a key. The bool reports presence;
	// an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores content for a key, replacing any existing entry.
	Put(ctx context.Context, key, content string) error

	// Close releases resources.
	Close() error
}
