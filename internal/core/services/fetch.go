package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eli5-cli/internal/logger"
)

const (
	// DefaultFetchTimeout bounds a single provider request.
	DefaultFetchTimeout = 20 * time.Second

	// DefaultFetchRetries is the number of immediate retries after a timeout.
	DefaultFetchRetries = 2
)

// FetchService retrieves reference text for a topic, preferring the
// simplified source and falling back to the general one. Successful
// lookups are written through to the summary cache.
type FetchService struct {
	provider driven.ReferenceProvider
	cache    driven.SummaryCache
	timeout  time.Duration
	retries  int
}

// NewFetchService creates a new fetch service.
// The cache parameter is optional (can be nil).
func NewFetchService(provider driven.ReferenceProvider, cache driven.SummaryCache) *FetchService {
	return &FetchService{
		provider: provider,
		cache:    cache,
		timeout:  DefaultFetchTimeout,
		retries:  DefaultFetchRetries,
	}
}

// SetTimeout overrides the per-request timeout.
func (s *FetchService) SetTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// SetRetries overrides the retry bound for timed-out requests.
func (s *FetchService) SetRetries(n int) {
	if n >= 0 {
		s.retries = n
	}
}

// Fetch walks the ranked sources and returns the first summary found.
// A topic absent from every source yields *domain.TopicNotFoundError.
func (s *FetchService) Fetch(ctx context.Context, topic string) (domain.SourceText, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return domain.SourceText{}, fmt.Errorf("%w: topic is empty", domain.ErrInvalidInput)
	}
	if s.provider == nil {
		return domain.SourceText{}, errors.New("reference provider unavailable")
	}

	logger.Section("Reference Fetch")
	logger.Debug("Topic: %q", topic)

	var missing []domain.SourceKind
	var infraErrs []error

	for _, kind := range domain.RankedSources() {
		text, found, err := s.fetchOne(ctx, topic, kind)
		if err != nil {
			if ctx.Err() != nil {
				return domain.SourceText{}, ctx.Err()
			}
			logger.Warn("Fetch from %s failed: %v", kind.Label(), err)
			infraErrs = append(infraErrs, fmt.Errorf("%s: %w", kind, err))
			continue
		}
		if !found {
			logger.Debug("Topic not present on %s", kind.Label())
			missing = append(missing, kind)
			continue
		}

		logger.Info("Found %q on %s (%d chars)", topic, kind.Label(), len(text))
		return domain.SourceText{Kind: kind, Topic: topic, Text: text}, nil
	}

	// Clean not-found on every source outranks infrastructure noise:
	// only report failure when no source gave a definitive answer.
	if len(missing) == len(domain.RankedSources()) {
		return domain.SourceText{}, &domain.TopicNotFoundError{Topic: topic, Sources: missing}
	}
	if len(infraErrs) > 0 {
		return domain.SourceText{}, fmt.Errorf("fetch %q: %w", topic, errors.Join(infraErrs...))
	}

	return domain.SourceText{}, &domain.TopicNotFoundError{Topic: topic, Sources: missing}
}

// fetchOne checks the cache, then queries the provider with the
// configured timeout and retry bound. found is false when the source
// definitively does not have the topic.
func (s *FetchService) fetchOne(
	ctx context.Context, topic string, kind domain.SourceKind,
) (text string, found bool, err error) {
	key := domain.CacheKey(kind, topic)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("Cache read for %q failed: %v", key, err)
		} else if ok {
			logger.Debug("Cache hit: %s", key)
			return cached, true, nil
		}
	}

	summary, err := s.resolveWithRetry(ctx, topic, kind)
	if err != nil {
		return "", false, err
	}
	if !summary.Exists || strings.TrimSpace(summary.Text) == "" {
		return "", false, nil
	}

	// Write-through; cache failures never affect the result.
	if s.cache != nil {
		if err := s.cache.Put(ctx, key, summary.Text); err != nil {
			logger.Warn("Cache write for %q failed: %v", key, err)
		}
	}

	return summary.Text, true, nil
}

// resolveWithRetry issues the provider request under a timeout,
// retrying immediately when the request itself timed out. Other
// failures are not retried.
func (s *FetchService) resolveWithRetry(
	ctx context.Context, topic string, kind domain.SourceKind,
) (driven.Summary, error) {
	var lastErr error

	for attempt := 0; attempt <= s.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return driven.Summary{}, err
		}
		if attempt > 0 {
			logger.Debug("Retrying %s fetch (attempt %d of %d)", kind, attempt+1, s.retries+1)
		}

		reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
		summary, err := s.provider.Resolve(reqCtx, topic, kind)
		cancel()

		if err == nil {
			return summary, nil
		}
		lastErr = err

		// Parent cancellation is not ours to retry.
		if ctx.Err() != nil {
			return driven.Summary{}, ctx.Err()
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return driven.Summary{}, err
		}
	}

	return driven.Summary{}, fmt.Errorf("%w: %v", domain.ErrFetchTimeout, lastErr)
}
