// Package wikipedia provides a ReferenceProvider backed by the Wikimedia
// REST API. The simplified corpus maps to Simple English Wikipedia and the
// general corpus to English Wikipedia.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.ReferenceProvider = (*Provider)(nil)

// Default configuration values.
const (
	DefaultSimplifiedBaseURL = "https://simple.wikipedia.org"
	DefaultGeneralBaseURL    = "https://en.wikipedia.org"

	// UserAgent identifies this client per Wikimedia API etiquette.
	UserAgent = "eli5-cli/1.0 (https://github.com/custodia-labs/eli5-cli)"

	// MaxSummaryLen caps the extract length, in runes.
	MaxSummaryLen = 1500

	// ProactiveRate is the proactive throttle (requests per second) shared
	// across both corpora, per Wikimedia etiquette for unauthenticated clients.
	ProactiveRate = 2.0
)

// Config holds configuration for the Wikipedia provider.
type Config struct {
	// SimplifiedBaseURL overrides the Simple English Wikipedia endpoint.
	SimplifiedBaseURL string

	// GeneralBaseURL overrides the English Wikipedia endpoint.
	GeneralBaseURL string

	// Client overrides the HTTP client. The provider relies on the caller's
	// context for deadlines, so the client itself carries no timeout.
	Client *http.Client
}

// Provider resolves topics against the Wikimedia REST summary endpoint.
type Provider struct {
	client   *http.Client
	baseURLs map[domain.SourceKind]string
	limiter  *rate.Limiter
}

// summaryResponse is the REST /page/summary response, reduced to the
// fields we read.
type summaryResponse struct {
	Type    string `json:"type"`
	Extract string `json:"extract"`
}

// New creates a new Wikipedia reference provider.
func New(cfg Config) *Provider {
	if cfg.SimplifiedBaseURL == "" {
		cfg.SimplifiedBaseURL = DefaultSimplifiedBaseURL
	}
	if cfg.GeneralBaseURL == "" {
		cfg.GeneralBaseURL = DefaultGeneralBaseURL
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{}
	}

	return &Provider{
		client: cfg.Client,
		baseURLs: map[domain.SourceKind]string{
			domain.SourceSimplified: cfg.SimplifiedBaseURL,
			domain.SourceGeneral:    cfg.GeneralBaseURL,
		},
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Resolve looks up the topic summary in the given corpus.
// A missing page is reported via Summary.Exists; only infrastructure
// failures return an error.
func (p *Provider) Resolve(ctx context.Context, topic string, kind domain.SourceKind) (driven.Summary, error) {
	baseURL, ok := p.baseURLs[kind]
	if !ok {
		return driven.Summary{}, fmt.Errorf("wikipedia: %w: unknown source kind %q", domain.ErrInvalidInput, kind)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return driven.Summary{}, fmt.Errorf("wikipedia: throttle wait: %w", err)
	}

	endpoint := baseURL + "/api/rest_v1/page/summary/" + pageTitle(topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return driven.Summary{}, fmt.Errorf("wikipedia: create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return driven.Summary{}, fmt.Errorf("wikipedia: fetch %q from %s: %w", topic, kind.Label(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return driven.Summary{Exists: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return driven.Summary{}, fmt.Errorf("wikipedia: %s returned status %d: %s",
			kind.Label(), resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return driven.Summary{}, fmt.Errorf("wikipedia: decode response: %w", err)
	}

	extract := strings.TrimSpace(summary.Extract)
	if extract == "" {
		// Disambiguation pages and redirects carry no usable extract.
		return driven.Summary{Exists: false}, nil
	}

	return driven.Summary{Exists: true, Text: truncate(extract, MaxSummaryLen)}, nil
}

// pageTitle converts a topic into a REST page title path segment.
func pageTitle(topic string) string {
	title := strings.Join(strings.Fields(strings.TrimSpace(topic)), "_")
	return url.PathEscape(title)
}

// truncate limits s to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
