package driven

import (
	"context"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
)

// Summary is the result of resolving a topic against one corpus.
type Summary struct {
	// Exists is false when the corpus has no entry for the topic.
	// A clean miss is not an error.
	Exists bool

	// Text is the raw summary text. Empty when Exists is false.
	Text string
}

// ReferenceProvider resolves a topic to reference text from a corpus.
// Implementations must respect the caller's context deadline; a resolve
// never blocks past it.
type ReferenceProvider interface {
	// Resolve looks up the topic in the given corpus.
	// Infrastructure failures (network, decode) are returned as errors;
	// an absent topic is reported via Summary.Exists, not an error.
	Resolve(ctx context.Context, topic string, kind domain.SourceKind) (Summary, error)
}
