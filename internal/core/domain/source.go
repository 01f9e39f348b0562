package domain

import "strings"

const unknownDescription = "Unknown"

// SourceKind identifies which reference corpus a text came from.
type SourceKind string

// Reference corpora, in fallback order.
const (
	// SourceSimplified is the simplified-language corpus, tried first.
	SourceSimplified SourceKind = "simplified"

	// SourceGeneral is the general-purpose corpus, the fallback.
	SourceGeneral SourceKind = "general"
)

// RankedSources returns the corpora in the order the fetcher tries them.
func RankedSources() []SourceKind {
	return []SourceKind{SourceSimplified, SourceGeneral}
}

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceSimplified, SourceGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Label returns a human-readable corpus name for error messages and output.
func (k SourceKind) Label() string {
	switch k {
	case SourceSimplified:
		return "Simple Wikipedia"
	case SourceGeneral:
		return "Wikipedia"
	default:
		return unknownDescription
	}
}

// SourceText is normalised reference text for a topic, tagged with its
// provenance. Immutable once produced.
type SourceText struct {
	// Kind is the corpus the text was resolved from.
	Kind SourceKind

	// Topic is the topic as supplied by the caller.
	Topic string

	// Text is the reference text.
	Text string
}

// TopicKey normalises a topic for use as a cache key: lowercased, with
// whitespace runs collapsed to single underscores.
func TopicKey(topic string) string {
	return strings.Join(strings.Fields(strings.ToLower(topic)), "_")
}

// CacheKey builds the cache key for a (corpus, topic) pair.
func CacheKey(kind SourceKind, topic string) string {
	return string(kind) + "_" + TopicKey(topic)
}
