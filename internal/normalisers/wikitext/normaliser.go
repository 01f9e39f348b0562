// Package wikitext cleans encyclopedia-style reference text before it is
// scored or simplified. It removes citation markers, editorial tags,
// pronunciation annotations, and citation-like parenthetical asides, then
// normalises whitespace.
package wikitext

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// Cleanup rules, applied in order. Prefix stripping must come after artifact
// removal so a prefix revealed by a removed bracket is still caught.
var (
	// [1], [23] citation markers.
	citationRe = regexp.MustCompile(`\[\d+\]`)

	// [edit] editorial tags.
	editTagRe = regexp.MustCompile(`(?i)\[edit\]`)

	// (listen) audio-pronunciation annotations.
	listenRe = regexp.MustCompile(`(?i)\s*\(listen\)\s*`)

	// Parenthetical asides that look like citations, abbreviation glosses,
	// or page:line references.
	asideRe = regexp.MustCompile(`(?i)\s*\([^)]*\b(?:e\.g\.|i\.e\.|etc\.|cit\.(?:\s*needed)?|citation needed|[\w\s]*\d+:\d+)[^)]*\)\s*`)

	// Parentheses left empty by earlier rules.
	emptyParensRe = regexp.MustCompile(`\(\s*\)`)

	// Corpus banner lines occasionally included at the start of a summary.
	sourcePrefixRe = regexp.MustCompile(`(?i)^from (?:simple english )?wikipedia,? the free encyclopedia[.:]?\s*`)

	// Whitespace runs.
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normaliser strips encyclopedia artifacts from raw text.
type Normaliser struct{}

// New creates a new wikitext normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise cleans raw reference text. It is deterministic and idempotent.
func (n *Normaliser) Normalise(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.ErrInvalidInput
	}

	text := citationRe.ReplaceAllString(raw, "")
	text = editTagRe.ReplaceAllString(text, "")
	text = listenRe.ReplaceAllString(text, " ")
	text = asideRe.ReplaceAllString(text, " ")
	text = emptyParensRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = sourcePrefixRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if text == "" {
		return "", domain.ErrEmptyResult
	}
	return text, nil
}
