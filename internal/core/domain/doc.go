// Package domain defines the core business entities for eli5.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceText: Normalised reference text tagged with its corpus
//   - SimplificationAttempt: One version of the explanation and its grade
//   - JargonEntry: A term/definition pair
//   - ExplanationResult: The terminal output of one explain request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
