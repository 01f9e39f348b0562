// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ReferenceProvider: Resolves a topic to reference text from a corpus
//   - SummaryCache: Durable key-value cache of fetched reference text
//   - ReadabilityScorer: Maps text to a grade-level estimate
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Generative text backend. Without it, simplification,
//     jargon definitions, and examples are disabled; fetched reference
//     text is still returned as a degraded single-attempt result.
//   - PromptStore: User-customisable prompt templates. Without it,
//     embedded defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
