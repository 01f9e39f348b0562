package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible
	// default or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptDefineTerm produces a one-sentence definition of a jargon term.
	// The template expects a %s placeholder for the term.
	PromptDefineTerm = "define_term"

	// PromptRewriteSimpler rewrites explanation text with simpler vocabulary.
	// The template expects %s (instruction about the jargon term) and
	// %s (current text) placeholders.
	PromptRewriteSimpler = "rewrite_simpler"

	// PromptFactualExample produces 1-2 named, non-figurative real-world
	// instances of a topic. The template expects %s (topic) and %s (optional
	// concept context) placeholders.
	PromptFactualExample = "factual_example"

	// PromptAnalogy produces a one-sentence child-friendly analogy.
	// The template expects a %s placeholder for the concept.
	PromptAnalogy = "analogy"
)
