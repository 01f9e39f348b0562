package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads LLM prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptDefineTerm: `Explain the jargon term in one simple sentence, like you're talking to a five-year-old.
Return ONLY the definition sentence, nothing else.

Term: %s
Definition:`,

	driven.PromptRewriteSimpler: `Rewrite the explanation below so a five-year-old could understand it.
Use very short sentences and very simple words. Keep every fact; do not add new facts.
%s
Return ONLY the rewritten explanation, nothing else.

Explanation:
%s

Rewritten:`,

	driven.PromptFactualExample: `Provide 1-2 SIMPLE, FACTUAL, REAL-WORLD examples of the given topic.
DO NOT PROVIDE ANALOGIES or metaphorical comparisons. Only list actual named instances or types.
The examples must be suitable for a five-year-old: very short, easy to understand, and concrete.

Example 1:
Topic: Volcanoes
Examples: Mount St. Helens is a volcano in America that erupted. Kilauea in Hawaii is another volcano that has lava flowing often.

Example 2:
Topic: Planets
Examples: We live on a planet called Earth. Mars is a red planet that scientists send robots to.

Example 3:
Topic: Dinosaurs
Examples: T-Rex was a giant dinosaur with big teeth that ate meat. Stegosaurus was a dinosaur with plates on its back.

Topic: %s
Context (optional): %s
Examples:`,

	driven.PromptAnalogy: `Generate a simple, one-sentence analogy for a complex concept to help a five-year-old understand it.
Return ONLY the analogy sentence, nothing else.

Concept: %s
Analogy:`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.eli5/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".eli5", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# eli5 Prompts

This directory contains customisable prompts used by the eli5 explain pipeline.

## Files

- ` + "`define_term.txt`" + ` - Defines a jargon term in one simple sentence
- ` + "`rewrite_simpler.txt`" + ` - Rewrites the explanation with simpler vocabulary
- ` + "`factual_example.txt`" + ` - Produces named, non-figurative real-world examples
- ` + "`analogy.txt`" + ` - Produces a child-friendly analogy

## Customisation

Edit any file to customise behaviour. Changes take effect on the next command.

## Format Placeholders

Prompts use Go fmt placeholders (` + "`%s`" + `). Keep them in the same order
when customising.
`
	return os.WriteFile(path, []byte(content), 0600)
}
