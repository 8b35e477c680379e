package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Credential presence is deliberately not checked here: only the commands
// that actually call the correction service require an API key, and they
// verify it before dispatching any work.
func (c *Config) Validate() error {
	if c.Book.LessonCount <= 0 {
		return fmt.Errorf("book.lesson_count must be > 0 (got %d)", c.Book.LessonCount)
	}
	if c.LLM.MaxParallel <= 0 {
		return fmt.Errorf("llm.max_parallel must be > 0 (got %d)", c.LLM.MaxParallel)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.CallTimeout <= 0 {
		return fmt.Errorf("llm.call_timeout must be > 0 (got %v)", c.LLM.CallTimeout)
	}
	if c.Paths.Chapters == "" {
		return fmt.Errorf("paths.chapters must not be empty")
	}
	return nil
}
