package scraper

import (
	"fmt"
	"os"
)

// PrepareEnvironment wipes the assets directory if it exists and recreates
// it, so every crawl starts from an empty dataset.
func PrepareEnvironment(base string) error {
	if err := os.RemoveAll(base); err != nil {
		return fmt.Errorf("failed to remove %s: %w", base, err)
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", base, err)
	}
	return nil
}
