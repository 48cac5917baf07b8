package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists rendered tickets as timestamped text files.
type Store struct {
	dir string
}

// NewStore creates a receipt store rooted at dir. The directory is
// created on first use, not here, so a misconfigured path surfaces as a
// StorageError during checkout instead of a startup failure.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Write saves a rendered ticket and returns the file path.
func (s *Store) Write(text string, at time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating bill directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("bill_ticket_%s.txt", at.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing bill file: %w", err)
	}

	return path, nil
}
