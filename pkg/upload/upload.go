// Package upload stores client-submitted image files under a fixed directory,
// assigning each a timestamped, sanitized on-disk name. The stored name is what
// gets persisted on the owning row and later served from a static mount.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SanitizeFilename maps an arbitrary client-supplied filename to a name that is
// safe on disk and in URLs: lowercase ASCII letters, digits, underscore, hyphen
// and dot. Every other rune is replaced one-for-one with an underscore. The
// function is pure and never fails; collision handling is the Store's concern.
func SanitizeFilename(name string) string {
	lowered := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Store persists uploaded files under a single directory.
type Store struct {
	dir string
}

// NewStore creates the directory (recursively) if it does not exist and returns
// a Store rooted at it. This is the one-time setup step; callers construct a
// Store at startup and share it across requests.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the file content to disk under a generated name of the form
// <epoch-millis>-<sanitized original name> and returns that name. Uniqueness is
// probabilistic: two saves of an identically named file within the same
// millisecond overwrite each other. If a caller's follow-up work fails, the
// written file is left behind; nothing here cleans it up.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(originalName))
	path := filepath.Join(s.dir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return stored, nil
}
