// Package shots stores audit screenshots on disk.
package shots

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/usecase"
)

// maxNameLen bounds the generated filename, keeping paths portable.
const maxNameLen = 100

// FileStore writes screenshots into a directory.
type FileStore struct {
	dir string
}

// FileStore implements usecase.ScreenshotStore; verified at compile time.
var _ usecase.ScreenshotStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes the PNG under a filename derived from the URL and returns the
// path.
func (s *FileStore) Save(pageURL string, screenshot []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshots dir: %w", err)
	}
	path := filepath.Join(s.dir, SafeFilename(pageURL)+".png")
	if err := os.WriteFile(path, screenshot, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// SafeFilename turns a URL into a filesystem-safe name: scheme stripped,
// slashes and colons replaced, every other character outside [a-zA-Z0-9._-]
// dropped, truncated to 100 characters.
func SafeFilename(pageURL string) string {
	name := strings.TrimPrefix(pageURL, "https://")
	name = strings.TrimPrefix(name, "http://")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, ":", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > maxNameLen {
		out = out[:maxNameLen]
	}
	return out
}
