package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// validSnippetExts are the file extensions the workspace will serve.
var validSnippetExts = map[string]bool{
	"py":     true,
	"md":     true,
	"coffee": true,
	"sql":    true,
	"js":     true,
}

const maxSnippetBytes = 256 * 1024 // 256KB

// Workspace provides read access to source snippets under a root directory.
// Only recognized source-file extensions are served, and paths may not
// escape the root.
type Workspace struct {
	fs   afero.Fs
	root string
}

// NewWorkspace creates a workspace over the OS filesystem.
func NewWorkspace(root string) *Workspace {
	return NewWorkspaceWithFs(afero.NewOsFs(), root)
}

// NewWorkspaceWithFs creates a workspace over an arbitrary afero filesystem.
// Tests use an in-memory filesystem.
func NewWorkspaceWithFs(fs afero.Fs, root string) *Workspace {
	if root == "" {
		root = "."
	}
	return &Workspace{fs: fs, root: filepath.Clean(root)}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// resolve validates a relative snippet path and returns the full path.
func (w *Workspace) resolve(relPath string) (string, error) {
	if relPath == "" {
		return "", fmt.Errorf("path is required")
	}
	clean := filepath.Clean(relPath)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the workspace root", relPath)
	}

	ext := strings.TrimPrefix(filepath.Ext(clean), ".")
	if !validSnippetExts[ext] {
		return "", fmt.Errorf("unsupported file type %q (supported: coffee, js, md, py, sql)", ext)
	}
	return filepath.Join(w.root, clean), nil
}

// ReadSnippet reads a source snippet by path relative to the root.
func (w *Workspace) ReadSnippet(relPath string) (string, error) {
	full, err := w.resolve(relPath)
	if err != nil {
		return "", err
	}

	info, err := w.fs.Stat(full)
	if err != nil {
		return "", fmt.Errorf("snippet not found: %s", relPath)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", relPath)
	}
	if info.Size() > maxSnippetBytes {
		return "", fmt.Errorf("%s is too large (%d bytes, limit %d)", relPath, info.Size(), maxSnippetBytes)
	}

	data, err := afero.ReadFile(w.fs, full)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", relPath, err)
	}
	return string(data), nil
}

// ListSnippets walks the workspace and returns the relative paths of all
// recognized source files, sorted.
func (w *Workspace) ListSnippets() ([]string, error) {
	var paths []string
	err := afero.Walk(w.fs, w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if !validSnippetExts[ext] {
			return nil
		}
		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
