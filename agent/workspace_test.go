package agent

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func newTestWorkspace(t *testing.T, files map[string]string) *Workspace {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return NewWorkspaceWithFs(fs, "work")
}

func TestReadSnippet(t *testing.T) {
	ws := newTestWorkspace(t, map[string]string{
		"work/app.coffee": "x = 1\n",
	})

	content, err := ws.ReadSnippet("app.coffee")
	if err != nil {
		t.Fatalf("ReadSnippet: %v", err)
	}
	if content != "x = 1\n" {
		t.Errorf("content = %q", content)
	}
}

func TestReadSnippetMissing(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	if _, err := ws.ReadSnippet("gone.sql"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadSnippetUnsupportedExtension(t *testing.T) {
	ws := newTestWorkspace(t, map[string]string{
		"work/secrets.env": "KEY=x\n",
	})
	_, err := ws.ReadSnippet("secrets.env")
	if err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("err = %v", err)
	}
}

func TestReadSnippetEscapingPath(t *testing.T) {
	ws := newTestWorkspace(t, map[string]string{
		"etc/passwd.sql": "oops",
	})
	for _, path := range []string{"../etc/passwd.sql", "/etc/passwd.sql", "..", "a/../../etc/passwd.sql"} {
		if _, err := ws.ReadSnippet(path); err == nil {
			t.Errorf("ReadSnippet(%q) should fail", path)
		}
	}
}

func TestReadSnippetEmptyPath(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	if _, err := ws.ReadSnippet(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestReadSnippetTooLarge(t *testing.T) {
	ws := newTestWorkspace(t, map[string]string{
		"work/big.sql": strings.Repeat("x", maxSnippetBytes+1),
	})
	_, err := ws.ReadSnippet("big.sql")
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("err = %v", err)
	}
}

func TestListSnippets(t *testing.T) {
	ws := newTestWorkspace(t, map[string]string{
		"work/b.sql":          "select 1;",
		"work/a.coffee":       "x = 1",
		"work/nested/c.js":    "var x;",
		"work/skip.env":       "KEY=x",
		"work/notes/plan.txt": "ignore",
	})

	paths, err := ws.ListSnippets()
	if err != nil {
		t.Fatalf("ListSnippets: %v", err)
	}
	want := []string{"a.coffee", "b.sql", "nested/c.js"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}
}
