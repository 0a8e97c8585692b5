package toolkit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/webteam-ai/mentat/agent"
)

func TestRegisterSQLTools(t *testing.T) {
	reg := agent.NewToolRegistry()
	RegisterSQLTools(reg)

	names := reg.Names()
	want := []string{"check_sql_syntax", "suggest_sql_improvements"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Fatalf("names = %v, want %v", names, want)
	}

	out, err := reg.Get("check_sql_syntax").Executor(json.RawMessage(`{"sql_query":"select * from users;"}`), nil)
	if err != nil {
		t.Fatalf("executor: %v", err)
	}
	if out != "SQL syntax appears to be correct." {
		t.Errorf("out = %q", out)
	}
}

func TestRegisterKnexTool(t *testing.T) {
	reg := agent.NewToolRegistry()
	RegisterKnexTool(reg)

	out, err := reg.Get("sql_to_knex_coffeescript").Executor(json.RawMessage(`{"sql_query":"select * from users;"}`), nil)
	if err != nil {
		t.Fatalf("executor: %v", err)
	}
	if out != "knex 'users'\n.select '*'\n" {
		t.Errorf("out = %q", out)
	}
}

func TestRegisterCodeTools(t *testing.T) {
	reg := agent.NewToolRegistry()
	RegisterCodeTools(reg)

	for _, name := range []string{"check_code_snippet", "clean_code_tool", "improvement_tool"} {
		if reg.Get(name) == nil {
			t.Errorf("%s not registered", name)
		}
	}

	out, err := reg.Get("improvement_tool").Executor(json.RawMessage(`{"code_snippet":"x = 1\ny = 2"}`), nil)
	if err != nil {
		t.Fatalf("executor: %v", err)
	}
	if out != "Code logic is well-structured." {
		t.Errorf("out = %q", out)
	}
}

func TestExecutorMissingArgument(t *testing.T) {
	reg := agent.NewToolRegistry()
	RegisterSQLTools(reg)

	if _, err := reg.Get("check_sql_syntax").Executor(json.RawMessage(`{}`), nil); err == nil {
		t.Error("expected error for missing sql_query")
	}
}

func TestRegisterSnippetTools(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "work/app.coffee", []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ws := agent.NewWorkspaceWithFs(fs, "work")

	reg := agent.NewToolRegistry()
	RegisterSnippetTools(reg)

	out, err := reg.Get("read_snippet").Executor(json.RawMessage(`{"path":"app.coffee"}`), ws)
	if err != nil {
		t.Fatalf("read_snippet: %v", err)
	}
	if out != "x = 1\n" {
		t.Errorf("out = %q", out)
	}

	out, err = reg.Get("list_snippets").Executor(json.RawMessage(`{}`), ws)
	if err != nil {
		t.Fatalf("list_snippets: %v", err)
	}
	if !strings.Contains(out, "app.coffee") {
		t.Errorf("out = %q", out)
	}
}

func TestSnippetToolsWithoutWorkspace(t *testing.T) {
	reg := agent.NewToolRegistry()
	RegisterSnippetTools(reg)

	if _, err := reg.Get("read_snippet").Executor(json.RawMessage(`{"path":"a.sql"}`), nil); err == nil {
		t.Error("expected error without a workspace")
	}
	if _, err := reg.Get("list_snippets").Executor(json.RawMessage(`{}`), nil); err == nil {
		t.Error("expected error without a workspace")
	}
}
