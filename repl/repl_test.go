package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/webteam-ai/mentat/agent"
	"github.com/webteam-ai/mentat/llm"
)

type cannedAdapter struct {
	text string
}

func (c *cannedAdapter) Name() string { return "openai" }

func (c *cannedAdapter) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return &llm.Response{
		ID:           "resp_test",
		Model:        req.Model,
		Provider:     "openai",
		Message:      llm.AssistantMessage(c.text),
		FinishReason: llm.FinishReason{Reason: "stop"},
	}, nil
}

func newTestEntries(t *testing.T) []Entry {
	t.Helper()
	client := llm.NewClient(llm.WithProvider("openai", &cannedAdapter{text: "answer"}))
	var entries []Entry
	for _, keyword := range []string{"code", "knex", "sql"} {
		a := agent.New(keyword, "gpt-4o", "You are an expert web developer.", client, nil, nil)
		t.Cleanup(a.Close)
		entries = append(entries, Entry{Keyword: keyword, Agent: a})
	}
	return entries
}

func TestMatchSubstring(t *testing.T) {
	r := New(strings.NewReader(""), &bytes.Buffer{}, []Entry{
		{Keyword: "code"}, {Keyword: "knex"}, {Keyword: "sql"},
	})

	cases := []struct {
		prompt string
		want   []string
	}{
		{"check this SQL query", []string{"sql"}},
		{"convert sql to knex", []string{"knex", "sql"}},
		{"CODE review please", []string{"code"}},
		{"code knex sql", []string{"code", "knex", "sql"}},
		{"hello there", nil},
		{"decode this", []string{"code"}}, // substring match, not word match
	}
	for _, tc := range cases {
		matched := r.Match(tc.prompt)
		var got []string
		for _, e := range matched {
			got = append(got, e.Keyword)
		}
		if len(got) != len(tc.want) {
			t.Errorf("Match(%q) = %v, want %v", tc.prompt, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("Match(%q) = %v, want %v", tc.prompt, got, tc.want)
				break
			}
		}
	}
}

func TestKeywords(t *testing.T) {
	r := New(strings.NewReader(""), &bytes.Buffer{}, []Entry{
		{Keyword: "code"}, {Keyword: "knex"}, {Keyword: "sql"},
	})
	keys := r.Keywords()
	if len(keys) != 3 || keys[0] != "code" || keys[1] != "knex" || keys[2] != "sql" {
		t.Errorf("Keywords = %v", keys)
	}
}

func TestRunDispatchesMatchingAgents(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	in := strings.NewReader("look at this sql please\nexit\n")
	r := New(in, &out, newTestEntries(t))

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Use one of the following keywords based on your needs: code, knex, sql") {
		t.Error("banner missing")
	}
	if !strings.Contains(text, "Running sql agent...") {
		t.Error("sql agent not dispatched")
	}
	if strings.Contains(text, "Running code agent...") || strings.Contains(text, "Running knex agent...") {
		t.Error("unmatched agents dispatched")
	}
}

func TestRunDispatchesAllMatches(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	in := strings.NewReader("turn this sql into knex\nexit\n")
	r := New(in, &out, newTestEntries(t))

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	knexIdx := strings.Index(text, "Running knex agent...")
	sqlIdx := strings.Index(text, "Running sql agent...")
	if knexIdx == -1 || sqlIdx == -1 {
		t.Fatalf("both agents should run, output: %q", text)
	}
	if knexIdx > sqlIdx {
		t.Error("knex should dispatch before sql (registration order)")
	}
}

func TestRunRendersOutputBeforeNextPrompt(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	in := strings.NewReader("review my sql\nexit\n")
	r := New(in, &out, newTestEntries(t))

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	answerIdx := strings.Index(text, "answer")
	secondPrompt := strings.Index(text[strings.Index(text, "Prompt: ")+1:], "Prompt: ")
	if answerIdx == -1 {
		t.Fatalf("assistant text not rendered: %q", text)
	}
	if secondPrompt == -1 {
		t.Fatalf("second prompt not printed: %q", text)
	}
	if answerIdx > strings.Index(text, "Prompt: ")+1+secondPrompt {
		t.Errorf("agent output printed after the next prompt: %q", text)
	}
}

func TestRunExitsOnEOF(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	r := New(strings.NewReader(""), &out, newTestEntries(t))
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	in := strings.NewReader("\n\nquit\n")
	r := New(in, &out, newTestEntries(t))
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "Running") {
		t.Error("blank lines should not dispatch")
	}
}
