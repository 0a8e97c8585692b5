package agent

import (
	"encoding/json"
	"testing"
)

func makeTool(name string) RegisteredTool {
	return RegisteredTool{
		Definition: ToolDefinition{Name: name, Description: name + " tool"},
		Executor: func(arguments json.RawMessage, ws *Workspace) (string, error) {
			return name, nil
		},
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewToolRegistry()
	r.Register(makeTool("c"))
	r.Register(makeTool("a"))
	r.Register(makeTool("b"))

	names := r.Names()
	want := []string{"c", "a", "b"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
	if r.Count() != 3 {
		t.Errorf("Count = %d", r.Count())
	}
}

func TestRegistryReplaceKeepsOrder(t *testing.T) {
	r := NewToolRegistry()
	r.Register(makeTool("a"))
	r.Register(makeTool("b"))

	replacement := makeTool("a")
	replacement.Definition.Description = "replaced"
	r.Register(replacement)

	if r.Count() != 2 {
		t.Fatalf("Count = %d", r.Count())
	}
	if r.Names()[0] != "a" {
		t.Errorf("order changed: %v", r.Names())
	}
	if r.Get("a").Definition.Description != "replaced" {
		t.Errorf("replacement not applied")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	r := NewToolRegistry()
	if r.Get("nope") != nil {
		t.Error("expected nil for unregistered tool")
	}
}

func TestLLMDefinitions(t *testing.T) {
	r := NewToolRegistry()
	r.Register(RegisteredTool{
		Definition: ToolDefinition{
			Name:        "echo",
			Description: "echoes",
			Parameters:  map[string]interface{}{"type": "object"},
		},
	})

	defs := r.LLMDefinitions()
	if len(defs) != 1 {
		t.Fatalf("len = %d", len(defs))
	}
	if defs[0].Name != "echo" || defs[0].Description != "echoes" {
		t.Errorf("defs[0] = %+v", defs[0])
	}
	if defs[0].Parameters["type"] != "object" {
		t.Errorf("parameters not carried over: %+v", defs[0].Parameters)
	}
}

func TestParseToolArguments(t *testing.T) {
	args, err := ParseToolArguments(json.RawMessage(`{"query":"select 1;","limit":5,"strict":true}`))
	if err != nil {
		t.Fatalf("ParseToolArguments: %v", err)
	}

	if s, ok := GetStringArg(args, "query"); !ok || s != "select 1;" {
		t.Errorf("GetStringArg = %q, %v", s, ok)
	}
	if n, ok := GetIntArg(args, "limit"); !ok || n != 5 {
		t.Errorf("GetIntArg = %d, %v", n, ok)
	}
	if b, ok := GetBoolArg(args, "strict"); !ok || !b {
		t.Errorf("GetBoolArg = %v, %v", b, ok)
	}
	if _, ok := GetStringArg(args, "missing"); ok {
		t.Error("missing key reported present")
	}
	if _, ok := GetStringArg(args, "limit"); ok {
		t.Error("type mismatch reported present")
	}
}

func TestParseToolArgumentsInvalid(t *testing.T) {
	if _, err := ParseToolArguments(json.RawMessage(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
