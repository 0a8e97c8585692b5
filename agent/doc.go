// Package agent implements the tool-calling conversation loop behind the
// mentat REPL.
//
// An Agent pairs a model with a set of registered tools and a system prompt.
// Each Run appends the user input to the conversation history, calls the
// model, executes any tool calls it makes, feeds the results back, and
// repeats until the model answers in plain text or a round limit is hit.
//
// The package is organized around these concepts:
//
//   - Agent: the orchestrator holding conversation state, dispatching tool
//     calls, and enforcing limits.
//   - ToolRegistry: registration and dispatch of tool definitions.
//   - EventEmitter: typed event stream consumed by the REPL for rendering.
//   - Workspace: afero-backed access to source snippets under a root
//     directory, restricted to recognized file types.
//
// # Quick Start
//
//	ws := agent.NewWorkspace("./")
//	a := agent.New("knex", "gpt-4o", prompt, client, ws, nil)
//	toolkit.RegisterKnexTool(a.Registry())
//
//	go func() {
//	    for ev := range a.Events() {
//	        fmt.Printf("[%s] %v\n", ev.Kind, ev.Data)
//	    }
//	}()
//	if err := a.Run(ctx, "convert select * from users to knex"); err != nil {
//	    log.Fatal(err)
//	}
package agent
