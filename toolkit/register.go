package toolkit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/webteam-ai/mentat/agent"
)

// sqlQuerySchema is the shared parameter schema for tools that take one SQL
// statement.
func sqlQuerySchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"sql_query": map[string]interface{}{
				"type":        "string",
				"description": "The SQL query to process.",
			},
		},
		"required": []string{"sql_query"},
	}
}

func snippetSchema(param string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			param: map[string]interface{}{
				"type":        "string",
				"description": "The code snippet to process.",
			},
		},
		"required": []string{param},
	}
}

// stringArgExecutor adapts a pure string-to-string tool function to the
// registry's executor signature.
func stringArgExecutor(param string, fn func(string) string) agent.ToolExecutor {
	return func(arguments json.RawMessage, _ *agent.Workspace) (string, error) {
		args, err := agent.ParseToolArguments(arguments)
		if err != nil {
			return "", err
		}
		value, ok := agent.GetStringArg(args, param)
		if !ok {
			return "", fmt.Errorf("%s is required", param)
		}
		return fn(value), nil
	}
}

// RegisterSQLTools registers the SQL review tools.
func RegisterSQLTools(reg *agent.ToolRegistry) {
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "check_sql_syntax",
			Description: "Checks the SQL syntax for PostgreSQL using a basic parser. Returns a message indicating whether the syntax is correct or an error message.",
			Parameters:  sqlQuerySchema(),
		},
		Executor: stringArgExecutor("sql_query", CheckSyntax),
	})
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "suggest_sql_improvements",
			Description: "Suggests improvements for the given SQL query.",
			Parameters:  sqlQuerySchema(),
		},
		Executor: stringArgExecutor("sql_query", SuggestImprovements),
	})
}

// RegisterKnexTool registers the SQL-to-Knex.js transliteration tool.
func RegisterKnexTool(reg *agent.ToolRegistry) {
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "sql_to_knex_coffeescript",
			Description: "Transforms an SQL query into a Knex.js query in CoffeeScript syntax.",
			Parameters:  sqlQuerySchema(),
		},
		Executor: stringArgExecutor("sql_query", TransformSelect),
	})
}

// RegisterCodeTools registers the code review tools.
func RegisterCodeTools(reg *agent.ToolRegistry) {
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "check_code_snippet",
			Description: "Uses multiple tools to check and improve a code snippet.",
			Parameters:  snippetSchema("input"),
		},
		Executor: stringArgExecutor("input", ReviewSnippet),
	})
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "clean_code_tool",
			Description: "Checks if the code snippet follows clean code practices.",
			Parameters:  snippetSchema("code_snippet"),
		},
		Executor: stringArgExecutor("code_snippet", CleanCode),
	})
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "improvement_tool",
			Description: "Suggests improvements for the given code snippet.",
			Parameters:  snippetSchema("code_snippet"),
		},
		Executor: stringArgExecutor("code_snippet", SuggestLogic),
	})
}

// RegisterSnippetTools registers the workspace snippet tools.
func RegisterSnippetTools(reg *agent.ToolRegistry) {
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "read_snippet",
			Description: "Read a source snippet from the workspace. Supported file types: py, md, coffee, sql, js.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path of the file, relative to the workspace root.",
					},
				},
				"required": []string{"path"},
			},
		},
		Executor: func(arguments json.RawMessage, ws *agent.Workspace) (string, error) {
			args, err := agent.ParseToolArguments(arguments)
			if err != nil {
				return "", err
			}
			path, ok := agent.GetStringArg(args, "path")
			if !ok || path == "" {
				return "", fmt.Errorf("path is required")
			}
			if ws == nil {
				return "", fmt.Errorf("no workspace configured")
			}
			return ws.ReadSnippet(path)
		},
	})
	reg.Register(agent.RegisteredTool{
		Definition: agent.ToolDefinition{
			Name:        "list_snippets",
			Description: "List the source snippets available in the workspace.",
			Parameters: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		Executor: func(_ json.RawMessage, ws *agent.Workspace) (string, error) {
			if ws == nil {
				return "", fmt.Errorf("no workspace configured")
			}
			paths, err := ws.ListSnippets()
			if err != nil {
				return "", err
			}
			if len(paths) == 0 {
				return "No snippets found.", nil
			}
			return strings.Join(paths, "\n"), nil
		},
	})
}
