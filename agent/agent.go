package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/webteam-ai/mentat/llm"
)

// State represents the current lifecycle state of an agent.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateClosed     State = "closed"
)

// Config holds per-agent loop configuration.
type Config struct {
	MaxToolRounds       int            `json:"max_tool_rounds"` // per user input
	ToolOutputLimits    map[string]int `json:"tool_output_limits,omitempty"`
	ToolLineLimits      map[string]int `json:"tool_line_limits,omitempty"`
	EnableLoopDetection bool           `json:"enable_loop_detection"`
	LoopDetectionWindow int            `json:"loop_detection_window"`
	RetryPolicy         *llm.RetryPolicy
}

// DefaultConfig returns the default loop configuration. The round cap matches
// the executor iteration limit this loop was modeled on.
func DefaultConfig() Config {
	return Config{
		MaxToolRounds:       15,
		EnableLoopDetection: true,
		LoopDetectionWindow: 6,
	}
}

// Agent is the orchestrator for one tool-bound conversation loop.
type Agent struct {
	id           string
	name         string
	model        string
	systemPrompt string
	registry     *ToolRegistry
	ws           *Workspace
	client       *llm.Client
	emitter      *EventEmitter
	config       Config
	history      []Turn
	state        State
	mu           sync.Mutex
}

// New creates an agent. A nil config uses DefaultConfig.
func New(name, model, systemPrompt string, client *llm.Client, ws *Workspace, config *Config) *Agent {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}

	id := uuid.New().String()
	return &Agent{
		id:           id,
		name:         name,
		model:        model,
		systemPrompt: systemPrompt,
		registry:     NewToolRegistry(),
		ws:           ws,
		client:       client,
		emitter:      NewEventEmitter(id, name, 256),
		config:       cfg,
		history:      make([]Turn, 0),
		state:        StateIdle,
	}
}

// ID returns the agent identifier.
func (a *Agent) ID() string { return a.id }

// Name returns the agent's short name (e.g. "sql", "code", "knex").
func (a *Agent) Name() string { return a.name }

// Registry returns the tool registry for this agent.
func (a *Agent) Registry() *ToolRegistry { return a.registry }

// Workspace returns the workspace tools read from.
func (a *Agent) Workspace() *Workspace { return a.ws }

// State returns the current agent state.
func (a *Agent) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// History returns a copy of the conversation history.
func (a *Agent) History() []Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	h := make([]Turn, len(a.history))
	copy(h, a.history)
	return h
}

// Events returns the event channel for the host application.
func (a *Agent) Events() <-chan Event {
	return a.emitter.Events()
}

// Close terminates the agent and closes its event channel.
func (a *Agent) Close() {
	a.mu.Lock()
	a.state = StateClosed
	a.mu.Unlock()
	a.emitter.Close()
}

// Run processes one user input through the tool-calling loop. It returns
// once the model answers without tool calls or a limit is hit.
func (a *Agent) Run(ctx context.Context, userInput string) error {
	a.mu.Lock()
	if a.state == StateClosed {
		a.mu.Unlock()
		return fmt.Errorf("agent %s is closed", a.name)
	}
	a.state = StateProcessing
	a.history = append(a.history, NewUserTurn(userInput))
	a.mu.Unlock()

	a.emitter.Emit(EventRunStart, nil)
	a.emitter.Emit(EventUserInput, map[string]interface{}{
		"content": userInput,
	})

	err := a.loop(ctx)

	a.mu.Lock()
	if a.state != StateClosed {
		a.state = StateIdle
	}
	a.mu.Unlock()
	a.emitter.Emit(EventRunEnd, nil)
	return err
}

func (a *Agent) loop(ctx context.Context) error {
	retryPolicy := llm.DefaultRetryPolicy()
	if a.config.RetryPolicy != nil {
		retryPolicy = *a.config.RetryPolicy
	}

	roundCount := 0
	for {
		if roundCount >= a.config.MaxToolRounds {
			a.emitter.Emit(EventRoundLimit, map[string]interface{}{
				"round": roundCount,
			})
			return nil
		}

		select {
		case <-ctx.Done():
			a.emitter.Emit(EventError, map[string]interface{}{
				"error": "context cancelled",
			})
			return ctx.Err()
		default:
		}

		request := llm.Request{
			Model:      a.model,
			Messages:   append([]llm.Message{llm.SystemMessage(a.systemPrompt)}, HistoryToMessages(a.History())...),
			Tools:      a.registry.LLMDefinitions(),
			ToolChoice: &llm.ToolChoice{Mode: "auto"},
		}

		response, err := llm.Retry(ctx, retryPolicy, func(ctx context.Context) (*llm.Response, error) {
			return a.client.Complete(ctx, request)
		})
		if err != nil {
			a.emitter.Emit(EventError, map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("llm error: %w", err)
		}

		toolCalls := response.ToolCalls()
		a.mu.Lock()
		a.history = append(a.history, NewAssistantTurn(response.Text(), toolCalls, response.Usage, response.ID))
		a.mu.Unlock()

		if text := response.Text(); text != "" {
			a.emitter.Emit(EventAssistantText, map[string]interface{}{
				"text": text,
			})
		}

		// Natural completion.
		if len(toolCalls) == 0 {
			return nil
		}

		roundCount++
		results := make([]llm.ToolResult, len(toolCalls))
		for i, tc := range toolCalls {
			results[i] = a.executeTool(tc)
		}
		a.mu.Lock()
		a.history = append(a.history, NewToolResultsTurn(results))
		a.mu.Unlock()

		if a.config.EnableLoopDetection && DetectLoop(a.History(), a.config.LoopDetectionWindow) {
			warning := fmt.Sprintf("Loop detected: the last %d tool calls repeat. Try a different approach or answer directly.", a.config.LoopDetectionWindow)
			a.mu.Lock()
			a.history = append(a.history, NewSteeringTurn(warning))
			a.mu.Unlock()
			a.emitter.Emit(EventSteeringInjected, map[string]interface{}{
				"content": warning,
			})
		}
	}
}

// executeTool handles the full tool execution pipeline:
// lookup -> execute -> truncate -> emit -> return.
func (a *Agent) executeTool(toolCall llm.ToolCall) llm.ToolResult {
	a.emitter.Emit(EventToolCallStart, map[string]interface{}{
		"tool_name": toolCall.Name,
		"call_id":   toolCall.ID,
		"arguments": string(toolCall.Arguments),
	})

	registered := a.registry.Get(toolCall.Name)
	if registered == nil {
		errorMsg := fmt.Sprintf("Unknown tool: %s", toolCall.Name)
		a.emitter.Emit(EventToolCallEnd, map[string]interface{}{
			"call_id": toolCall.ID,
			"error":   errorMsg,
		})
		return llm.ToolResult{
			ToolCallID: toolCall.ID,
			Content:    errorMsg,
			IsError:    true,
		}
	}

	rawOutput, err := registered.Executor(toolCall.Arguments, a.ws)
	if err != nil {
		errorMsg := fmt.Sprintf("Tool error (%s): %v", toolCall.Name, err)
		a.emitter.Emit(EventToolCallEnd, map[string]interface{}{
			"call_id": toolCall.ID,
			"error":   errorMsg,
		})
		return llm.ToolResult{
			ToolCallID: toolCall.ID,
			Content:    errorMsg,
			IsError:    true,
		}
	}

	truncated := TruncateToolOutput(rawOutput, toolCall.Name, a.config.ToolOutputLimits, a.config.ToolLineLimits)

	// The event stream carries the full output; only the model sees the
	// truncated form.
	a.emitter.Emit(EventToolCallEnd, map[string]interface{}{
		"call_id": toolCall.ID,
		"output":  rawOutput,
	})

	return llm.ToolResult{
		ToolCallID: toolCall.ID,
		Content:    truncated,
		IsError:    false,
	}
}
