// Package repl implements the interactive prompt loop. Each line of input
// is lowercased and dispatched to every agent whose keyword appears in it
// as a substring, in registration order. A prompt can run several agents.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/webteam-ai/mentat/agent"
)

// Entry binds a dispatch keyword to an agent.
type Entry struct {
	Keyword string
	Agent   *agent.Agent
}

// REPL reads prompts and routes them to agents.
type REPL struct {
	entries []Entry
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
}

// Option configures the REPL.
type Option func(*REPL)

// WithLogger sets a trace logger. Dispatch decisions and agent events are
// logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(r *REPL) { r.logger = logger }
}

// New creates a REPL over the given streams. Entries are dispatched in the
// order given.
func New(in io.Reader, out io.Writer, entries []Entry, opts ...Option) *REPL {
	r := &REPL{
		entries: entries,
		in:      in,
		out:     out,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Keywords returns the dispatch keywords in order.
func (r *REPL) Keywords() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Keyword
	}
	return keys
}

// Match returns the entries whose keyword occurs in the lowercased prompt,
// in registration order. Every match runs; dispatch does not stop at the
// first hit.
func (r *REPL) Match(prompt string) []Entry {
	lowered := strings.ToLower(prompt)
	var matched []Entry
	for _, e := range r.entries {
		if strings.Contains(lowered, e.Keyword) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Run reads prompts until EOF, an exit command, or context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintln(r.out, "Use one of the following keywords based on your needs: "+strings.Join(r.Keywords(), ", "))
		fmt.Fprint(r.out, "Prompt: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		prompt := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if prompt == "exit" || prompt == "quit" {
			return nil
		}
		if prompt == "" {
			continue
		}

		r.dispatch(ctx, prompt)
	}
}

func (r *REPL) dispatch(ctx context.Context, prompt string) {
	matched := r.Match(prompt)
	r.logger.Debug("dispatching prompt",
		zap.String("prompt", prompt),
		zap.Int("matched", len(matched)),
	)

	for _, e := range matched {
		r.printf("%s\n", color.CyanString("Running %s agent...", e.Keyword))
		err := e.Agent.Run(ctx, prompt)
		r.drainEvents(e)
		if err != nil {
			r.printf("%s\n", color.RedString("%s agent failed: %v", e.Keyword, err))
			r.logger.Warn("agent run failed",
				zap.String("agent", e.Keyword),
				zap.Error(err),
			)
		}
	}
}

func (r *REPL) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
