package repl

import (
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/webteam-ai/mentat/agent"
)

// drainEvents renders everything an agent buffered during its run. Run
// returns only after its final event is emitted, so draining until the
// channel is empty prints the complete run before the next prompt.
func (r *REPL) drainEvents(e Entry) {
	for {
		select {
		case ev, ok := <-e.Agent.Events():
			if !ok {
				return
			}
			r.renderEvent(e.Keyword, ev)
		default:
			return
		}
	}
}

func (r *REPL) renderEvent(keyword string, ev agent.Event) {
	r.logger.Debug("agent event",
		zap.String("agent", keyword),
		zap.String("kind", string(ev.Kind)),
	)

	switch ev.Kind {
	case agent.EventAssistantText:
		if text, ok := ev.Data["text"].(string); ok && text != "" {
			r.printf("%s\n", text)
		}
	case agent.EventToolCallStart:
		name, _ := ev.Data["tool_name"].(string)
		r.printf("%s\n", color.YellowString("> %s", name))
	case agent.EventToolCallEnd:
		if errMsg, ok := ev.Data["error"].(string); ok {
			r.printf("%s\n", color.RedString("  %s", errMsg))
			return
		}
		if output, ok := ev.Data["output"].(string); ok && output != "" {
			r.printf("%s\n", color.GreenString("  %s", output))
		}
	case agent.EventSteeringInjected:
		if content, ok := ev.Data["content"].(string); ok {
			r.printf("%s\n", color.MagentaString("[steering] %s", content))
		}
	case agent.EventRoundLimit:
		r.printf("%s\n", color.YellowString("[%s] tool round limit reached", keyword))
	case agent.EventWarning:
		if msg, ok := ev.Data["warning"].(string); ok {
			r.printf("%s\n", color.YellowString("[%s] %s", keyword, msg))
		}
	case agent.EventError:
		if msg, ok := ev.Data["error"].(string); ok {
			r.printf("%s\n", color.RedString("[%s] %s", keyword, msg))
		}
	}
}
