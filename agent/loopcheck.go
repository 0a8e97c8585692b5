package agent

import (
	"hash/fnv"
	"strconv"

	"github.com/webteam-ai/mentat/llm"
)

// callSignature fingerprints a tool call by name and raw arguments, so two
// calls compare equal only when the model asked for exactly the same thing.
func callSignature(tc llm.ToolCall) string {
	h := fnv.New64a()
	h.Write([]byte(tc.Name))
	h.Write([]byte{0})
	h.Write(tc.Arguments)
	return strconv.FormatUint(h.Sum64(), 16)
}

// recentToolCalls collects the signatures of the last n tool calls in the
// history, in chronological order.
func recentToolCalls(history []Turn, n int) []string {
	var sigs []string
	for _, turn := range history {
		if turn.Kind != TurnAssistant || turn.Assistant == nil {
			continue
		}
		for _, tc := range turn.Assistant.ToolCalls {
			sigs = append(sigs, callSignature(tc))
		}
	}
	if len(sigs) > n {
		sigs = sigs[len(sigs)-n:]
	}
	return sigs
}

// repeatsWithPeriod reports whether sigs is the same period-length sequence
// repeated end to end.
func repeatsWithPeriod(sigs []string, period int) bool {
	for i := period; i < len(sigs); i++ {
		if sigs[i] != sigs[i-period] {
			return false
		}
	}
	return true
}

// DetectLoop reports whether the last windowSize tool calls cycle with
// period 1 or 2. Shorter histories never count as loops.
func DetectLoop(history []Turn, windowSize int) bool {
	if windowSize <= 0 {
		return false
	}
	sigs := recentToolCalls(history, windowSize)
	if len(sigs) < windowSize {
		return false
	}
	for period := 1; period <= 2; period++ {
		if windowSize%period != 0 {
			continue
		}
		if repeatsWithPeriod(sigs, period) {
			return true
		}
	}
	return false
}
