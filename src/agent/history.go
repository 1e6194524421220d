package agent

import (
	"github.com/opskit/kubeagent/src/aisdk"
)

// History is the bounded conversation transcript. It always begins with the
// system turn; once the cap is exceeded the oldest non-system turns are
// evicted. Eviction is lossy and silent.
type History struct {
	maxMessages int
	messages    []aisdk.Message
}

// NewHistory creates a history seeded with the system prompt. maxMessages <= 0
// disables trimming.
func NewHistory(systemPrompt string, maxMessages int) *History {
	return &History{
		maxMessages: maxMessages,
		messages: []aisdk.Message{
			{Role: "system", Content: systemPrompt},
		},
	}
}

// Append adds a turn to the end and trims the history back under the cap.
func (h *History) Append(msg aisdk.Message) {
	h.messages = append(h.messages, msg)
	h.trim()
}

// trim keeps the system turn plus the most recent maxMessages-1 turns.
func (h *History) trim() {
	if h.maxMessages <= 0 || len(h.messages) <= h.maxMessages {
		return
	}
	kept := h.messages[len(h.messages)-(h.maxMessages-1):]
	trimmed := make([]aisdk.Message, 0, h.maxMessages)
	trimmed = append(trimmed, h.messages[0])
	trimmed = append(trimmed, kept...)
	h.messages = trimmed
}

// Messages returns a snapshot of the current ordered transcript for
// submission to the model. Every transport call receives the full surviving
// history.
func (h *History) Messages() []aisdk.Message {
	out := make([]aisdk.Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Len returns the number of turns currently held.
func (h *History) Len() int {
	return len(h.messages)
}
