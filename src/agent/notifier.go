package agent

// Notifier receives display events from the conversation loop. Calls are
// observational only; the loop never depends on their behavior.
type Notifier interface {
	// OnUserInput is called once per user turn before processing begins.
	OnUserInput(input string)

	// OnThinking is called before the first model call of a turn.
	OnThinking()

	// OnAgentReply is called with each non-empty assistant text reply.
	OnAgentReply(content string)

	// OnToolStart is called before each tool dispatch.
	OnToolStart(name string)

	// OnToolResult is called after each tool dispatch with the full result
	// string and the display truncation limit.
	OnToolResult(name, result string, maxChars int)

	// OnAutoContinue is called before each synthetic continue turn.
	OnAutoContinue(round, max int)

	// OnInfo is called with informational status lines.
	OnInfo(message string)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) OnUserInput(string)               {}
func (NopNotifier) OnThinking()                      {}
func (NopNotifier) OnAgentReply(string)              {}
func (NopNotifier) OnToolStart(string)               {}
func (NopNotifier) OnToolResult(string, string, int) {}
func (NopNotifier) OnAutoContinue(int, int)          {}
func (NopNotifier) OnInfo(string)                    {}

var _ Notifier = NopNotifier{}
