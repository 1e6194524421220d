package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/opskit/kubeagent/src/aisdk"
)

// continuePrompt is the synthetic user turn injected between auto-continue rounds.
const continuePrompt = "작업을 계속 진행해주세요. 도구를 호출하여 다음 단계를 실행하세요. 모든 단계가 완료되면 최종 결과를 요약해주세요."

// noResponse is surfaced when the model produces neither text nor tool calls.
const noResponse = "(no response)"

// ModelClient is the slice of the chat completion API the agent depends on.
type ModelClient interface {
	CreateChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error)
}

// Config bounds a single conversation.
type Config struct {
	Model        string
	SystemPrompt string
	// MaxMessages caps the history length; the system turn always survives.
	MaxMessages int
	// MaxToolIterations caps model re-consultations within one tool-call round.
	MaxToolIterations int
	// MaxAutoContinue caps the synthetic continue turns per user turn.
	MaxAutoContinue int
	// ToolResultMaxChars is the display truncation limit handed to the notifier.
	ToolResultMaxChars int
}

// Agent drives one conversation: user turns in, model calls and tool
// dispatches under the configured ceilings, text replies out. All processing
// is strictly sequential; the agent is not safe for concurrent use.
type Agent struct {
	client   ModelClient
	toolbox  *Toolbox
	history  *History
	notifier Notifier
	logger   *slog.Logger
	cfg      Config
}

// New creates an agent with a fresh history seeded from cfg.SystemPrompt.
func New(client ModelClient, toolbox *Toolbox, notifier Notifier, logger *slog.Logger, cfg Config) *Agent {
	if toolbox == nil {
		toolbox = NewToolbox()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{
		client:   client,
		toolbox:  toolbox,
		history:  NewHistory(cfg.SystemPrompt, cfg.MaxMessages),
		notifier: notifier,
		logger:   logger.With("component", "agent"),
		cfg:      cfg,
	}
}

// HandleUserInput runs one full user turn: model calls, tool-call rounds, and
// auto-continue rounds until the reply is judged final or a ceiling is hit.
// The returned string is the last surfaced reply. The error is non-nil only
// when ctx was cancelled mid-turn; whatever was appended before cancellation
// stays in the history.
func (a *Agent) HandleUserInput(ctx context.Context, userInput string) (string, error) {
	a.notifier.OnUserInput(userInput)

	a.history.Append(aisdk.Message{Role: "user", Content: userInput})

	a.notifier.OnThinking()

	final := ""
	for round := 0; round <= a.cfg.MaxAutoContinue; round++ {
		reply, err := a.complete(ctx)
		if err != nil {
			return "", err
		}

		if len(reply.ToolCalls) > 0 {
			reply, err = a.runToolCalls(ctx, reply)
			if err != nil {
				return "", err
			}
		}

		if reply.Content == "" {
			a.notifier.OnInfo(noResponse)
			if final == "" {
				final = noResponse
			}
			break
		}

		a.notifier.OnAgentReply(reply.Content)
		a.history.Append(aisdk.Message{Role: "assistant", Content: reply.Content})
		final = reply.Content

		if round >= a.cfg.MaxAutoContinue {
			break
		}
		if !needsContinuation(reply.Content) {
			break
		}

		a.notifier.OnAutoContinue(round+1, a.cfg.MaxAutoContinue)
		a.history.Append(aisdk.Message{Role: "user", Content: continuePrompt})
	}
	return final, nil
}

// runToolCalls resolves one tool-call round: execute every requested call in
// the order the model produced it, append the results, and re-consult the
// model, repeating until the model stops requesting tools or the iteration
// ceiling is hit. The ceiling is the loop's only liveness guarantee; reaching
// it is not an error, the last reply is returned as-is even if it still
// carries unexecuted calls.
func (a *Agent) runToolCalls(ctx context.Context, msg aisdk.Message) (aisdk.Message, error) {
	current := msg
	for iteration := 0; len(current.ToolCalls) > 0 && iteration < a.cfg.MaxToolIterations; iteration++ {
		a.logger.Debug("tool call round", "iteration", iteration+1, "calls", len(current.ToolCalls))

		a.history.Append(current)

		for _, tc := range current.ToolCalls {
			if err := ctx.Err(); err != nil {
				return aisdk.Message{}, err
			}

			name := tc.Function.Name
			a.notifier.OnToolStart(name)
			result := a.toolbox.Execute(ctx, name, json.RawMessage(tc.Function.Arguments))
			a.notifier.OnToolResult(name, result, a.cfg.ToolResultMaxChars)

			a.history.Append(aisdk.Message{
				Role:       "tool",
				ToolCallID: tc.ID,
				Content:    result,
			})
		}

		reply, err := a.complete(ctx)
		if err != nil {
			return aisdk.Message{}, err
		}
		current = reply
	}
	return current, nil
}

// complete submits the full history snapshot plus the tool catalog. Transport
// failures are downgraded to an assistant reply carrying the error text so the
// loop never needs a transport-error branch; cancellation is the only error
// returned.
func (a *Agent) complete(ctx context.Context) (aisdk.Message, error) {
	req := &aisdk.ChatCompletionRequest{
		Model:    a.cfg.Model,
		Messages: a.history.Messages(),
	}
	if tools := a.toolbox.ChatTools(); len(tools) > 0 {
		req.Tools = tools
		req.ToolChoice = "auto"
	}

	a.logger.Debug("LLM request", "model", req.Model, "messages", len(req.Messages), "tools", len(req.Tools))

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return aisdk.Message{}, ctx.Err()
		}
		return a.downgrade(err), nil
	}
	if len(resp.Choices) == 0 {
		return a.downgrade(errors.New("no choices in response")), nil
	}

	msg := resp.Choices[0].Message
	msg.Role = "assistant"
	return msg, nil
}

// downgrade converts a transport failure into an assistant text reply.
func (a *Agent) downgrade(err error) aisdk.Message {
	a.logger.Error("LLM API call failed", "error", err)
	return aisdk.Message{
		Role:    "assistant",
		Content: fmt.Sprintf("LLM API 호출 중 오류가 발생했습니다: %v", err),
	}
}
