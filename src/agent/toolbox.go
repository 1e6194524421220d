package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/opskit/kubeagent/src/aisdk"
)

// Handler executes a tool call with the model-supplied raw arguments.
type Handler func(ctx context.Context, raw json.RawMessage) (string, error)

// Middleware wraps tool execution to add cross-cutting behavior.
type Middleware func(tool Tool, next Handler) Handler

// Toolbox holds the fixed tool catalog and dispatches tool calls by name.
type Toolbox struct {
	tools      map[string]Tool
	order      []string
	middleware []Middleware
}

// NewToolbox creates an empty toolbox.
func NewToolbox() *Toolbox {
	return &Toolbox{
		tools: make(map[string]Tool),
	}
}

// RegisterTool registers a tool. The catalog keeps registration order.
func (tb *Toolbox) RegisterTool(tool Tool) error {
	if tool.GetName() == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	// Check for duplicate tool names
	if _, exists := tb.tools[tool.GetName()]; exists {
		return fmt.Errorf("tool %s is already registered", tool.GetName())
	}

	tb.tools[tool.GetName()] = tool
	tb.order = append(tb.order, tool.GetName())
	return nil
}

// RegisterMiddleware registers middleware that will be applied to all tool executions.
// Middleware is applied in the order it's registered (first registered = outermost layer).
func (tb *Toolbox) RegisterMiddleware(middleware Middleware) {
	tb.middleware = append(tb.middleware, middleware)
}

// Tools returns the tools in registration order.
func (tb *Toolbox) Tools() []Tool {
	out := make([]Tool, 0, len(tb.order))
	for _, name := range tb.order {
		out = append(out, tb.tools[name])
	}
	return out
}

// ChatTools returns the catalog in the chat completion wire format.
func (tb *Toolbox) ChatTools() []*aisdk.ChatTool {
	return ToChatTools(tb.Tools())
}

// GetTool returns a specific tool by name.
func (tb *Toolbox) GetTool(name string) (Tool, bool) {
	tool, exists := tb.tools[name]
	return tool, exists
}

// HasTool checks if a tool is available.
func (tb *Toolbox) HasTool(name string) bool {
	_, exists := tb.tools[name]
	return exists
}

// Execute dispatches a tool call with middleware applied and flattens every
// failure into the returned result string. Tool failures must not abort the
// conversation, so no error ever propagates to the caller.
func (tb *Toolbox) Execute(ctx context.Context, name string, raw json.RawMessage) string {
	tool, exists := tb.tools[name]
	if !exists {
		return fmt.Sprintf("알 수 없는 도구: %s", name)
	}

	handler := Handler(tool.Execute)
	for i := len(tb.middleware) - 1; i >= 0; i-- {
		handler = tb.middleware[i](tool, handler)
	}

	result, err := handler(ctx, raw)
	if err == nil {
		return result
	}

	var missing *MissingArgError
	var malformed *MalformedArgsError
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("도구 '%s' 실행 시 필수 인자 누락: '%s'", name, missing.Arg)
	case errors.As(err, &malformed):
		return fmt.Sprintf("도구 '%s' 인자 파싱 오류: %v", name, malformed.Err)
	default:
		return fmt.Sprintf("도구 '%s' 실행 중 오류: %v", name, err)
	}
}

// Common middleware implementations

// LoggingMiddleware logs tool execution details. Argument failures are the
// model's mistakes and stay at debug; everything else that fails is a real
// execution error.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(tool Tool, next Handler) Handler {
		return func(ctx context.Context, raw json.RawMessage) (string, error) {
			logger.Debug("executing tool", "tool", tool.GetName(), "params", string(raw))
			result, err := next(ctx, raw)
			switch {
			case err == nil:
				logger.Debug("tool execution completed", "tool", tool.GetName())
			case isArgError(err):
				logger.Debug("tool rejected arguments", "tool", tool.GetName(), "error", err)
			default:
				logger.Error("tool execution failed", "tool", tool.GetName(), "error", err)
			}
			return result, err
		}
	}
}

func isArgError(err error) bool {
	var missing *MissingArgError
	var malformed *MalformedArgsError
	return errors.As(err, &missing) || errors.As(err, &malformed)
}
