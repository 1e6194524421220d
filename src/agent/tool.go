package agent

import (
	"context"
	"encoding/json"
	"fmt"

	jsonschema "github.com/swaggest/jsonschema-go"

	"github.com/opskit/kubeagent/src/aisdk"
)

// Tool is the interface that all tools must implement
type Tool interface {
	// GetType returns the tool type (always "function" for now)
	GetType() string

	// GetName returns the tool's name
	GetName() string

	// GetDescription returns the tool's description
	GetDescription() string

	// GetParameters returns the JSON schema for the tool's parameters
	GetParameters() *jsonschema.Schema

	// Execute runs the tool with the model-supplied raw argument payload
	Execute(ctx context.Context, raw json.RawMessage) (string, error)
}

// FuncTool adapts a plain handler function to the Tool interface.
type FuncTool struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Handler     func(ctx context.Context, raw json.RawMessage) (string, error)
}

// GetType returns the tool type
func (t *FuncTool) GetType() string {
	return "function"
}

// GetName returns the tool's name
func (t *FuncTool) GetName() string {
	return t.Name
}

// GetDescription returns the tool's description
func (t *FuncTool) GetDescription() string {
	return t.Description
}

// GetParameters returns the tool's parameter schema
func (t *FuncTool) GetParameters() *jsonschema.Schema {
	return t.Parameters
}

// Execute runs the tool
func (t *FuncTool) Execute(ctx context.Context, raw json.RawMessage) (string, error) {
	if t.Handler == nil {
		return "", fmt.Errorf("tool %s has no handler", t.Name)
	}
	return t.Handler(ctx, raw)
}

// Ensure FuncTool implements the Tool interface
var _ Tool = (*FuncTool)(nil)

// ToChatTool converts a Tool interface to ChatTool for API requests
func ToChatTool(tool Tool) *aisdk.ChatTool {
	return &aisdk.ChatTool{
		Type: tool.GetType(),
		Function: aisdk.ChatToolFunction{
			Name:        tool.GetName(),
			Description: tool.GetDescription(),
			Parameters:  tool.GetParameters(),
		},
	}
}

// ToChatTools converts a slice of Tool interfaces to ChatTools
func ToChatTools(tools []Tool) []*aisdk.ChatTool {
	chatTools := make([]*aisdk.ChatTool, len(tools))
	for i, tool := range tools {
		chatTools[i] = ToChatTool(tool)
	}
	return chatTools
}
