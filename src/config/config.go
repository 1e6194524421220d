// Package config holds the agent settings. Values come from flags and
// KUBE_AGENT_* environment variables (kong reads the struct tags when the
// struct is embedded in a CLI); zero fields are filled by Resolve.
package config

import (
	"time"
)

// In-cluster LiteLLM endpoint used when no LLM URL is configured.
const DefaultLLMURL = "http://litellm.litellm.svc.cluster.local:4000/v1"

const (
	DefaultLLMModel           = "gpt-4o"
	DefaultLLMAPIKey          = "no-key"
	DefaultNamespace          = "default"
	DefaultMaxMessages        = 80
	DefaultMaxToolIterations  = 30
	DefaultMaxAutoContinue    = 5
	DefaultGiteaTimeout       = 30 * time.Second
	DefaultToolResultMaxChars = 3000
)

// Config carries everything a session needs. Settings precedence is
// flag > environment > default.
type Config struct {
	LLMURL    string `name:"llm-url" short:"l" env:"KUBE_AGENT_LLM_URL" help:"LLM API base URL (default: in-cluster LiteLLM endpoint)." validate:"required,url"`
	LLMModel  string `name:"llm-model" short:"m" env:"KUBE_AGENT_LLM_MODEL" help:"LLM model name (default: gpt-4o)." validate:"required"`
	LLMAPIKey string `name:"llm-api-key" env:"KUBE_AGENT_LLM_API_KEY" help:"LLM API key."`

	GiteaURL   string `name:"gitea-url" short:"g" env:"KUBE_AGENT_GITEA_URL" help:"Gitea server URL." validate:"omitempty,url"`
	GiteaToken string `name:"gitea-token" env:"KUBE_AGENT_GITEA_TOKEN" help:"Gitea API token."`

	Namespace   string `name:"namespace" short:"n" env:"KUBE_AGENT_NAMESPACE" help:"Kubernetes namespace (default: default)." validate:"required,dns1123"`
	KubeContext string `name:"kube-context" env:"KUBE_AGENT_CONTEXT" help:"Kubernetes context name."`

	MaxMessages        int           `name:"max-messages" env:"KUBE_AGENT_MAX_MESSAGES" help:"Maximum message history length (default: 80)." validate:"min=2"`
	MaxToolIterations  int           `name:"max-tool-iterations" env:"KUBE_AGENT_MAX_TOOL_ITERATIONS" help:"Maximum tool-call iterations per request (default: 30)." validate:"min=1"`
	MaxAutoContinue    int           `name:"max-auto-continue" env:"KUBE_AGENT_MAX_AUTO_CONTINUE" help:"Maximum autonomous continue rounds (default: 5)." validate:"min=0"`
	GiteaTimeout       time.Duration `name:"gitea-timeout" env:"KUBE_AGENT_GITEA_TIMEOUT" help:"Gitea API HTTP timeout (default: 30s)." validate:"min=0"`
	ToolResultMaxChars int           `name:"tool-result-max-chars" env:"KUBE_AGENT_TOOL_RESULT_MAX_CHARS" help:"Maximum characters of tool output to display (default: 3000)." validate:"min=1"`
}

// Resolve fills zero fields with defaults and returns the final config.
// Gitea stays disabled when no URL was given.
func (c Config) Resolve() Config {
	if c.LLMURL == "" {
		c.LLMURL = DefaultLLMURL
	}
	if c.LLMModel == "" {
		c.LLMModel = DefaultLLMModel
	}
	if c.LLMAPIKey == "" {
		c.LLMAPIKey = DefaultLLMAPIKey
	}
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.MaxMessages == 0 {
		c.MaxMessages = DefaultMaxMessages
	}
	if c.MaxToolIterations == 0 {
		c.MaxToolIterations = DefaultMaxToolIterations
	}
	if c.MaxAutoContinue == 0 {
		c.MaxAutoContinue = DefaultMaxAutoContinue
	}
	if c.GiteaTimeout == 0 {
		c.GiteaTimeout = DefaultGiteaTimeout
	}
	if c.ToolResultMaxChars == 0 {
		c.ToolResultMaxChars = DefaultToolResultMaxChars
	}
	return c
}
