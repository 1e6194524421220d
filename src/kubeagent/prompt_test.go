package kubeagent

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemPromptInstructions(t *testing.T) {
	prompt := SystemPrompt("default", "http://gitea.ops:3000")

	assert.True(t, strings.HasPrefix(prompt, "You are kube-agent, an autonomous AI assistant"))
	assert.Contains(t, prompt, "## Capabilities")
	assert.Contains(t, prompt, "## Autonomous Execution Rules")
	assert.Contains(t, prompt, "## Workflow Pattern (for complex tasks)")
	assert.Contains(t, prompt, "Respond in the same language as the user.")
}

func TestSystemPromptEnvironmentTrailer(t *testing.T) {
	prompt := SystemPrompt("platform", "http://gitea.ops:3000")

	assert.Contains(t, prompt, "<env>")
	assert.Contains(t, prompt, "</env>")
	assert.Contains(t, prompt, "Platform: "+runtime.GOOS)
	assert.Contains(t, prompt, "Kubernetes namespace: platform")
	assert.Contains(t, prompt, "Gitea: http://gitea.ops:3000")
	assert.Contains(t, prompt, "Today's date: "+time.Now().Format("2006-01-02"))
}

func TestSystemPromptWithoutGitea(t *testing.T) {
	prompt := SystemPrompt("default", "")
	assert.Contains(t, prompt, "Gitea: (not configured)")
}
