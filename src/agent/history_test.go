package agent

import (
	"fmt"
	"testing"

	"github.com/opskit/kubeagent/src/aisdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStartsWithSystemTurn(t *testing.T) {
	h := NewHistory("you are kube-agent", 10)

	require.Equal(t, 1, h.Len())
	assert.Equal(t, "system", h.Messages()[0].Role)
	assert.Equal(t, "you are kube-agent", h.Messages()[0].Content)
}

func TestHistoryTrimKeepsSystemAndMostRecent(t *testing.T) {
	h := NewHistory("system prompt", 5)

	for i := 1; i <= 20; i++ {
		h.Append(aisdk.Message{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	msgs := h.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "system prompt", msgs[0].Content)

	// survivors are the most recent turns, relative order unchanged
	assert.Equal(t, "turn 17", msgs[1].Content)
	assert.Equal(t, "turn 18", msgs[2].Content)
	assert.Equal(t, "turn 19", msgs[3].Content)
	assert.Equal(t, "turn 20", msgs[4].Content)
}

func TestHistoryNoTrimUnderCap(t *testing.T) {
	h := NewHistory("system prompt", 10)

	for i := 1; i <= 5; i++ {
		h.Append(aisdk.Message{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	require.Equal(t, 6, h.Len())
	assert.Equal(t, "turn 1", h.Messages()[1].Content)
	assert.Equal(t, "turn 5", h.Messages()[5].Content)
}

func TestHistoryCapOne(t *testing.T) {
	h := NewHistory("system prompt", 1)

	h.Append(aisdk.Message{Role: "user", Content: "hello"})
	h.Append(aisdk.Message{Role: "assistant", Content: "hi"})

	require.Equal(t, 1, h.Len())
	assert.Equal(t, "system", h.Messages()[0].Role)
}

func TestHistoryUnbounded(t *testing.T) {
	h := NewHistory("system prompt", 0)

	for i := 0; i < 200; i++ {
		h.Append(aisdk.Message{Role: "user", Content: "turn"})
	}

	assert.Equal(t, 201, h.Len())
}

func TestHistoryTrimAcrossCaps(t *testing.T) {
	for _, cap := range []int{2, 3, 8, 80} {
		t.Run(fmt.Sprintf("cap_%d", cap), func(t *testing.T) {
			h := NewHistory("system prompt", cap)
			for i := 1; i <= 3*cap; i++ {
				h.Append(aisdk.Message{Role: "user", Content: fmt.Sprintf("turn %d", i)})

				require.LessOrEqual(t, h.Len(), cap, "history exceeded cap after append %d", i)
				require.Equal(t, "system", h.Messages()[0].Role)
			}

			// surviving non-system turns must be consecutive and most recent
			msgs := h.Messages()
			for j := 2; j < len(msgs); j++ {
				var prev, cur int
				fmt.Sscanf(msgs[j-1].Content, "turn %d", &prev)
				fmt.Sscanf(msgs[j].Content, "turn %d", &cur)
				assert.Equal(t, prev+1, cur)
			}
		})
	}
}
