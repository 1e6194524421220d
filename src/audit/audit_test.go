package audit

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opskit/kubeagent/src/agent"
	"github.com/opskit/kubeagent/src/schema"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	log, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRecordAndRecent(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	for _, name := range []string{"k8s_list_pods", "gitea_list_repos", "file_read"} {
		require.NoError(t, log.Record(ctx, &Entry{
			SessionID: "session-1",
			ToolName:  name,
			Input:     `{}`,
			Output:    "ok",
		}))
	}

	entries, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "file_read", entries[0].ToolName)
	assert.Equal(t, "gitea_list_repos", entries[1].ToolName)
	assert.Equal(t, "session-1", entries[0].SessionID)
}

func TestRecordFillsDefaults(t *testing.T) {
	log := newTestLog(t)

	entry := &Entry{SessionID: "s", ToolName: "k8s_list_pods"}
	require.NoError(t, log.Record(context.Background(), entry))

	_, err := uuid.Parse(entry.ID)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), entry.CreatedAt, time.Minute)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	log, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, log.Record(context.Background(), &Entry{ToolName: "file_read"}))
	require.NoError(t, log.Close())

	log, err = Open(path)
	require.NoError(t, err)
	defer log.Close()

	entries, err := log.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "file_read", entries[0].ToolName)
}

func testTool(name string, handler agent.Handler) *agent.FuncTool {
	return &agent.FuncTool{
		Name:        name,
		Description: "test tool",
		Parameters:  schema.CreateObjectSchema(nil, nil),
		Handler:     handler,
	}
}

func TestMiddlewareRecordsExecutions(t *testing.T) {
	log := newTestLog(t)

	tb := agent.NewToolbox()
	require.NoError(t, tb.RegisterTool(testTool("k8s_get_pod", func(ctx context.Context, raw json.RawMessage) (string, error) {
		return "Pod: web-1", nil
	})))
	tb.RegisterMiddleware(Middleware(log, "session-7", nil))

	result := tb.Execute(context.Background(), "k8s_get_pod", json.RawMessage(`{"name":"web-1"}`))
	assert.Equal(t, "Pod: web-1", result)

	entries, err := log.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session-7", entries[0].SessionID)
	assert.Equal(t, "k8s_get_pod", entries[0].ToolName)
	assert.Equal(t, `{"name":"web-1"}`, entries[0].Input)
	assert.Equal(t, "Pod: web-1", entries[0].Output)
	assert.Empty(t, entries[0].Error)
	assert.GreaterOrEqual(t, entries[0].DurationMs, int64(0))
}

func TestMiddlewareRecordsFailures(t *testing.T) {
	log := newTestLog(t)

	tb := agent.NewToolbox()
	require.NoError(t, tb.RegisterTool(testTool("k8s_get_pod", func(ctx context.Context, raw json.RawMessage) (string, error) {
		return "", &agent.MissingArgError{Arg: "name"}
	})))
	tb.RegisterMiddleware(Middleware(log, "session-7", nil))

	result := tb.Execute(context.Background(), "k8s_get_pod", json.RawMessage(`{}`))
	assert.Equal(t, "도구 'k8s_get_pod' 실행 시 필수 인자 누락: 'name'", result)

	entries, err := log.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Error, `missing required argument "name"`)
	assert.Empty(t, entries[0].Output)
}

func TestMiddlewareTruncatesLongPayloads(t *testing.T) {
	log := newTestLog(t)

	long := strings.Repeat("a", previewMax+500)
	tb := agent.NewToolbox()
	require.NoError(t, tb.RegisterTool(testTool("file_read", func(ctx context.Context, raw json.RawMessage) (string, error) {
		return long, nil
	})))
	tb.RegisterMiddleware(Middleware(log, "s", nil))

	result := tb.Execute(context.Background(), "file_read", json.RawMessage(`{"path":"/tmp/big"}`))
	assert.Equal(t, long, result)

	entries, err := log.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Output, "... (truncated)"))
	assert.Equal(t, previewMax+utf8.RuneCountInString("... (truncated)"), utf8.RuneCountInString(entries[0].Output))
}

func TestMiddlewareFailureDoesNotBreakDispatch(t *testing.T) {
	log := newTestLog(t)
	require.NoError(t, log.Close())

	tb := agent.NewToolbox()
	require.NoError(t, tb.RegisterTool(testTool("file_read", func(ctx context.Context, raw json.RawMessage) (string, error) {
		return "contents", nil
	})))
	tb.RegisterMiddleware(Middleware(log, "s", nil))

	// the closed database makes every record fail; the dispatch result is untouched
	result := tb.Execute(context.Background(), "file_read", nil)
	assert.Equal(t, "contents", result)
}

func TestMiddlewareRecordsCancelledDispatch(t *testing.T) {
	log := newTestLog(t)

	tb := agent.NewToolbox()
	require.NoError(t, tb.RegisterTool(testTool("k8s_list_pods", func(ctx context.Context, raw json.RawMessage) (string, error) {
		return "", ctx.Err()
	})))
	tb.RegisterMiddleware(Middleware(log, "s", nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tb.Execute(ctx, "k8s_list_pods", nil)

	entries, err := log.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Error, "context canceled")
}
