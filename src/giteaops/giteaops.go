// Package giteaops implements the Gitea tools: repository, branch, user,
// and webhook management over the Gitea REST API, plus shell-level git
// operations confined to the sandbox roots. Every operation returns a text
// report; failures are reported in the same channel, never as errors.
package giteaops

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"code.gitea.io/sdk/gitea"

	"github.com/opskit/kubeagent/src/sandbox"
)

const notConfigured = "Gitea URL이 설정되지 않았습니다."

const defaultTimeout = 30 * time.Second

// Ops performs Gitea REST and git CLI operations. The HTTP connection pool
// is owned by the Ops and released by Close.
type Ops struct {
	baseURL string
	token   string
	http    *http.Client
	guard   *sandbox.Guard
	logger  *slog.Logger

	mu     sync.Mutex
	client *gitea.Client

	closeOnce sync.Once
}

// NewOps creates Gitea operations against url. An empty url disables every
// REST operation; git CLI operations stay available.
func NewOps(url, token string, timeout time.Duration, logger *slog.Logger) *Ops {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ops{
		baseURL: strings.TrimRight(url, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		guard:   sandbox.NewGuard(),
		logger:  logger.With("component", "gitea_ops"),
	}
}

func (o *Ops) enabled() bool {
	return o.baseURL != ""
}

// api returns the shared SDK client, building it on first use. The request
// context is rebound on every call; tool calls run sequentially, so the
// shared client is never raced.
func (o *Ops) api(ctx context.Context) (*gitea.Client, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.client == nil {
		client, err := gitea.NewClient(o.baseURL, gitea.SetToken(o.token), gitea.SetHTTPClient(o.http))
		if err != nil {
			return nil, err
		}
		o.logger.Debug("gitea client initialized", "url", o.baseURL)
		o.client = client
	}
	o.client.SetContext(ctx)
	return o.client, nil
}

// Close releases the HTTP connection pool. Safe to call more than once.
func (o *Ops) Close() {
	o.closeOnce.Do(func() {
		o.http.CloseIdleConnections()
	})
}

// failure renders an operation failure: HTTP error statuses carry their
// code, everything else keeps the raw error text.
func failure(label string, resp *gitea.Response, err error) string {
	if resp != nil && resp.StatusCode >= 400 {
		return fmt.Sprintf("%s 실패: HTTP %d", label, resp.StatusCode)
	}
	return fmt.Sprintf("%s 중 오류: %v", label, err)
}

// truncate caps s at max characters.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
