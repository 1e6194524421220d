package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/spf13/afero"

	"github.com/opskit/kubeagent/src/agent"
	"github.com/opskit/kubeagent/src/audit"
	"github.com/opskit/kubeagent/src/config"
	"github.com/opskit/kubeagent/src/console"
	"github.com/opskit/kubeagent/src/fileops"
	"github.com/opskit/kubeagent/src/giteaops"
	"github.com/opskit/kubeagent/src/kubeagent"
	"github.com/opskit/kubeagent/src/kubeops"
	"github.com/opskit/kubeagent/src/llmclient"
	"github.com/opskit/kubeagent/src/sandbox"
)

// ChatCmd starts the interactive session.
type ChatCmd struct{}

func (c *ChatCmd) Run(cli *CLI) error {
	cfg := cli.Config.Resolve()
	if err := cfg.Validate(); err != nil {
		return err
	}

	sessionID := uuid.New().String()
	logger := newLogger(cli.Verbose, cli.LogFile).With("session_id", sessionID)

	client := llmclient.NewClient(llmclient.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMURL,
		Logger:  logger,
	})

	k8s := kubeops.NewOps(cfg.Namespace, cfg.KubeContext, logger)
	gitea := giteaops.NewOps(cfg.GiteaURL, cfg.GiteaToken, cfg.GiteaTimeout, logger)
	defer gitea.Close()
	files := fileops.NewOps(afero.NewOsFs(), sandbox.NewGuard())

	toolbox, err := kubeagent.NewToolbox(k8s, gitea, files)
	if err != nil {
		return err
	}
	toolbox.RegisterMiddleware(agent.LoggingMiddleware(logger))
	closeAudit := attachAudit(toolbox, sessionID, logger)
	defer closeAudit()

	cons := console.New(os.Stdout)

	eng := agent.New(client, toolbox, cons, logger, agent.Config{
		Model:              cfg.LLMModel,
		SystemPrompt:       kubeagent.SystemPrompt(cfg.Namespace, cfg.GiteaURL),
		MaxMessages:        cfg.MaxMessages,
		MaxToolIterations:  cfg.MaxToolIterations,
		MaxAutoContinue:    cfg.MaxAutoContinue,
		ToolResultMaxChars: cfg.ToolResultMaxChars,
	})

	cons.Banner(cfg.LLMURL, cfg.Namespace, cfg.GiteaURL)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := config.DefaultStatePaths().HistoryPath
	loadHistory(line, histPath)
	defer saveHistory(line, histPath, logger)

	for {
		input, err := line.Prompt("You: ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			cons.OnInfo("(cancelled)")
			continue
		case errors.Is(err, io.EOF):
			cons.Goodbye()
			return nil
		case err != nil:
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if isExitCommand(trimmed) {
			cons.Goodbye()
			return nil
		}
		line.AppendHistory(trimmed)

		runTurn(eng, cons, logger, trimmed)
	}
}

// runTurn drives one user turn under a per-turn interrupt context so Ctrl+C
// cancels the in-flight work without ending the session. Whatever the turn
// appended before cancellation stays in the history.
func runTurn(eng *agent.Agent, cons *console.Console, logger *slog.Logger, input string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := eng.HandleUserInput(ctx, input); err != nil {
		if ctx.Err() != nil {
			cons.OnInfo("(cancelled)")
			return
		}
		cons.Error(fmt.Sprintf("예기치 않은 오류: %s", err))
		logger.Error("turn failed", "error", err)
	}
}

// attachAudit wires the execution trail when the state directory is
// usable; a failure disables auditing but never blocks the session.
func attachAudit(toolbox *agent.Toolbox, sessionID string, logger *slog.Logger) func() {
	path := config.DefaultStatePaths().AuditDBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("audit log disabled", "error", err)
		return func() {}
	}
	log, err := audit.Open(path)
	if err != nil {
		logger.Warn("audit log disabled", "error", err)
		return func() {}
	}
	toolbox.RegisterMiddleware(audit.Middleware(log, sessionID, logger))
	return func() { log.Close() }
}

func isExitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit", "bye":
		return true
	}
	return false
}

func loadHistory(line *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.ReadHistory(f)
}

func saveHistory(line *liner.State, path string, logger *slog.Logger) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("failed to save prompt history", "error", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Warn("failed to save prompt history", "error", err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logger.Warn("failed to save prompt history", "error", err)
	}
}
