package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/opskit/kubeagent/src/audit"
	"github.com/opskit/kubeagent/src/config"
)

// AuditCmd lists recent tool executions recorded by chat sessions.
type AuditCmd struct {
	Limit int    `short:"l" default:"20" help:"Number of entries to show."`
	DB    string `help:"Path to the audit database (default: the per-user state location)."`
}

func (a *AuditCmd) Run() error {
	path := a.DB
	if path == "" {
		path = config.DefaultStatePaths().AuditDBPath
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no audit log at %s", path)
	}

	log, err := audit.Open(path)
	if err != nil {
		return err
	}
	defer log.Close()

	entries, err := log.Recent(context.Background(), a.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No tool executions recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TIME\tSESSION\tTOOL\tDURATION\tSTATUS\tINPUT")
	fmt.Fprintln(w, "----\t-------\t----\t--------\t------\t-----")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dms\t%s\t%s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			shortID(e.SessionID),
			e.ToolName,
			e.DurationMs,
			entryStatus(e.Error),
			flatten(e.Input, 48),
		)
	}
	return nil
}

func entryStatus(errText string) string {
	if errText == "" {
		return "ok"
	}
	return flatten(errText, 40)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// flatten collapses whitespace to one line and caps the length in runes.
func flatten(s string, max int) string {
	flat := strings.Join(strings.Fields(s), " ")
	if runes := []rune(flat); len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return flat
}
