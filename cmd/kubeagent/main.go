package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/opskit/kubeagent/src/config"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// CLI represents the main CLI structure
type CLI struct {
	config.Config

	Verbose bool             `short:"v" help:"Enable verbose (debug) logging."`
	LogFile string           `env:"KUBE_AGENT_LOG_FILE" help:"Write JSON logs to this file instead of stderr."`
	Version kong.VersionFlag `help:"Print version and quit."`

	Chat  ChatCmd  `cmd:"" default:"1" help:"Start the interactive chat session (default)."`
	Audit AuditCmd `cmd:"" help:"List recent tool executions from the audit log."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kube-agent"),
		kong.Description("Interactive terminal chat agent that uses an LLM to manage Kubernetes clusters and Gitea repositories in offline on-premise environments."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "kube-agent " + version},
	)

	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
