// Package console renders the interactive session: the startup banner,
// styled turn markers, markdown agent replies, and bordered tool result
// panels. Console implements agent.Notifier; everything it prints is
// display only and never feeds back into the conversation.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/opskit/kubeagent/src/agent"
	"github.com/opskit/kubeagent/src/theme"
)

// Console writes session output to a single writer. The zero value is not
// usable; construct with New.
type Console struct {
	w        io.Writer
	markdown *glamour.TermRenderer
}

var _ agent.Notifier = (*Console)(nil)

// New builds a Console writing to w. When the markdown renderer cannot be
// constructed, agent replies degrade to plain text.
func New(w io.Writer) *Console {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		md = nil
	}
	return &Console{w: w, markdown: md}
}

// Banner prints the startup banner with the connection summary.
func (c *Console) Banner(llmURL, namespace, giteaURL string) {
	if giteaURL == "" {
		giteaURL = "(not configured)"
	}
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, theme.Banner.Render("-- kube-agent --"))
	fmt.Fprintln(c.w, theme.Info.Render("Connected to LLM:")+" "+llmURL)
	fmt.Fprintln(c.w, theme.Info.Render("Namespace:")+"        "+namespace)
	fmt.Fprintln(c.w, theme.Info.Render("Gitea:")+"            "+giteaURL)
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, theme.Hint.Render("Type your message and press Enter. Ctrl+C to cancel, Ctrl+D to exit."))
	fmt.Fprintln(c.w)
}

// OnUserInput echoes the accepted input under the styled turn marker.
func (c *Console) OnUserInput(input string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, theme.User.Render("You: ")+input)
}

// OnThinking marks the wait for the first model reply of a turn.
func (c *Console) OnThinking() {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, theme.Info.Render("Thinking..."))
}

// OnAgentReply renders the reply as markdown, falling back to the raw text
// when rendering is unavailable or fails.
func (c *Console) OnAgentReply(content string) {
	if content == "" {
		return
	}
	fmt.Fprintln(c.w)
	fmt.Fprint(c.w, theme.Agent.Render("Agent: "))
	if c.markdown != nil {
		if rendered, err := c.markdown.Render(content); err == nil {
			fmt.Fprintln(c.w, strings.TrimRight(rendered, "\n"))
			return
		}
	}
	fmt.Fprintln(c.w, content)
}

// OnToolStart announces the tool about to run.
func (c *Console) OnToolStart(name string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, theme.ToolName.Render("Tool: "+name))
}

// OnToolResult panels the result under the tool name. Truncation here is
// display only; the model history keeps the full result.
func (c *Console) OnToolResult(name, result string, maxChars int) {
	display := result
	if maxChars > 0 {
		if runes := []rune(display); len(runes) > maxChars {
			display = string(runes[:maxChars]) + "\n... (truncated)"
		}
	}
	fmt.Fprintln(c.w, panel(name, display))
}

// OnAutoContinue reports the synthetic continue round about to run.
func (c *Console) OnAutoContinue(round, max int) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, theme.Info.Render(fmt.Sprintf("(자율 실행 중... %d/%d)", round, max)))
}

// OnInfo prints an informational status line.
func (c *Console) OnInfo(message string) {
	fmt.Fprintln(c.w, theme.Info.Render(message))
}

// Error prints a styled error line.
func (c *Console) Error(message string) {
	fmt.Fprintln(c.w, theme.Error.Render("Error: "+message))
}

// Goodbye prints the exit message.
func (c *Console) Goodbye() {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, theme.Banner.Render("Goodbye!"))
	fmt.Fprintln(c.w)
}

// panel draws body inside a rounded border with the tool name set into the
// top edge. Widths are measured in display cells so wide runes keep the
// right edge aligned.
func panel(title, body string) string {
	lines := strings.Split(body, "\n")
	inner := lipgloss.Width(title) + 3
	for _, line := range lines {
		if w := lipgloss.Width(line) + 2; w > inner {
			inner = w
		}
	}

	var b strings.Builder
	b.WriteString(theme.ToolResult.Render("╭─ "))
	b.WriteString(theme.ToolName.Render(title))
	b.WriteString(theme.ToolResult.Render(" " + strings.Repeat("─", inner-lipgloss.Width(title)-3) + "╮"))
	for _, line := range lines {
		b.WriteByte('\n')
		b.WriteString(theme.ToolResult.Render("│"))
		b.WriteString(" " + line + strings.Repeat(" ", inner-lipgloss.Width(line)-2) + " ")
		b.WriteString(theme.ToolResult.Render("│"))
	}
	b.WriteByte('\n')
	b.WriteString(theme.ToolResult.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}
