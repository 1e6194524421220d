// Package theme holds the color palette for session output. ANSI base
// colors keep the user's terminal palette in charge.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles keyed by the role of the output line.
var (
	User       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	Agent      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	ToolName   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	ToolResult = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Error      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	Info       = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Faint(true)
	Banner     = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	Hint       = lipgloss.NewStyle().Faint(true)
)
