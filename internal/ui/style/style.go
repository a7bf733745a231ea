// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Star  = lipgloss.Color("#FFD700")
	Slate = lipgloss.Color("#667085")
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
	Amber = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Cached  = "~"
	Gold    = "*"
)

// Text styles for command output.
var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(Star)
	Muted  = lipgloss.NewStyle().Foreground(Slate)
	Answer = lipgloss.NewStyle().Bold(true)
	Failed = lipgloss.NewStyle().Foreground(Red)
)
