// SPDX-License-Identifier: MIT

package cli

import "github.com/charmbracelet/lipgloss"

// Palette shared by every styled line the demo prints.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
)

var (
	// titleStyle marks each matrix heading.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// subtitleStyle is for the root command description.
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// resultStyle is for the final search report.
	resultStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)
