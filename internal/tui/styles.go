package tui

import "github.com/charmbracelet/lipgloss"

// styles derived from the active theme, rebuilt on theme change.
type styles struct {
	header   lipgloss.Style
	ink      lipgloss.Style
	paper    lipgloss.Style
	thumb    lipgloss.Style
	thumbSel lipgloss.Style
	label    lipgloss.Style
	labelSel lipgloss.Style
	status   lipgloss.Style
	info     lipgloss.Style
	errMsg   lipgloss.Style
	help     lipgloss.Style
	prompt   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		ink:      lipgloss.NewStyle().Foreground(t.Ink),
		paper:    lipgloss.NewStyle().Foreground(t.Paper),
		thumb:    lipgloss.NewStyle().Foreground(t.Muted),
		thumbSel: lipgloss.NewStyle().Foreground(t.Ink),
		label:    lipgloss.NewStyle().Foreground(t.Muted),
		labelSel: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		status:   lipgloss.NewStyle().Foreground(t.Ink),
		info:     lipgloss.NewStyle().Foreground(t.Accent),
		errMsg:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		help:     lipgloss.NewStyle().Foreground(t.Muted),
		prompt:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}
