package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the editor chrome. Cell rendering
// itself stays 1-bit; themes only recolor the ink and the chrome.
type Theme struct {
	Name   string
	Ink    lipgloss.Color
	Paper  lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

var (
	ThemeMono = Theme{
		Name:   "mono",
		Ink:    lipgloss.Color("#ffffff"),
		Paper:  lipgloss.Color("#3a3a3a"),
		Accent: lipgloss.Color("#00ffff"),
		Muted:  lipgloss.Color("#666666"),
		Error:  lipgloss.Color("#ff5555"),
	}

	ThemePhosphor = Theme{
		Name:   "phosphor",
		Ink:    lipgloss.Color("#00ff00"),
		Paper:  lipgloss.Color("#003300"),
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
		Error:  lipgloss.Color("#ffff00"),
	}

	ThemePaper = Theme{
		Name:   "paper",
		Ink:    lipgloss.Color("#1a1a1a"),
		Paper:  lipgloss.Color("#d8d0c0"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
		Error:  lipgloss.Color("#cc0000"),
	}
)

var themes = []Theme{ThemeMono, ThemePhosphor, ThemePaper}

// ThemeByName returns the named theme, defaulting to mono.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// NextTheme returns the theme after t in cycle order.
func NextTheme(t Theme) Theme {
	for i, cand := range themes {
		if cand.Name == t.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
