package viz

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Contour lipgloss.Color
	Header  lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Graph   lipgloss.Color
	Border  lipgloss.Color
	Paused  lipgloss.Color
	Record  lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:    "neon",
		Contour: lipgloss.Color("#00ffff"),
		Header:  lipgloss.Color("#ff00ff"),
		Label:   lipgloss.Color("#888899"),
		Value:   lipgloss.Color("#ffffff"),
		Graph:   lipgloss.Color("#00ff88"),
		Border:  lipgloss.Color("#444466"),
		Paused:  lipgloss.Color("#ffaa00"),
		Record:  lipgloss.Color("#ff4444"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Contour: lipgloss.Color("#00ff00"),
		Header:  lipgloss.Color("#88ff88"),
		Label:   lipgloss.Color("#007700"),
		Value:   lipgloss.Color("#00ff00"),
		Graph:   lipgloss.Color("#00cc00"),
		Border:  lipgloss.Color("#005500"),
		Paused:  lipgloss.Color("#ffff00"),
		Record:  lipgloss.Color("#ff0000"),
	}

	ThemeInk = Theme{
		Name:    "ink",
		Contour: lipgloss.Color("#ffffff"),
		Header:  lipgloss.Color("#0088ff"),
		Label:   lipgloss.Color("#888888"),
		Value:   lipgloss.Color("#cccccc"),
		Graph:   lipgloss.Color("#0088ff"),
		Border:  lipgloss.Color("#444444"),
		Paused:  lipgloss.Color("#ffaa00"),
		Record:  lipgloss.Color("#ff0000"),
	}

	ThemeLava = Theme{
		Name:    "lava",
		Contour: lipgloss.Color("#ff6b6b"),
		Header:  lipgloss.Color("#feca57"),
		Label:   lipgloss.Color("#8b6b8c"),
		Value:   lipgloss.Color("#fff5f5"),
		Graph:   lipgloss.Color("#ff9ff3"),
		Border:  lipgloss.Color("#5a3b5c"),
		Paused:  lipgloss.Color("#ffc048"),
		Record:  lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemeInk, ThemeLava}
)

// GetTheme falls back to the first theme for unknown names.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

type styles struct {
	canvas, panel, header, label, value, graph, help, paused, record lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Foreground(t.Contour).Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(40),
		header: lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Label).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		graph:  lipgloss.NewStyle().Foreground(t.Graph).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Label).MarginTop(1),
		paused: lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		record: lipgloss.NewStyle().Foreground(t.Record).Bold(true),
	}
}
