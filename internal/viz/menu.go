package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/engine"
)

var (
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var presetInfo = map[string]string{
	"classic": "eight metaballs, 16px grid",
	"dense":   "twelve metaballs, 8px grid",
	"single":  "one metaball, closed loop",
	"calm":    "slow sources, center saddles",
	"heart":   "static implicit curve",
}

// Menu lists presets and replaces itself with a live view on enter.
type Menu struct {
	presets []string
	cursor  int
	live    *Model
	err     error
}

func NewMenu() Menu {
	return Menu{presets: config.ListPresets()}
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.live != nil {
		next, cmd := m.live.Update(msg)
		live := next.(Model)
		m.live = &live
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter":
		return m.start()
	}
	return m, nil
}

func (m Menu) start() (tea.Model, tea.Cmd) {
	name := m.presets[m.cursor]
	eng, err := engine.New(config.GetPreset(name))
	if err != nil {
		m.err = fmt.Errorf("%s: %w", name, err)
		return m, nil
	}
	live := NewModel(eng, name)
	m.live = &live
	return m, live.Init()
}

func (m Menu) View() string {
	if m.live != nil {
		return m.live.View()
	}

	var s strings.Builder
	s.WriteString(cyan.Render("ISOLINE") + "\n\n")
	for i, name := range m.presets {
		line := fmt.Sprintf("%-10s %s", name, dim.Render(presetInfo[name]))
		if i == m.cursor {
			s.WriteString(cyan.Render("> ") + white.Render(line) + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}
	if m.err != nil {
		s.WriteString("\n" + red.Render(m.err.Error()) + "\n")
	}
	s.WriteString("\n" + dim.Render("↑↓ select  enter run  q quit"))
	return s.String()
}
