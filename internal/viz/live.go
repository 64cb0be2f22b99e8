package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/engine"
)

const (
	canvasCols      = 80
	canvasRows      = 24
	historyCapacity = 240
	gifPath         = "isoline.gif"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the live view. It owns the engine it drives.
type Model struct {
	eng       *engine.Engine
	name      string
	canvas    *Canvas
	view      Viewport
	frame     engine.Frame
	layers    Layers
	theme     Theme
	styles    styles
	running   bool
	showHelp  bool
	history   []float64
	recorder  *Recorder
	recording bool
	status    string
}

func NewModel(eng *engine.Engine, name string) Model {
	c := NewCanvas(canvasCols, canvasRows)
	m := Model{
		eng:      eng,
		name:     name,
		canvas:   c,
		view:     NewViewport(eng.Bounds(), c),
		theme:    Themes[0],
		styles:   newStyles(Themes[0]),
		running:  true,
		history:  make([]float64, 0, historyCapacity),
		recorder: NewRecorder(),
	}
	m.frame = eng.Snapshot()
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "s":
			m.toggleSaddle()
		case "p":
			m.layers.Points = !m.layers.Points
		case "c":
			m.layers.Sources = !m.layers.Sources
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.draw()
		return m, nil
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.frame = m.eng.Step()
	m.history = append(m.history, float64(len(m.frame.Segments)))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	m.draw()
	if m.recording {
		m.recorder.Capture(m.canvas)
	}
}

func (m *Model) toggleSaddle() {
	mode := contour.SaddleCenter
	if m.eng.Tracer().SaddleMode() == contour.SaddleCenter {
		mode = contour.SaddleIndependent
	}
	m.eng.SetSaddleMode(mode)
	m.frame = m.eng.Snapshot()
}

func (m *Model) reset() {
	m.eng.Reset()
	m.history = m.history[:0]
	m.frame = m.eng.Snapshot()
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recorder.Reset()
		m.recording = true
		m.status = ""
		return
	}
	m.recording = false
	if err := m.recorder.Save(gifPath); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("saved %d frames to %s", m.recorder.Len(), gifPath)
}

func (m *Model) draw() {
	DrawFrame(m.canvas, m.view, m.frame, m.layers)
}

func (m Model) View() string {
	st := m.styles
	var s strings.Builder

	s.WriteString(st.header.Render(strings.ToUpper(m.name)) + "\n")
	switch {
	case m.recording:
		s.WriteString(st.record.Render(fmt.Sprintf("REC %d", m.recorder.Len())) + "\n\n")
	case !m.running:
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	default:
		s.WriteString("RUNNING\n\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Segments"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	stats := m.frame.Stats
	row("Frame", fmt.Sprintf("%d", m.frame.Index))
	row("Segments", fmt.Sprintf("%d", len(m.frame.Segments)))
	row("Length", fmt.Sprintf("%.1f", m.frame.Length()))
	row("Above", fmt.Sprintf("%.1f%%", 100*m.frame.AboveFraction()))
	row("Saddles", fmt.Sprintf("%d", stats.Count(contour.CaseSaddle)))
	row("Degenerate", fmt.Sprintf("%d", stats.Degenerate))
	row("Saddle", m.eng.Tracer().SaddleMode().String())
	row("Theme", m.theme.Name)
	if m.status != "" {
		s.WriteString("\n" + st.label.Render(m.status) + "\n")
	}

	s.WriteString(st.help.Render("\nSP:Pause N:Step S:Saddle R:Reset\nP:Points C:Sources T:Theme G:Rec\n?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		st.canvas.Render(m.canvas.String()),
		st.panel.Render(s.String()))
	if m.showHelp {
		return st.header.Render(helpText) + "\n\n" + main
	}
	return main
}

const helpText = `Space  pause or resume
N      step one frame while paused
S      switch saddle mode
P      show grid points above the threshold
C      show source centers
R      reset sources
T      next theme
G      start or stop GIF recording
?      show or hide this help
Q      quit`
