package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/shapemorph/internal/engine"
	"github.com/san-kum/shapemorph/internal/export"
)

const (
	canvasWidth     = 60
	canvasHeight    = 30
	historyCapacity = 600
)

var canvasStyle = lipgloss.NewStyle().Padding(1, 2)

type TickMsg time.Time

// Options configure a Model beyond what the engine already carries.
type Options struct {
	Theme    string
	GIFPath  string
	GIFScale int
}

// Model steps the engine once per tick and draws the frame buffer as braille.
type Model struct {
	eng       *engine.Engine
	clock     *engine.FixedClock
	trace     *engine.Trace
	canvas    *Canvas
	theme     Theme
	fps       int
	running   bool
	showHelp  bool
	recording bool
	gif       *export.GIFRecorder
	opts      Options
	status    string
	lit       int
}

func NewModel(eng *engine.Engine, opts Options) Model {
	cfg := eng.Config()
	if opts.GIFPath == "" {
		opts.GIFPath = "shapemorph.gif"
	}
	if opts.GIFScale < 1 {
		opts.GIFScale = 1
	}

	trace := engine.NewTrace(historyCapacity)
	eng.AddObserver(trace)

	from, to := eng.Pair().From().Color, eng.Pair().To().Color
	palette := export.MorphPalette(eng.Background(), from, to)

	return Model{
		eng:     eng,
		clock:   engine.NewFixedClock(cfg.Screen.FPS),
		trace:   trace,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		theme:   GetTheme(opts.Theme),
		fps:     cfg.Screen.FPS,
		running: true,
		gif:     export.NewGIFRecorder(palette, opts.GIFScale, export.DelayFor(cfg.Screen.FPS)),
		opts:    opts,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.toggleRecording()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme)
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	fb := m.eng.Frame(m.clock.Elapsed())
	m.clock.Advance()
	m.lit = m.canvas.DrawFrame(fb, m.eng.Background())
	if m.recording {
		m.gif.Capture(fb)
	}
}

func (m *Model) reset() {
	m.eng.Reset()
	m.clock.Reset()
	m.trace.Reset()
	m.canvas.Clear()
	m.lit = 0
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.gif.Reset()
		m.recording = true
		m.status = "recording"
		return
	}
	m.recording = false
	if err := m.gif.Save(m.opts.GIFPath); err != nil {
		slog.Error("gif save failed", "path", m.opts.GIFPath, "err", err)
		m.status = "gif failed: " + err.Error()
		return
	}
	slog.Info("gif saved", "path", m.opts.GIFPath, "frames", m.gif.Len())
	m.status = fmt.Sprintf("saved %s (%d frames)", m.opts.GIFPath, m.gif.Len())
}

func (m Model) View() string {
	st := stylesFor(m.theme)
	sample := m.eng.State()

	var s strings.Builder
	s.WriteString(st.header.Render("SHAPEMORPH") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(st.status.Render(status))
	if m.recording {
		s.WriteString("  " + st.warn.Render("● REC"))
	}
	s.WriteString("\n")

	factors := m.trace.Factors()
	if len(factors) > 1 {
		chart := asciigraph.Plot(factors,
			asciigraph.Height(5), asciigraph.Width(30),
			asciigraph.LowerBound(0), asciigraph.UpperBound(1),
			asciigraph.Caption("Morph factor"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	target := "sphere"
	if sample.Forward {
		target = "torus"
	}
	rows := [][2]string{
		{"Frame", fmt.Sprintf("%d", m.eng.Frames())},
		{"Time", fmt.Sprintf("%.2fs", m.clock.Elapsed())},
		{"Factor", fmt.Sprintf("%.3f", sample.Factor)},
		{"Target", target},
		{"Hold", fmt.Sprintf("%.2f", sample.Hold)},
		{"Flips", fmt.Sprintf("%d", m.trace.Flips())},
		{"Lit", fmt.Sprintf("%d px", m.lit)},
		{"Rotation", m.eng.Config().Rotation.Mode + "/" + m.eng.Config().Rotation.Kind},
		{"Theme", m.theme.Name},
	}
	for _, r := range rows {
		s.WriteString(st.label.Render(r[0]) + st.value.Render(r[1]) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + st.value.Render(m.status) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme  G:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		st.stats.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset to sphere          ║
║  Q        - Quit                     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the TUI in the alternate screen and blocks until it quits.
func Run(eng *engine.Engine, opts Options) error {
	p := tea.NewProgram(NewModel(eng, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
