// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/render"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/version"
)

// Rows taken by the header and footer around the canvas.
const (
	headerRows = 1
	footerRows = 2
)

// Msg types for Bubble Tea
type (
	// FrameMsg advances the scene by one frame.
	FrameMsg time.Time

	// ErrorMsg reports a failure outside the frame loop.
	ErrorMsg struct {
		Error error
	}
)

// Options configures the model.
type Options struct {
	FrameInterval time.Duration
}

// DefaultOptions returns 30 frames per second.
func DefaultOptions() Options {
	return Options{FrameInterval: time.Second / 30}
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	scene  *scene.Scene
	canvas *render.Canvas
	opts   Options

	// UI state
	width    int
	height   int
	ready    bool
	showHelp bool
	err      error
	status   scene.Status

	// Mouse drag in progress
	drag     tea.MouseButton
	dragging bool
}

// New creates a new root UI model drawing sc through canvas. The canvas must
// be the renderer the scene was built with.
func New(sc *scene.Scene, canvas *render.Canvas, opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts = DefaultOptions()
	}
	return Model{
		scene:  sc,
		canvas: canvas,
		opts:   opts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.FrameInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)

	case FrameMsg:
		cmds = append(cmds, frameCmd(m.opts.FrameInterval))
		m.err = m.scene.Frame(time.Time(msg))
		m.status = m.scene.Status()

	case ErrorMsg:
		m.err = msg.Error
	}

	return m, tea.Batch(cmds...)
}

// SetSize updates the terminal size and resizes the scene viewport.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.ready = true

	rows := max(height-headerRows-footerRows, 1)
	m.scene.Resize(render.ViewportFor(width, rows))
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.canvas.String() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	name := "custom"
	if m.status.Preset != scene.NoPreset {
		name = fmt.Sprintf("preset %d/%d", m.status.Preset+1, len(galaxy.Presets))
	}
	return title.Render(" "+version.Name) + dim.Render(fmt.Sprintf(" v%s · %s", version.Version, name))
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	var status string
	if m.err != nil {
		status = errorStyle.Render("ERROR: " + m.err.Error())
	} else {
		status = accentStyle.Render(statusLine(m.status))
	}

	help := "space: pause | arrows: pan | +/-: zoom | r/R: rotate | ?: more keys"
	if m.showHelp {
		help = "1-4: stars/dust/filaments/H2 | g: grid | w: waves | x: x-ray | d: dark matter | p/P: preset | [/]: speed | 0: fit | c: reset | q: quit"
	}
	return " " + status + "\n " + dimStyle.Render(help)
}

// statusLine summarizes the scene in one line.
func statusLine(st scene.Status) string {
	zoom := 1.0
	if st.FitScale > 0 {
		zoom = st.View.Scale / st.FitScale
	}

	parts := []string{
		fmt.Sprintf("t=%.1f Myr", st.Time/1e6),
		fmt.Sprintf("zoom ×%.2f L%d", zoom, st.ZoomLevel),
		fmt.Sprintf("%.0f°", st.View.Angle),
		fmt.Sprintf("%d particles", st.Particles()),
	}
	if st.FrameRate > 0 {
		parts = append(parts, fmt.Sprintf("%.0f fps", st.FrameRate))
	}
	if st.LastRegen > 0 {
		parts = append(parts, "regen "+st.LastRegen.String())
	}

	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{st.Paused, "PAUSED"},
		{st.Grid, "grid"},
		{st.DensityWaves, "waves"},
		{st.XRay, "x-ray"},
		{!st.DarkMatter, "no-dm"},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	if len(flags) > 0 {
		parts = append(parts, "["+strings.Join(flags, " ")+"]")
	}
	return strings.Join(parts, "  ")
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
