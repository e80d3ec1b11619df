package ui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/gesture"
)

const (
	panStep     = 4.0  // device units per arrow key
	rotateStep  = 15.0 // degrees per r/R
	pinchRadius = 10.0 // distance of synthetic pointers from the centre
	speedStep   = 10000.0
)

// Pointer ids for mouse gestures.
const (
	primaryPointer = iota
	mirrorPointer
)

func (m *Model) handleKey(msg tea.KeyMsg) {
	sc := m.scene
	switch msg.String() {
	case " ":
		sc.TogglePause()

	case "left", "h":
		m.drag1(-panStep, 0)
	case "right", "l":
		m.drag1(panStep, 0)
	case "up", "k":
		m.drag1(0, -panStep)
	case "down", "j":
		m.drag1(0, panStep)

	case "+", "=":
		sc.ZoomIn()
	case "-", "_":
		sc.ZoomOut()
	case "0":
		sc.ZoomNormal()
	case "c":
		sc.ResetView()
	case "r":
		m.pinch(rotateStep, 1)
	case "R":
		m.pinch(-rotateStep, 1)

	case "1":
		sc.ToggleFeatures(galaxy.FeatureStars)
	case "2":
		sc.ToggleFeatures(galaxy.FeatureDust)
	case "3":
		sc.ToggleFeatures(galaxy.FeatureFilaments)
	case "4":
		sc.ToggleFeatures(galaxy.FeatureH2)

	case "g":
		sc.SetGrid(!sc.ShowGrid())
	case "w":
		sc.SetDensityWaves(!sc.ShowDensityWaves())
	case "x":
		sc.SetXRay(!sc.XRay())
	case "d":
		sc.SetDarkMatter(!sc.Params().DarkMatter)

	case "p":
		m.cyclePreset(1)
	case "P":
		m.cyclePreset(-1)

	case "[":
		sc.SetTimeStep(sc.TimeStep() - speedStep)
	case "]":
		sc.SetTimeStep(sc.TimeStep() + speedStep)

	case "?":
		m.showHelp = !m.showHelp
	}
}

func (m *Model) cyclePreset(dir int) {
	n := len(galaxy.Presets)
	next := m.scene.Status().Preset + dir
	if m.scene.Status().Preset == -1 && dir < 0 {
		next = n - 1
	}
	next = (next%n + n) % n
	if err := m.scene.SelectPreset(next); err != nil {
		m.err = err
	}
}

// drag1 moves a single synthetic pointer from the viewport centre.
func (m *Model) drag1(dx, dy float64) {
	tr := m.scene.Transform()
	cx, cy := m.scene.Viewport().Centre()

	tr.BeginPointer(primaryPointer, cx, cy)
	tr.MovePointer([]gesture.Sample{{ID: primaryPointer, X: cx + dx, Y: cy + dy}})
	tr.EndPointer(primaryPointer)
}

// pinch turns and scales around the viewport centre with two synthetic
// pointers on opposite sides of it.
func (m *Model) pinch(deg, factor float64) {
	tr := m.scene.Transform()
	cx, cy := m.scene.Viewport().Centre()

	sin, cos := math.Sincos(deg * math.Pi / 180)
	r := pinchRadius * factor

	tr.BeginPointer(primaryPointer, cx+pinchRadius, cy)
	tr.BeginPointer(mirrorPointer, cx-pinchRadius, cy)
	tr.MovePointer([]gesture.Sample{
		{ID: primaryPointer, X: cx + r*cos, Y: cy + r*sin},
		{ID: mirrorPointer, X: cx - r*cos, Y: cy - r*sin},
	})
	tr.EndPointer(mirrorPointer)
	tr.EndPointer(primaryPointer)
}

// devicePoint maps a terminal cell to the device coordinate at its centre.
func devicePoint(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y-headerRows)*2 + 1
}

// handleMouse turns mouse events into pointer samples. A left drag pans;
// a right drag pinches with a second pointer mirrored through the centre.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	tr := m.scene.Transform()
	x, y := devicePoint(msg.X, msg.Y)
	cx, cy := m.scene.Viewport().Centre()
	mx, my := 2*cx-x, 2*cy-y

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scene.ZoomIn()
			return
		case tea.MouseButtonWheelDown:
			m.scene.ZoomOut()
			return
		case tea.MouseButtonLeft:
			tr.BeginPointer(primaryPointer, x, y)
		case tea.MouseButtonRight:
			tr.BeginPointer(primaryPointer, x, y)
			tr.BeginPointer(mirrorPointer, mx, my)
		default:
			return
		}
		m.drag = msg.Button
		m.dragging = true

	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		samples := []gesture.Sample{{ID: primaryPointer, X: x, Y: y}}
		if m.drag == tea.MouseButtonRight {
			samples = append(samples, gesture.Sample{ID: mirrorPointer, X: mx, Y: my})
		}
		tr.MovePointer(samples)

	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		tr.EndPointer(mirrorPointer)
		tr.EndPointer(primaryPointer)
		m.dragging = false
	}
}
