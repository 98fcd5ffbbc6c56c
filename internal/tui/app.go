// Package tui is the interactive viewer: a bubbletea program that renders
// the world each frame and, when not paused, advances it one tick. It is a
// pure consumer of the world's query surface; all mutation flows through
// World methods.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/unisim/internal/body"
	"github.com/san-kum/unisim/internal/universe"
)

const (
	canvasWidth  = 90
	canvasHeight = 28
	historyCap   = 120
)

var kindRunes = map[body.Kind]rune{
	body.Star:      '*',
	body.Planet:    'o',
	body.Asteroid:  '.',
	body.Nebula:    '~',
	body.BlackHole: '@',
}

type tickMsg time.Time

// Model drives the viewer. Rendering and physics never overlap: each frame
// renders the current state, then advances one tick if running.
type Model struct {
	world  *universe.World
	camera Camera
	canvas *Canvas

	frameRate  int
	running    bool
	showTrails bool
	showInfo   bool
	selected   *body.Body
	status     string

	countHistory []float64
}

// NewModel wraps a populated world for interactive viewing.
func NewModel(w *universe.World, frameRate int) Model {
	return Model{
		world:        w,
		camera:       Camera{Zoom: 0.03},
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		frameRate:    frameRate,
		running:      true,
		showTrails:   true,
		countHistory: make([]float64, 0, historyCap),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.running {
			m.world.Tick()
		}
		m.countHistory = append(m.countHistory, float64(m.world.Len()))
		if len(m.countHistory) > historyCap {
			m.countHistory = m.countHistory[1:]
		}
		// A selected body may have been removed by a collision.
		if m.selected != nil {
			if _, ok := m.world.Body(m.selected.Name); !ok {
				m.selected = nil
				m.showInfo = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const panStep = 4.0

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "r":
		m.world.Reset(rand.Int63n(1_000_000) + 1)
		m.selected = nil
		m.showInfo = false
		m.status = "universe reset"
	case "g":
		eng := m.world.Engine()
		eng.GravityEnabled = !eng.GravityEnabled
		m.status = fmt.Sprintf("gravity %s", onOff(eng.GravityEnabled))
	case "c":
		eng := m.world.Engine()
		eng.CollisionDetection = !eng.CollisionDetection
		m.status = fmt.Sprintf("collisions %s", onOff(eng.CollisionDetection))
	case "t":
		m.showTrails = !m.showTrails
	case "i":
		m.showInfo = !m.showInfo
	case "n":
		if b, d, err := m.world.NearestBody(m.camera.Pos); err == nil {
			m.selected = b
			m.showInfo = true
			m.status = fmt.Sprintf("selected %s (%.0f away)", b.Name, d)
		} else {
			m.status = "nothing to select"
		}
	case "]":
		if err := m.world.AdjustTickSize(5); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("time step %.0f", m.world.TickSize())
		}
	case "[":
		if err := m.world.AdjustTickSize(-5); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("time step %.0f", m.world.TickSize())
		}
	case "up", "k":
		m.camera.Pan(0, -panStep)
	case "down", "j":
		m.camera.Pan(0, panStep)
	case "left", "h":
		m.camera.Pan(-panStep, 0)
	case "right", "l":
		m.camera.Pan(panStep, 0)
	case "+", "=":
		m.camera.Scale(1.25)
	case "-", "_":
		m.camera.Scale(0.8)
	case "v":
		m.camera = Camera{Zoom: 0.03}
	}
	return m, nil
}

func (m Model) View() string {
	m.drawWorld()

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsPanel())
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	state := runningStyle.Render("running")
	if !m.running {
		state = pausedStyle.Render("paused")
	}
	header := headerStyle.Render("unisim") + "  " + state
	if m.status != "" {
		header += "  " + valueStyle.Render(m.status)
	}

	help := helpStyle.Render(
		"space pause · r reset · g gravity · c collisions · t trails · n select · i info\n" +
			"arrows/hjkl pan · +/- zoom · v reset view · [/] time step · q quit")

	return header + "\n" + main + "\n" + help
}

func (m Model) drawWorld() {
	m.canvas.Clear()

	for _, b := range m.world.Bodies() {
		if m.showTrails {
			for _, p := range b.Trail() {
				x, y := m.camera.WorldToScreen(p, canvasWidth, canvasHeight)
				m.canvas.Set(x, y, '·')
			}
		}
	}
	// Bodies drawn after trails so they stay visible.
	for _, b := range m.world.Bodies() {
		x, y := m.camera.WorldToScreen(b.Position, canvasWidth, canvasHeight)
		m.canvas.Set(x, y, kindRunes[b.Kind])
	}
	if m.selected != nil {
		x, y := m.camera.WorldToScreen(m.selected.Position, canvasWidth, canvasHeight)
		m.canvas.Set(x-1, y, '[')
		m.canvas.Set(x+1, y, ']')
	}
}

func (m Model) statsPanel() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("universe") + "\n")
	for _, row := range m.world.Statistics().Rows() {
		b.WriteString(labelStyle.Render(row[0]) + valueStyle.Render(row[1]) + "\n")
	}

	if len(m.countHistory) > 1 {
		b.WriteString("\n" + graphStyle.Render(asciigraph.Plot(
			m.countHistory,
			asciigraph.Height(5),
			asciigraph.Width(30),
			asciigraph.Caption("bodies"),
		)) + "\n")
	}

	if m.showInfo && m.selected != nil {
		b.WriteString("\n" + headerStyle.Render("selected") + "\n")
		for _, row := range universe.Describe(m.selected) {
			b.WriteString(labelStyle.Render(row[0]) + valueStyle.Render(row[1]) + "\n")
		}
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
