// Package tui provides an interactive terminal inspector for scenes.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mechsym/internal/config"
	"github.com/san-kum/mechsym/internal/mechanics"
	"github.com/san-kum/mechsym/internal/render"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type view int

const (
	viewList view = iota
	viewDetail
)

// Model is the bubbletea model for the scene inspector.
type Model struct {
	scene  *config.Scene
	cursor int
	view   view
	width  int
	height int
}

// NewInspector returns an inspector over the given scene.
func NewInspector(scene *config.Scene) Model {
	return Model{scene: scene, width: 80, height: 24}
}

// Run starts the inspector and blocks until the user quits.
func Run(scene *config.Scene) error {
	_, err := tea.NewProgram(NewInspector(scene), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.scene.Bodies)-1 {
				m.cursor++
			}
		case "enter", "l", "right":
			if len(m.scene.Bodies) > 0 {
				m.view = viewDetail
			}
		case "esc", "h", "left":
			m.view = viewList
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.view == viewDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var sb strings.Builder
	sb.WriteString(render.Title.Render("bodies"))
	sb.WriteString("\n\n")
	for i, b := range m.scene.Bodies {
		line := fmt.Sprintf("%s  %s", b.Name(), dimStyle.Render(b.Mass().String()))
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("enter: inspect   q: quit"))
	return sb.String()
}

func (m Model) detailView() string {
	b := m.scene.Bodies[m.cursor]
	var sb strings.Builder
	sb.WriteString(render.BodyTable([]mechanics.Body{b}))
	sb.WriteString("\n")

	if ke, err := b.KineticEnergy(m.scene.World); err == nil {
		sb.WriteString(render.Label.Render("kinetic    "))
		sb.WriteString(render.Value.Render(ke.String()))
	} else {
		sb.WriteString(render.ErrText.Render(err.Error()))
	}
	sb.WriteString("\n")
	if lm, err := b.LinearMomentum(m.scene.World); err == nil {
		sb.WriteString(render.Label.Render("momentum   "))
		sb.WriteString(render.Value.Render(lm.String()))
	} else {
		sb.WriteString(render.ErrText.Render(err.Error()))
	}
	sb.WriteString("\n")
	if am, err := b.AngularMomentum(m.scene.Origin, m.scene.World); err == nil {
		sb.WriteString(render.Label.Render("ang. mom.  "))
		sb.WriteString(render.Value.Render(am.String()))
	} else {
		sb.WriteString(render.ErrText.Render(err.Error()))
	}
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("esc: back   q: quit"))
	return sb.String()
}
