// tui/sim_view.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orbitkit/satctl/internal/sim"
)

type keyMap struct {
	North      key.Binding
	South      key.Binding
	East       key.Binding
	West       key.Binding
	Activate   key.Binding
	Deactivate key.Binding
	Collect    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Collect, k.Activate, k.Deactivate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.East, k.West},
		{k.Activate, k.Deactivate, k.Collect},
		{k.Help, k.Quit},
	}
}

var defaultKeys = keyMap{
	North:      key.NewBinding(key.WithKeys("n", "up"), key.WithHelp("n/↑", "face north")),
	South:      key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "face south")),
	East:       key.NewBinding(key.WithKeys("e", "right"), key.WithHelp("e/→", "face east")),
	West:       key.NewBinding(key.WithKeys("w", "left"), key.WithHelp("w/←", "face west")),
	Activate:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "activate panels")),
	Deactivate: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "deactivate panels")),
	Collect:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collect data")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// SimModel is the Bubble Tea model for the keyboard-driven simulator. It
// applies the same operations as the line session to the same satellite.
type SimModel struct {
	sat    *sim.Satellite
	keys   keyMap
	help   help.Model
	notice string
	failed bool // last notice was a rejection
}

// NewSimModel wraps a satellite owned by the caller.
func NewSimModel(sat *sim.Satellite) SimModel {
	return SimModel{
		sat:    sat,
		keys:   defaultKeys,
		help:   help.New(),
		notice: "Awaiting command.",
	}
}

func (m SimModel) Init() tea.Cmd {
	return nil
}

func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.North):
			m.apply(sim.Rotate{Direction: string(sim.North)}, "Rotated to face North.")
		case key.Matches(msg, m.keys.South):
			m.apply(sim.Rotate{Direction: string(sim.South)}, "Rotated to face South.")
		case key.Matches(msg, m.keys.East):
			m.apply(sim.Rotate{Direction: string(sim.East)}, "Rotated to face East.")
		case key.Matches(msg, m.keys.West):
			m.apply(sim.Rotate{Direction: string(sim.West)}, "Rotated to face West.")
		case key.Matches(msg, m.keys.Activate):
			m.apply(sim.ActivatePanels{}, "Solar panels activated.")
		case key.Matches(msg, m.keys.Deactivate):
			m.apply(sim.DeactivatePanels{}, "Solar panels deactivated.")
		case key.Matches(msg, m.keys.Collect):
			m.apply(sim.CollectData{}, "")
			m.notice = fmt.Sprintf("Collection pass complete. Data collected: %d.", m.sat.DataCollected())
		}
	}
	return m, nil
}

// apply runs one operation and records a notice for the view. Rejections
// carry the Outcome reason instead of the success message.
func (m *SimModel) apply(op sim.Op, onSuccess string) {
	out := m.sat.Apply(op)
	if !out.Applied {
		m.notice = out.Reason
		m.failed = true
		return
	}
	if onSuccess != "" {
		m.notice = onSuccess
	}
	m.failed = false
}

func (m SimModel) View() string {
	notice := NoticeStyle.Render(m.notice)
	if m.failed {
		notice = ErrorStyle.Render(m.notice)
	}
	return TitleStyle.Render("Satellite Simulator") + "\n" +
		StatusStyle.Render(m.sat.StatusLine()) + "\n" +
		notice + "\n\n" +
		m.help.View(m.keys) + "\n"
}
