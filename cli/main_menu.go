package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/dashd/cereal"
	"pfeifer.dev/dashd/hud"
	ms "pfeifer.dev/dashd/settings"
	"pfeifer.dev/dashd/ui"
	"pfeifer.dev/dashd/vehicleinfo"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showPanel
	showHud
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(ms.LOOP_DELAY, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list     list.Model
	state    mainState
	settings settingsModel
	panel    panelModel
	hud      hudModel
	sm       *cereal.SubMaster
	scene    hud.Scene
	hudState *hud.State
	info     vehicleinfo.Panel
}
type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel(sm *cereal.SubMaster) uiModel {
	items := []list.Item{
		item{title: "Vehicle Info", desc: "Watch the offroad vehicle info panel", state: showPanel},
		item{title: "HUD", desc: "Watch the values shown in the onroad heads-up display", state: showHud},
		item{title: "Settings", desc: "Modify the settings used by dashd", state: showSettings},
	}

	listDelegate := list.NewDefaultDelegate()
	m := uiModel{
		list:     list.New(items, listDelegate, 0, 0),
		settings: getSettingsModel(),
		sm:       sm,
		hudState: hud.NewState(),
	}
	m.list.Title = "Dashd Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	// Just return `nil`, which means "no I/O right now, please."
	return tickEvery()
}

// poll advances the shared snapshot one frame.
func (m *uiModel) poll() {
	m.sm.Update()
	m.scene = ui.NextScene(m.sm, m.scene)
	m.hudState.Update(m.sm, m.scene)
	if m.sm.Updated("ioniq") {
		m.info.Update(m.sm.Ioniq())
	}
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc && (m.state == showPanel || m.state == showHud) {
			m.state = showMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		m.poll()
		m.panel, _ = m.panel.Update(msg, &m)
		m.hud, _ = m.hud.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showPanel:
		m.panel, cmd = m.panel.Update(msg, &m)
	case showHud:
		m.hud, cmd = m.hud.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showPanel:
		return m.panel.View()
	case showHud:
		return m.hud.View()
	}
	return docStyle.Render(m.list.View())
}

func watch() {
	ms.Settings.Load()
	p := tea.NewProgram(initialModel(cereal.NewSubMaster(ui.SERVICES...)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
