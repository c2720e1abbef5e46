package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	ms "pfeifer.dev/dashd/settings"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Int
	Bool
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	saveSettings
)

type settingsItem struct {
	title, desc string
	state       settingsState
	Type        SettingType
	apply       func(s *ms.DashSettings, value string) error
	current     func(s *ms.DashSettings) string
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

func (m settingsModel) Init() tea.Cmd {
	// Just return `nil`, which means "no I/O right now, please."
	return nil
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			m.err = nil
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput.SetValue(m.selectedItem.current(&ms.Settings))
				return m, m.textInput.Focus()
			case saveSettings:
				m.state = showSettingsMenu
				mm.state = showMenu
				ms.Settings.Save()
			}
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			m.textInput.Blur()
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.err = m.selectedItem.apply(&ms.Settings, m.textInput.Value())
			if m.err != nil {
				return m, nil
			}
			m.state = showSettingsMenu
			m.textInput.Blur()
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		errText := ""
		if m.err != nil {
			errText = m.err.Error()
		}
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			errText,
			"(esc to quit)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func stringSetting(title, desc string, field func(s *ms.DashSettings) *string) settingsItem {
	return settingsItem{
		title: title,
		desc:  desc,
		state: settingsInput,
		Type:  String,
		apply: func(s *ms.DashSettings, value string) error {
			*field(s) = value
			return nil
		},
		current: func(s *ms.DashSettings) string { return *field(s) },
	}
}

func floatSetting(title, desc string, field func(s *ms.DashSettings) *float32) settingsItem {
	return settingsItem{
		title: title,
		desc:  desc,
		state: settingsInput,
		Type:  Float,
		apply: func(s *ms.DashSettings, value string) error {
			val, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return errors.Wrap(err, "not a number")
			}
			*field(s) = float32(val)
			return nil
		},
		current: func(s *ms.DashSettings) string { return strconv.FormatFloat(float64(*field(s)), 'f', -1, 32) },
	}
}

func intSetting(title, desc string, field func(s *ms.DashSettings) *int) settingsItem {
	return settingsItem{
		title: title,
		desc:  desc,
		state: settingsInput,
		Type:  Int,
		apply: func(s *ms.DashSettings, value string) error {
			val, err := strconv.Atoi(value)
			if err != nil {
				return errors.Wrap(err, "not a whole number")
			}
			*field(s) = val
			return nil
		},
		current: func(s *ms.DashSettings) string { return strconv.Itoa(*field(s)) },
	}
}

func boolSetting(title, desc string, field func(s *ms.DashSettings) *bool) settingsItem {
	return settingsItem{
		title: title,
		desc:  desc,
		state: settingsInput,
		Type:  Bool,
		apply: func(s *ms.DashSettings, value string) error {
			val, err := strconv.ParseBool(value)
			if err != nil {
				return errors.Wrap(err, "expected true or false")
			}
			*field(s) = val
			return nil
		},
		current: func(s *ms.DashSettings) string { return strconv.FormatBool(*field(s)) },
	}
}

func settingsItems() []list.Item {
	return []list.Item{
		stringSetting("Set Log Level", "Modify how verbose logging will be for dashd",
			func(s *ms.DashSettings) *string { return &s.LogLevel }),
		boolSetting("Metric Units", "Show speeds in km/h instead of mph, openpilot's IsMetric param takes priority",
			func(s *ms.DashSettings) *bool { return &s.IsMetric }),
		floatSetting("Charge Power Reference", "The pack power in kW shown as 100% in the HUD sidebar",
			func(s *ms.DashSettings) *float32 { return &s.ChargePowerRef }),
		intSetting("Refresh Rate", "How many frames per second are drawn",
			func(s *ms.DashSettings) *int { return &s.RefreshHz }),
		stringSetting("CAN Interface", "The socketcan interface the battery management system is reachable on",
			func(s *ms.DashSettings) *string { return &s.CanInterface }),
		floatSetting("Battery Query Timeout", "Seconds to wait for each battery query response",
			func(s *ms.DashSettings) *float32 { return &s.BatteryQueryTimeout }),
		intSetting("Battery Query Retries", "How many times a failed battery query is retried",
			func(s *ms.DashSettings) *int { return &s.BatteryQueryRetries }),
		floatSetting("Battery Query Period", "Seconds between battery queries",
			func(s *ms.DashSettings) *float32 { return &s.BatteryQueryPeriod }),
		stringSetting("HUD Output", "The PNG file the onroad HUD is written to",
			func(s *ms.DashSettings) *string { return &s.HudOutput }),
		stringSetting("Panel Output", "The PNG file the offroad vehicle info panel is written to",
			func(s *ms.DashSettings) *string { return &s.PanelOutput }),
		boolSetting("Sidebar Visible", "Narrow the HUD to leave room for the sidebar",
			func(s *ms.DashSettings) *bool { return &s.SidebarVisible }),
		settingsItem{
			title: "Save Settings",
			desc:  "Persists any updates to the settings, a running dashd picks them up within a second",
			state: saveSettings,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}
}

func getSettingsModel() settingsModel {
	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(settingsItems(), listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Dashd Settings"
	return m
}
