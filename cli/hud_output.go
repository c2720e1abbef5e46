package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"pfeifer.dev/dashd/hud"
)

type hudModel struct {
	state   hud.State
	started bool
	ref     float32
}

func (m hudModel) Update(msg tea.Msg, mm *uiModel) (hudModel, tea.Cmd) {
	m.state = *mm.hudState
	m.started = mm.scene.Started
	m.ref = mm.hudState.ChargePowerRef

	return m, nil
}

func (m hudModel) View() string {
	status := "offroad"
	if m.started {
		status = "onroad"
	}
	chargePower, chargePct := m.state.ChargePowerText(m.ref)
	dischargePower, dischargePct := m.state.DischargePowerText(m.ref)
	return docStyle.Render(fmt.Sprintf(
		"status: %s\nset speed: %s\nspeed: %s %s\npower: %s\nenergy: %s\nrequested: %s / %s\naltitude: %s\ncharge: %s (%s)\ndischarge: %s (%s)\nbattery: %s\nheater/inlet: %s\nsince last charge: %s\nsunrise: %s\nsunset: %s\n\n(esc to return)",
		status,
		m.state.SetSpeedText(),
		m.state.SpeedText(),
		m.state.SpeedUnit(),
		m.state.PowerText(),
		m.state.EnergyText(),
		m.state.RequestedPowerText(),
		m.state.RequestedCurrentText(),
		m.state.AltitudeText(),
		chargePower, chargePct,
		dischargePower, dischargePct,
		m.state.BatteryTempsText(),
		m.state.OtherTempsText(),
		m.state.SinceChargeEnergyText(),
		m.state.SunriseText(),
		m.state.SunsetText(),
	) + "\n")
}
