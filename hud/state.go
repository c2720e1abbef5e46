// Package hud maps the onroad telemetry snapshot to the values shown in the
// heads-up display and paints them.
package hud

import (
	"math"

	"pfeifer.dev/dashd/cereal"
	"pfeifer.dev/dashd/cereal/log"
	ms "pfeifer.dev/dashd/settings"
)

type Status int

const (
	STATUS_DISENGAGED Status = iota
	STATUS_OVERRIDE
	STATUS_ENGAGED
)

func StatusFromControls(state log.ControlsState_UiStatus) Status {
	switch state {
	case log.ControlsState_UiStatus_override:
		return STATUS_OVERRIDE
	case log.ControlsState_UiStatus_engaged:
		return STATUS_ENGAGED
	}
	return STATUS_DISENGAGED
}

// Scene is the UI state shared by every widget for one frame.
type Scene struct {
	IsMetric     bool
	Status       Status
	Started      bool
	StartedFrame uint64
}

// Snapshot is the subset of SubMaster the HUD reads.
type Snapshot interface {
	RcvFrame(name string) uint64
	CarState() log.CarState
	ControlsState() log.ControlsState
	Ioniq() log.Ioniq
}

var _ Snapshot = (*cereal.SubMaster)(nil)

type State struct {
	Speed    float32
	SetSpeed float32

	Altitude            float64
	Power               float32
	Current             float32
	EnergySinceIgnition float32
	EnergySinceCharging float32

	MaxChargePower            float32
	MaxDischargePower         float32
	MaxRequestedChargePower   float32
	MaxRequestedChargeCurrent float32
	MinBatteryTemp            int8
	MaxBatteryTemp            int8
	BatteryInletTemp          int8
	HeaterTemp                int8
	Sunrise                   string
	Sunset                    string

	IsCruiseSet       bool
	IsCruiseAvailable bool
	IsMetric          bool
	VEgoClusterSeen   bool
	Status            Status

	// ChargePowerRef is the pack power that counts as 100% in the sidebar
	// layout.
	ChargePowerRef float32

	fullScreenWidth int
}

func NewState() *State {
	return &State{
		IsCruiseAvailable: true,
		ChargePowerRef:    ms.CHARGE_POWER_REF,
		Sunrise:           "--:--",
		Sunset:            "--:--",
	}
}

// Update refreshes the HUD values from the latest snapshot. When carState has
// not been received since the drive started, only the cruise and speed
// fields are reset and everything else keeps its previous value.
func (h *State) Update(sm Snapshot, scene Scene) {
	h.IsMetric = scene.IsMetric
	h.Status = scene.Status

	if sm.RcvFrame("carState") < scene.StartedFrame {
		h.IsCruiseSet = false
		h.SetSpeed = ms.SET_SPEED_NA
		h.Speed = 0
		return
	}

	controlsState := sm.ControlsState()
	carState := sm.CarState()
	ioniq := sm.Ioniq()

	// older routes do not set vCruiseCluster
	if carState.VCruiseCluster() == 0 {
		h.SetSpeed = controlsState.VCruiseDEPRECATED()
	} else {
		h.SetSpeed = carState.VCruiseCluster()
	}
	h.IsCruiseSet = h.SetSpeed > 0 && h.SetSpeed != ms.SET_SPEED_NA
	h.IsCruiseAvailable = h.SetSpeed != -1

	if h.IsCruiseSet && !h.IsMetric {
		h.SetSpeed *= ms.KM_TO_MILE
	}

	// older routes do not set vEgoCluster
	h.VEgoClusterSeen = h.VEgoClusterSeen || carState.VEgoCluster() != 0
	vEgo := carState.VEgo()
	if h.VEgoClusterSeen {
		vEgo = carState.VEgoCluster()
	}
	factor := float32(ms.MS_TO_MPH)
	if h.IsMetric {
		factor = ms.MS_TO_KPH
	}
	h.Speed = float32(math.Max(0, float64(vEgo*factor)))

	h.Altitude = ioniq.AltitudeMsl()

	h.Power = ioniq.Voltage() * ioniq.Current() / 1000
	h.Current = ioniq.Current()

	h.EnergySinceIgnition = ioniq.EnergySinceIgnition() / 1000
	h.EnergySinceCharging = ioniq.EnergySinceCharging() / 1000

	h.MaxChargePower = ioniq.AvailableChargePower()
	h.MaxDischargePower = ioniq.AvailableDischargePower()
	h.MaxRequestedChargeCurrent = ioniq.MaximumChargeCurrent()
	h.MaxRequestedChargePower = ioniq.MaximumChargePower()
	h.MinBatteryTemp = ioniq.MinBatteryTemp()
	h.MaxBatteryTemp = ioniq.MaxBatteryTemp()
	h.BatteryInletTemp = ioniq.BatteryInletTemp()
	h.HeaterTemp = ioniq.HeaterTemp()
	h.Sunrise, _ = ioniq.Sunrise()
	h.Sunset, _ = ioniq.Sunset()
}
