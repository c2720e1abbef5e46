package hud

import (
	"fmt"
	"math"

	ms "pfeifer.dev/dashd/settings"
)

const noSetSpeed = "–"

func (h *State) SetSpeedText() string {
	if !h.IsCruiseSet {
		return noSetSpeed
	}
	return roundText(float64(h.SetSpeed))
}

func (h *State) SpeedText() string {
	return roundText(float64(h.Speed))
}

func (h *State) SpeedUnit() string {
	if h.IsMetric {
		return "km/h"
	}
	return "mph"
}

func roundText(v float64) string {
	return fmt.Sprintf("%d", int64(math.RoundToEven(v)))
}

func (h *State) PowerText() string {
	return fmt.Sprintf("%.1f kW", h.Power)
}

func (h *State) EnergyText() string {
	return fmt.Sprintf("%.1f kWh", h.EnergySinceIgnition)
}

func (h *State) SinceChargeEnergyText() string {
	return fmt.Sprintf("%.1f kWh", h.EnergySinceCharging)
}

func (h *State) RequestedPowerText() string {
	return fmt.Sprintf("%.1f kW", h.MaxRequestedChargePower)
}

// RequestedCurrentText shows the charge current (positive while charging)
// against the current the charger was asked for.
func (h *State) RequestedCurrentText() string {
	charging := -h.Current
	if charging == 0 {
		charging = 0 // no "-0.0"
	}
	return fmt.Sprintf("%.1f/%.1f A", charging, h.MaxRequestedChargeCurrent)
}

func (h *State) AltitudeText() string {
	return fmt.Sprintf("%.0f ft", h.Altitude*ms.METER_TO_FOOT)
}

func chargeText(power float32, ref float32) (string, string) {
	return fmt.Sprintf("%.0f kW", power), fmt.Sprintf("%.0f%%", power/ref*100)
}

func (h *State) ChargePowerText(ref float32) (string, string) {
	return chargeText(h.MaxChargePower, ref)
}

func (h *State) DischargePowerText(ref float32) (string, string) {
	return chargeText(h.MaxDischargePower, ref)
}

func (h *State) BatteryTempsText() string {
	return fmt.Sprintf("%d - %d °C", h.MinBatteryTemp, h.MaxBatteryTemp)
}

func (h *State) OtherTempsText() string {
	return fmt.Sprintf("%d / %d °C", h.HeaterTemp, h.BatteryInletTemp)
}

func (h *State) SunriseText() string {
	return orPlaceholder(h.Sunrise)
}

func (h *State) SunsetText() string {
	return orPlaceholder(h.Sunset)
}

func orPlaceholder(s string) string {
	if s == "" {
		return "--:--"
	}
	return s
}
