package ioniq

import (
	"time"

	"pfeifer.dev/dashd/cereal/log"
	"pfeifer.dev/dashd/utils"
)

// gaps longer than this are not integrated, the car was likely asleep
const MAX_INTEGRATION_GAP = 30 * time.Second

// Energy integrates pack power into watt hour counters. Positive values are
// energy drawn from the pack.
type Energy struct {
	SinceIgnition float64
	SinceCharging float64
	charging      utils.TrackedState[log.Ioniq_ChargingType]
}

// Add integrates watts over dt seconds. The since charging counter only runs
// while not charging and is cleared when a charge session ends, in which case
// Add reports true.
func (e *Energy) Add(watts float64, dt float64, chargingType log.Ioniq_ChargingType) (reset bool) {
	if e.charging.Equal == nil {
		e.charging.Equal = utils.Compare[log.Ioniq_ChargingType]
	}
	if e.charging.Update(chargingType) && e.charging.LastValue.Charging() && !chargingType.Charging() {
		e.SinceCharging = 0
		reset = true
	}

	if dt <= 0 || dt > MAX_INTEGRATION_GAP.Seconds() {
		return reset
	}
	wh := watts * dt / 3600
	e.SinceIgnition += wh
	if !chargingType.Charging() {
		e.SinceCharging += wh
	}
	return reset
}
