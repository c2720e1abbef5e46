package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond
	IONIQ_DELAY          = 1 * time.Second
	MS_TO_KPH            = 3.6
	MS_TO_MPH            = 2.23694
	KPH_TO_MS            = 1 / 3.6
	KM_TO_MILE           = 0.621371
	METER_TO_FOOT        = 3.28084
	SET_SPEED_NA         = 255
	CHARGE_POWER_REF     = 277.0 // kW
)
