package utils

import (
	"time"

	m "pfeifer.dev/dashd/math"
)

type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) InitAt(maLength int, now time.Time) {
	u.LastTime = now
	u.Time = now
	u.DiffMA.Init(maLength)
}

// UpdateAt records a tick and returns the seconds since the previous one.
func (u *UpdateTracker) UpdateAt(now time.Time) float64 {
	u.LastTime = u.Time
	u.Time = now
	dt := u.Time.Sub(u.LastTime).Seconds()
	u.DiffMA.Update(dt)
	return dt
}
