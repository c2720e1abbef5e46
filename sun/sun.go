// Package sun computes the sunrise and sunset strings shown on the dashboard.
package sun

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

const Unknown = "--:--"

// Times returns local HH:MM sunrise and sunset for the day containing day.
// Either is Unknown when the sun does not rise or set that day.
func Times(latitude, longitude float64, day time.Time) (rise string, set string) {
	r, s := sunrise.SunriseSunset(latitude, longitude, day.Year(), day.Month(), day.Day())
	return format(r, day.Location()), format(s, day.Location())
}

func format(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Unknown
	}
	return t.In(loc).Format("15:04")
}
