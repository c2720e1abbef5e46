package ioniq

import (
	"encoding/json"

	"github.com/pkg/errors"
	"pfeifer.dev/dashd/cereal/log"
	"pfeifer.dev/dashd/params"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Valid     bool    `json:"-"`
}

// LastKnownLocation reads the position openpilot persists between drives so
// sun times are available before the first fix.
func LastKnownLocation() (Location, error) {
	var loc Location
	data, err := params.GetParam(params.LAST_GPS_POSITION)
	if err != nil {
		return loc, errors.Wrap(err, "could not read last gps position")
	}
	if err := json.Unmarshal(data, &loc); err != nil {
		return loc, errors.Wrap(err, "could not parse last gps position")
	}
	loc.Valid = loc.Latitude != 0 || loc.Longitude != 0
	return loc, nil
}

func locationFromGps(gps log.GpsLocationData) (Location, bool) {
	if !gps.HasFix() {
		return Location{}, false
	}
	return Location{
		Latitude:  gps.Latitude(),
		Longitude: gps.Longitude(),
		Altitude:  gps.Altitude(),
		Valid:     true,
	}, true
}
