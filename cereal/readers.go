package cereal

import (
	"pfeifer.dev/dashd/cereal/log"
)

func CarStateReader(evt log.Event) (log.CarState, error) {
	return evt.CarState()
}

func ControlsStateReader(evt log.Event) (log.ControlsState, error) {
	return evt.ControlsState()
}

func IoniqReader(evt log.Event) (log.Ioniq, error) {
	return evt.Ioniq()
}

func GpsLocationReader(evt log.Event) (log.GpsLocationData, error) {
	return evt.GpsLocation()
}

func DeviceStateReader(evt log.Event) (log.DeviceState, error) {
	return evt.DeviceState()
}
