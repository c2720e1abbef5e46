package cereal

import (
	"pfeifer.dev/dashd/cereal/log"
)

func CarStateCreator(evt log.Event) (log.CarState, error) {
	return evt.NewCarState()
}

func ControlsStateCreator(evt log.Event) (log.ControlsState, error) {
	return evt.NewControlsState()
}

func IoniqCreator(evt log.Event) (log.Ioniq, error) {
	return evt.NewIoniq()
}

func GpsLocationCreator(evt log.Event) (log.GpsLocationData, error) {
	return evt.NewGpsLocation()
}

func DeviceStateCreator(evt log.Event) (log.DeviceState, error) {
	return evt.NewDeviceState()
}
