package log

import (
	"math"

	capnp "capnproto.org/go/capnp/v3"
)

type GpsLocationData capnp.Struct

var gpsLocationDataSize = capnp.ObjectSize{DataSize: 32, PointerCount: 0}

func NewGpsLocationData(s *capnp.Segment) (GpsLocationData, error) {
	st, err := capnp.NewStruct(s, gpsLocationDataSize)
	return GpsLocationData(st), err
}

func (s GpsLocationData) Latitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s GpsLocationData) SetLatitude(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s GpsLocationData) Longitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s GpsLocationData) SetLongitude(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s GpsLocationData) Altitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s GpsLocationData) SetAltitude(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

func (s GpsLocationData) HasFix() bool {
	return capnp.Struct(s).Bit(192)
}

func (s GpsLocationData) SetHasFix(v bool) {
	capnp.Struct(s).SetBit(192, v)
}
