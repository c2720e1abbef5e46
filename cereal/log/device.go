package log

import capnp "capnproto.org/go/capnp/v3"

type DeviceState capnp.Struct

var deviceStateSize = capnp.ObjectSize{DataSize: 8, PointerCount: 0}

func NewDeviceState(s *capnp.Segment) (DeviceState, error) {
	st, err := capnp.NewStruct(s, deviceStateSize)
	return DeviceState(st), err
}

func (s DeviceState) Started() bool {
	return capnp.Struct(s).Bit(0)
}

func (s DeviceState) SetStarted(v bool) {
	capnp.Struct(s).SetBit(0, v)
}
