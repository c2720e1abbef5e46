package log

import (
	"math"

	capnp "capnproto.org/go/capnp/v3"
)

type CarState capnp.Struct

var carStateSize = capnp.ObjectSize{DataSize: 24, PointerCount: 0}

func NewCarState(s *capnp.Segment) (CarState, error) {
	st, err := capnp.NewStruct(s, carStateSize)
	return CarState(st), err
}

func (s CarState) VEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s CarState) SetVEgo(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s CarState) VEgoCluster() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s CarState) SetVEgoCluster(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s CarState) VCruise() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s CarState) SetVCruise(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s CarState) VCruiseCluster() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s CarState) SetVCruiseCluster(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s CarState) AEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s CarState) SetAEgo(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s CarState) GasPressed() bool {
	return capnp.Struct(s).Bit(160)
}

func (s CarState) SetGasPressed(v bool) {
	capnp.Struct(s).SetBit(160, v)
}

type ControlsState capnp.Struct

type ControlsState_UiStatus uint16

const (
	ControlsState_UiStatus_disengaged ControlsState_UiStatus = 0
	ControlsState_UiStatus_override   ControlsState_UiStatus = 1
	ControlsState_UiStatus_engaged    ControlsState_UiStatus = 2
)

func (c ControlsState_UiStatus) String() string {
	switch c {
	case ControlsState_UiStatus_disengaged:
		return "disengaged"
	case ControlsState_UiStatus_override:
		return "override"
	case ControlsState_UiStatus_engaged:
		return "engaged"
	}
	return ""
}

var controlsStateSize = capnp.ObjectSize{DataSize: 8, PointerCount: 0}

func NewControlsState(s *capnp.Segment) (ControlsState, error) {
	st, err := capnp.NewStruct(s, controlsStateSize)
	return ControlsState(st), err
}

func (s ControlsState) VCruiseDEPRECATED() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s ControlsState) SetVCruiseDEPRECATED(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s ControlsState) Enabled() bool {
	return capnp.Struct(s).Bit(32)
}

func (s ControlsState) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(32, v)
}

func (s ControlsState) State() ControlsState_UiStatus {
	return ControlsState_UiStatus(capnp.Struct(s).Uint16(6))
}

func (s ControlsState) SetState(v ControlsState_UiStatus) {
	capnp.Struct(s).SetUint16(6, uint16(v))
}
