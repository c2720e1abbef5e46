// Package log holds the Go accessors for the structs declared in dash.capnp.
// Field offsets follow the layout the schema compiler assigns, so messages
// produced here stay readable by any other consumer of the schema.
package log

import (
	capnp "capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
)

type Event capnp.Struct

type Event_Which uint16

const (
	Event_Which_carState      Event_Which = 0
	Event_Which_controlsState Event_Which = 1
	Event_Which_ioniq         Event_Which = 2
	Event_Which_gpsLocation   Event_Which = 3
	Event_Which_deviceState   Event_Which = 4
)

func (w Event_Which) String() string {
	switch w {
	case Event_Which_carState:
		return "carState"
	case Event_Which_controlsState:
		return "controlsState"
	case Event_Which_ioniq:
		return "ioniq"
	case Event_Which_gpsLocation:
		return "gpsLocation"
	case Event_Which_deviceState:
		return "deviceState"
	}
	return "Event_Which(?)"
}

var eventSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

func NewEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewStruct(s, eventSize)
	return Event(st), err
}

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, eventSize)
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) Which() Event_Which {
	return Event_Which(capnp.Struct(s).Uint16(10))
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s Event) member(w Event_Which) (capnp.Struct, error) {
	if s.Which() != w {
		return capnp.Struct{}, errors.Errorf("event holds %s, not %s", s.Which(), w)
	}
	p, err := capnp.Struct(s).Ptr(0)
	if err != nil {
		return capnp.Struct{}, errors.Wrapf(err, "could not read %s pointer", w)
	}
	return p.Struct(), nil
}

func (s Event) setMember(w Event_Which, st capnp.Struct) error {
	capnp.Struct(s).SetUint16(10, uint16(w))
	return capnp.Struct(s).SetPtr(0, st.ToPtr())
}

func (s Event) CarState() (CarState, error) {
	st, err := s.member(Event_Which_carState)
	return CarState(st), err
}

func (s Event) NewCarState() (CarState, error) {
	ss, err := NewCarState(capnp.Struct(s).Segment())
	if err != nil {
		return CarState{}, err
	}
	return ss, s.setMember(Event_Which_carState, capnp.Struct(ss))
}

func (s Event) ControlsState() (ControlsState, error) {
	st, err := s.member(Event_Which_controlsState)
	return ControlsState(st), err
}

func (s Event) NewControlsState() (ControlsState, error) {
	ss, err := NewControlsState(capnp.Struct(s).Segment())
	if err != nil {
		return ControlsState{}, err
	}
	return ss, s.setMember(Event_Which_controlsState, capnp.Struct(ss))
}

func (s Event) Ioniq() (Ioniq, error) {
	st, err := s.member(Event_Which_ioniq)
	return Ioniq(st), err
}

func (s Event) NewIoniq() (Ioniq, error) {
	ss, err := NewIoniq(capnp.Struct(s).Segment())
	if err != nil {
		return Ioniq{}, err
	}
	return ss, s.setMember(Event_Which_ioniq, capnp.Struct(ss))
}

func (s Event) GpsLocation() (GpsLocationData, error) {
	st, err := s.member(Event_Which_gpsLocation)
	return GpsLocationData(st), err
}

func (s Event) NewGpsLocation() (GpsLocationData, error) {
	ss, err := NewGpsLocationData(capnp.Struct(s).Segment())
	if err != nil {
		return GpsLocationData{}, err
	}
	return ss, s.setMember(Event_Which_gpsLocation, capnp.Struct(ss))
}

func (s Event) DeviceState() (DeviceState, error) {
	st, err := s.member(Event_Which_deviceState)
	return DeviceState(st), err
}

func (s Event) NewDeviceState() (DeviceState, error) {
	ss, err := NewDeviceState(capnp.Struct(s).Segment())
	if err != nil {
		return DeviceState{}, err
	}
	return ss, s.setMember(Event_Which_deviceState, capnp.Struct(ss))
}
