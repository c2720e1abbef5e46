package cereal

import (
	"time"

	"pfeifer.dev/dashd/cereal/log"
)

// ALIVE_TIMEOUT is how long a service may stay silent before it is no longer
// considered alive.
const ALIVE_TIMEOUT = 1 * time.Second

type service struct {
	src      Source
	event    log.Event
	rcvFrame uint64
	rcvTime  time.Time
	updated  bool
	valid    bool
}

// SubMaster polls a fixed set of services once per frame and keeps the latest
// event of each. Services that have never been received read as zero-valued
// structs and report RcvFrame 0.
type SubMaster struct {
	Frame    uint64
	services map[string]*service
	order    []string
	now      func() time.Time
}

func NewSubMaster(names ...string) *SubMaster {
	sources := make(map[string]Source, len(names))
	for _, name := range names {
		sources[name] = NewMsgqSource(name, true)
	}
	return NewSubMasterFromSources(names, sources)
}

func NewSubMasterFromSources(names []string, sources map[string]Source) *SubMaster {
	sm := &SubMaster{
		services: make(map[string]*service, len(names)),
		now:      time.Now,
	}
	for _, name := range names {
		sm.services[name] = &service{src: sources[name]}
		sm.order = append(sm.order, name)
	}
	return sm
}

// Update advances the frame counter and drains at most one message per
// service. Messages that fail to decode are dropped.
func (sm *SubMaster) Update() {
	sm.Frame++
	now := sm.now()
	for _, name := range sm.order {
		s := sm.services[name]
		s.updated = false
		if s.src == nil {
			continue
		}
		event, err := decodeEvent(s.src.Read())
		if err != nil {
			continue
		}
		s.event = event
		s.rcvFrame = sm.Frame
		s.rcvTime = now
		s.updated = true
		s.valid = event.Valid()
	}
}

func (sm *SubMaster) RcvFrame(name string) uint64 {
	if s, ok := sm.services[name]; ok {
		return s.rcvFrame
	}
	return 0
}

func (sm *SubMaster) Updated(name string) bool {
	if s, ok := sm.services[name]; ok {
		return s.updated
	}
	return false
}

func (sm *SubMaster) Alive(name string) bool {
	s, ok := sm.services[name]
	if !ok || s.rcvFrame == 0 {
		return false
	}
	return sm.now().Sub(s.rcvTime) < ALIVE_TIMEOUT
}

func (sm *SubMaster) Valid(name string) bool {
	if s, ok := sm.services[name]; ok {
		return s.valid
	}
	return false
}

func (sm *SubMaster) Event(name string) (log.Event, bool) {
	s, ok := sm.services[name]
	if !ok || s.rcvFrame == 0 {
		return log.Event{}, false
	}
	return s.event, true
}

func (sm *SubMaster) CarState() log.CarState {
	return readOrZero(sm, "carState", CarStateReader)
}

func (sm *SubMaster) ControlsState() log.ControlsState {
	return readOrZero(sm, "controlsState", ControlsStateReader)
}

func (sm *SubMaster) Ioniq() log.Ioniq {
	return readOrZero(sm, "ioniq", IoniqReader)
}

func (sm *SubMaster) GpsLocation() log.GpsLocationData {
	return readOrZero(sm, "gpsLocation", GpsLocationReader)
}

func (sm *SubMaster) DeviceState() log.DeviceState {
	return readOrZero(sm, "deviceState", DeviceStateReader)
}

func readOrZero[T any](sm *SubMaster, name string, reader Reader[T]) (obj T) {
	event, ok := sm.Event(name)
	if !ok {
		return obj
	}
	obj, err := reader(event)
	if err != nil {
		var zero T
		return zero
	}
	return obj
}
