package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/dashd/cereal/log"
	"pfeifer.dev/dashd/settings"
)

type Reader[T any] func(log.Event) (T, error)

// Source yields the latest raw message for a service, or nil when nothing
// new has arrived.
type Source interface {
	Read() []byte
}

type SourceFunc func() []byte

func (f SourceFunc) Read() []byte {
	return f()
}

type Subscriber[T any] struct {
	Sub    Source
	reader Reader[T]
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	event, err := decodeEvent(s.Sub.Read())
	if err != nil {
		return obj, false
	}

	obj, err = s.reader(event)
	if err != nil {
		return obj, false
	}
	return obj, true
}

func decodeEvent(data []byte) (log.Event, error) {
	if len(data) == 0 {
		return log.Event{}, errors.New("no data")
	}
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return log.Event{}, errors.Wrap(err, "could not unmarshal event")
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	event, err := log.ReadRootEvent(msg)
	if err != nil {
		return log.Event{}, errors.Wrap(err, "could not read root event")
	}
	return event, nil
}

func NewMsgqSource(name string, conflate bool) Source {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(err)
	}
	sub := &gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	return SourceFunc(func() []byte {
		data := sub.Read()
		if len(data) == 0 {
			return nil
		}
		// msgq may reuse its buffer once the next message lands
		return append([]byte(nil), data...)
	})
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) (subscriber Subscriber[T]) {
	subscriber.Sub = NewMsgqSource(name, conflate)
	subscriber.reader = reader
	return subscriber
}

func NewSubscriberFromSource[T any](src Source, reader Reader[T]) Subscriber[T] {
	return Subscriber[T]{Sub: src, reader: reader}
}
