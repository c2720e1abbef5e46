package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/dashd/cereal/log"
	"pfeifer.dev/dashd/settings"
)

type MessageCreator[T any] func(log.Event) (T, error)

// Sink receives marshalled events.
type Sink interface {
	Send(data []byte)
}

type SinkFunc func([]byte)

func (f SinkFunc) Send(data []byte) {
	f(data)
}

type Publisher[T any] struct {
	Pub     Sink
	creator MessageCreator[T]
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "could not marshal message")
	}
	p.Pub.Send(b)
	return nil
}

func (p *Publisher[T]) NewMessage(valid bool) (msg *capnp.Message, obj T, err error) {
	arena := capnp.SingleSegment(nil)

	msg, seg, err := capnp.NewMessage(arena)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create message")
	}

	event, err := log.NewRootEvent(seg)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create root event")
	}

	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)

	obj, err = p.creator(event)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create event member")
	}

	return msg, obj, nil
}

func NewMsgqSink(name string) Sink {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(err)
	}
	pub := &gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	return SinkFunc(func(data []byte) {
		pub.Send(data)
	})
}

func NewPublisher[T any](name string, creator MessageCreator[T]) (publisher Publisher[T]) {
	publisher.Pub = NewMsgqSink(name)
	publisher.creator = creator
	return publisher
}

func NewPublisherToSink[T any](sink Sink, creator MessageCreator[T]) Publisher[T] {
	return Publisher[T]{Pub: sink, creator: creator}
}
