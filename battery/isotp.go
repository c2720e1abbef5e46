package battery

import (
	"context"

	"github.com/brutella/can"
	"github.com/pkg/errors"
)

// Bus is the part of a socketcan bus the query needs.
type Bus interface {
	Publish(frame can.Frame) error
	Subscribe(handler can.Handler)
	Unsubscribe(handler can.Handler)
}

const (
	pciSingle      = 0x0
	pciFirst       = 0x1
	pciConsecutive = 0x2
	pciFlowControl = 0x3

	// response addresses sit 8 above the request address on 11 bit ECUs
	rxOffset = 0x8
)

var ErrTimeout = errors.New("isotp response timeout")

type receiver struct {
	id     uint32
	frames chan can.Frame
}

func (r *receiver) Handle(frame can.Frame) {
	if frame.ID != r.id {
		return
	}
	select {
	case r.frames <- frame:
	default:
	}
}

func packFrame(id uint32, data []byte) can.Frame {
	var frameData [8]byte
	copy(frameData[:], data)
	return can.Frame{
		ID:     id,
		Length: 8,
		Data:   frameData,
	}
}

type session struct {
	bus  Bus
	addr uint32
	rx   *receiver
}

// openSession starts listening for responses from addr+8. Close must be
// called to stop.
func openSession(bus Bus, addr uint32) *session {
	rx := &receiver{id: addr + rxOffset, frames: make(chan can.Frame, 64)}
	bus.Subscribe(rx)
	return &session{bus: bus, addr: addr, rx: rx}
}

func (s *session) Close() {
	s.bus.Unsubscribe(s.rx)
}

func (s *session) send(request []byte) error {
	if len(request) > 7 {
		return errors.Errorf("request of %d bytes does not fit a single frame", len(request))
	}
	err := s.bus.Publish(packFrame(s.addr, append([]byte{byte(len(request))}, request...)))
	return errors.Wrap(err, "could not publish request")
}

// recv reassembles one response, sending flow control when it spans several
// frames.
func (s *session) recv(ctx context.Context) ([]byte, error) {
	var (
		payload  []byte
		expected int
		seq      byte
	)
	for {
		var frame can.Frame
		select {
		case <-ctx.Done():
			return nil, ErrTimeout
		case frame = <-s.rx.frames:
		}

		data := frame.Data[:]
		switch data[0] >> 4 {
		case pciSingle:
			n := int(data[0] & 0xF)
			if n == 0 || n > 7 {
				return nil, errors.Errorf("bad single frame length %d", n)
			}
			return append([]byte(nil), data[1:1+n]...), nil
		case pciFirst:
			expected = int(data[0]&0xF)<<8 | int(data[1])
			payload = append(payload[:0], data[2:]...)
			seq = 1
			err := s.bus.Publish(packFrame(s.addr, []byte{pciFlowControl << 4, 0x00, 0x00}))
			if err != nil {
				return nil, errors.Wrap(err, "could not publish flow control")
			}
		case pciConsecutive:
			if expected == 0 {
				continue
			}
			if data[0]&0xF != seq {
				return nil, errors.Errorf("consecutive frame out of order: got %d, want %d", data[0]&0xF, seq)
			}
			seq = (seq + 1) & 0xF
			payload = append(payload, data[1:]...)
			if len(payload) >= expected {
				return payload[:expected], nil
			}
		}
	}
}
