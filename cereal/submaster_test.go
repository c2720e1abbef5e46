package cereal

import (
	"testing"
	"time"

	"pfeifer.dev/dashd/cereal/log"
)

type queue struct {
	msgs [][]byte
}

func (q *queue) Read() []byte {
	if len(q.msgs) == 0 {
		return nil
	}
	m := q.msgs[0]
	q.msgs = q.msgs[1:]
	return m
}

func (q *queue) Send(data []byte) {
	q.msgs = append(q.msgs, data)
}

func sendCarState(t *testing.T, q *queue, vEgo float32) {
	t.Helper()
	pub := NewPublisherToSink(q, CarStateCreator)
	msg, cs, err := pub.NewMessage(true)
	if err != nil {
		t.Fatal(err)
	}
	cs.SetVEgo(vEgo)
	if err := pub.Send(msg); err != nil {
		t.Fatal(err)
	}
}

func TestSubMasterTracksReceiveFrame(t *testing.T) {
	car := &queue{}
	sm := NewSubMasterFromSources([]string{"carState", "ioniq"}, map[string]Source{
		"carState": car,
		"ioniq":    &queue{},
	})

	sm.Update()
	if sm.RcvFrame("carState") != 0 {
		t.Fatalf("expected no carState yet, got frame %d", sm.RcvFrame("carState"))
	}
	if sm.Alive("carState") {
		t.Fatal("carState should not be alive before any message")
	}

	sendCarState(t, car, 12.5)
	sm.Update()
	if sm.Frame != 2 {
		t.Fatalf("expected frame 2, got %d", sm.Frame)
	}
	if got := sm.RcvFrame("carState"); got != 2 {
		t.Fatalf("expected carState at frame 2, got %d", got)
	}
	if !sm.Updated("carState") || !sm.Valid("carState") {
		t.Fatal("expected carState to be updated and valid")
	}
	if got := sm.CarState().VEgo(); got != 12.5 {
		t.Fatalf("expected vEgo 12.5, got %f", got)
	}

	sm.Update()
	if sm.Updated("carState") {
		t.Fatal("carState should not be updated without a new message")
	}
	if got := sm.RcvFrame("carState"); got != 2 {
		t.Fatalf("receive frame should stay at 2, got %d", got)
	}
	if got := sm.CarState().VEgo(); got != 12.5 {
		t.Fatalf("last carState should be kept, got %f", got)
	}
}

func TestSubMasterAliveTimeout(t *testing.T) {
	car := &queue{}
	now := time.Unix(1000, 0)
	sm := NewSubMasterFromSources([]string{"carState"}, map[string]Source{"carState": car})
	sm.now = func() time.Time { return now }

	sendCarState(t, car, 1)
	sm.Update()
	if !sm.Alive("carState") {
		t.Fatal("expected carState alive right after receiving")
	}

	now = now.Add(ALIVE_TIMEOUT + time.Millisecond)
	if sm.Alive("carState") {
		t.Fatal("expected carState to time out")
	}
}

func TestSubMasterMissingServiceReadsZero(t *testing.T) {
	sm := NewSubMasterFromSources([]string{"ioniq"}, map[string]Source{})
	sm.Update()

	ioniq := sm.Ioniq()
	if ioniq.Voltage() != 0 || ioniq.ChargingType() != log.Ioniq_ChargingType_notCharging {
		t.Fatal("expected zero ioniq values")
	}
	sunrise, err := ioniq.Sunrise()
	if err != nil || sunrise != "" {
		t.Fatalf("expected empty sunrise, got %q (%v)", sunrise, err)
	}
	if sm.RcvFrame("unknown") != 0 {
		t.Fatal("unknown service should report frame 0")
	}
}

func TestSubMasterDropsGarbage(t *testing.T) {
	car := &queue{msgs: [][]byte{{0x01, 0x02, 0x03}}}
	sm := NewSubMasterFromSources([]string{"carState"}, map[string]Source{"carState": car})
	sm.Update()
	if sm.Updated("carState") || sm.RcvFrame("carState") != 0 {
		t.Fatal("garbage must not count as a received message")
	}
}

func TestWrongMemberIsError(t *testing.T) {
	q := &queue{}
	sendCarState(t, q, 3)
	sub := NewSubscriberFromSource(q, IoniqReader)
	if _, ok := sub.Read(); ok {
		t.Fatal("reading ioniq from a carState event should fail")
	}
}

func TestSubscriberReadsIoniq(t *testing.T) {
	q := &queue{}
	pub := NewPublisherToSink(q, IoniqCreator)
	msg, ioniq, err := pub.NewMessage(true)
	if err != nil {
		t.Fatal(err)
	}
	ioniq.SetChargingType(log.Ioniq_ChargingType_dc)
	ioniq.SetMinBatteryTemp(-7)
	ioniq.SetDcInlet2Temp(41)
	ioniq.SetAltitudeMsl(231.5)
	if err := ioniq.SetSunset("19:42"); err != nil {
		t.Fatal(err)
	}
	if err := pub.Send(msg); err != nil {
		t.Fatal(err)
	}

	sub := NewSubscriberFromSource(q, IoniqReader)
	got, ok := sub.Read()
	if !ok {
		t.Fatal("expected to read ioniq")
	}
	if got.ChargingType() != log.Ioniq_ChargingType_dc {
		t.Errorf("charging type: got %s", got.ChargingType())
	}
	if got.MinBatteryTemp() != -7 || got.DcInlet2Temp() != 41 {
		t.Errorf("temps: got %d, %d", got.MinBatteryTemp(), got.DcInlet2Temp())
	}
	if got.AltitudeMsl() != 231.5 {
		t.Errorf("altitude: got %f", got.AltitudeMsl())
	}
	if sunset, _ := got.Sunset(); sunset != "19:42" {
		t.Errorf("sunset: got %q", sunset)
	}
}
