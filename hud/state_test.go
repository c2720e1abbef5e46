package hud

import (
	"math"
	"testing"

	"capnproto.org/go/capnp/v3"
	"pfeifer.dev/dashd/cereal/log"
)

type fakeSnapshot struct {
	frames   map[string]uint64
	car      log.CarState
	controls log.ControlsState
	ioniq    log.Ioniq
}

func (f *fakeSnapshot) RcvFrame(name string) uint64      { return f.frames[name] }
func (f *fakeSnapshot) CarState() log.CarState           { return f.car }
func (f *fakeSnapshot) ControlsState() log.ControlsState { return f.controls }
func (f *fakeSnapshot) Ioniq() log.Ioniq                 { return f.ioniq }

func newEvent(t *testing.T) log.Event {
	t.Helper()
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		t.Fatal(err)
	}
	evt, err := log.NewRootEvent(seg)
	if err != nil {
		t.Fatal(err)
	}
	return evt
}

func newSnapshot(t *testing.T) *fakeSnapshot {
	t.Helper()
	car, err := newEvent(t).NewCarState()
	if err != nil {
		t.Fatal(err)
	}
	controls, err := newEvent(t).NewControlsState()
	if err != nil {
		t.Fatal(err)
	}
	ioniq, err := newEvent(t).NewIoniq()
	if err != nil {
		t.Fatal(err)
	}
	return &fakeSnapshot{
		frames:   map[string]uint64{"carState": 10},
		car:      car,
		controls: controls,
		ioniq:    ioniq,
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestStaleCarStateResetsSpeeds(t *testing.T) {
	sm := newSnapshot(t)
	sm.car.SetVCruiseCluster(100)
	sm.car.SetVEgo(20)
	sm.ioniq.SetVoltage(700)
	sm.ioniq.SetCurrent(10)

	h := NewState()
	h.Update(sm, Scene{IsMetric: true, StartedFrame: 5})
	if !h.IsCruiseSet || h.Power != 7 {
		t.Fatalf("expected a fresh update, got cruise=%v power=%f", h.IsCruiseSet, h.Power)
	}

	sm.ioniq.SetCurrent(20)
	h.Update(sm, Scene{IsMetric: false, Status: STATUS_ENGAGED, StartedFrame: 11})
	if h.IsCruiseSet {
		t.Error("cruise should not be set while carState is stale")
	}
	if h.SetSpeed != 255 {
		t.Errorf("set speed should be 255, got %f", h.SetSpeed)
	}
	if h.Speed != 0 {
		t.Errorf("speed should be 0, got %f", h.Speed)
	}
	if h.Power != 7 {
		t.Errorf("ioniq fields must keep their previous values, got power %f", h.Power)
	}
	if h.IsMetric || h.Status != STATUS_ENGAGED {
		t.Error("scene fields are always copied")
	}
}

func TestSetSpeedFallsBackToControlsState(t *testing.T) {
	sm := newSnapshot(t)
	sm.controls.SetVCruiseDEPRECATED(100)

	h := NewState()
	h.Update(sm, Scene{IsMetric: true})
	if !h.IsCruiseSet || h.SetSpeed != 100 {
		t.Fatalf("expected deprecated set speed, got %v %f", h.IsCruiseSet, h.SetSpeed)
	}

	sm.car.SetVCruiseCluster(90)
	h.Update(sm, Scene{IsMetric: true})
	if h.SetSpeed != 90 {
		t.Fatalf("cluster set speed should win when present, got %f", h.SetSpeed)
	}
}

func TestSetSpeedImperial(t *testing.T) {
	sm := newSnapshot(t)
	sm.car.SetVCruiseCluster(100)

	h := NewState()
	h.Update(sm, Scene{IsMetric: false})
	if !near(h.SetSpeed, 62.1371) {
		t.Fatalf("expected 62.14 mph, got %f", h.SetSpeed)
	}
	if h.SetSpeedText() != "62" {
		t.Fatalf("expected 62, got %s", h.SetSpeedText())
	}
}

func TestCruiseAvailability(t *testing.T) {
	cases := []struct {
		name      string
		cluster   float32
		set       bool
		available bool
		setSpeed  float32
	}{
		{"unset", 0, false, true, 0},
		{"not available", -1, false, false, -1},
		{"not applicable", 255, false, true, 255},
		{"set", 50, true, true, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sm := newSnapshot(t)
			sm.car.SetVCruiseCluster(tc.cluster)
			h := NewState()
			h.Update(sm, Scene{IsMetric: true})
			if h.IsCruiseSet != tc.set || h.IsCruiseAvailable != tc.available {
				t.Fatalf("got set=%v available=%v", h.IsCruiseSet, h.IsCruiseAvailable)
			}
			if h.SetSpeed != tc.setSpeed {
				t.Fatalf("imperial conversion must only apply to a set cruise, got %f", h.SetSpeed)
			}
		})
	}
}

func TestUnsetCruiseIsNotConvertedInImperial(t *testing.T) {
	sm := newSnapshot(t)
	sm.car.SetVCruiseCluster(255)
	h := NewState()
	h.Update(sm, Scene{IsMetric: false})
	if h.SetSpeed != 255 || h.SetSpeedText() != "–" {
		t.Fatalf("got %f %q", h.SetSpeed, h.SetSpeedText())
	}
}

func TestVEgoClusterLatches(t *testing.T) {
	sm := newSnapshot(t)
	sm.car.SetVEgo(10)

	h := NewState()
	h.Update(sm, Scene{IsMetric: true})
	if !near(h.Speed, 36) {
		t.Fatalf("expected vEgo before any cluster speed, got %f", h.Speed)
	}

	sm.car.SetVEgoCluster(11)
	h.Update(sm, Scene{IsMetric: true})
	if !near(h.Speed, 39.6) {
		t.Fatalf("expected cluster speed, got %f", h.Speed)
	}

	sm.car.SetVEgoCluster(0)
	h.Update(sm, Scene{IsMetric: true})
	if h.Speed != 0 || !h.VEgoClusterSeen {
		t.Fatalf("once seen, cluster speed is used even when zero, got %f", h.Speed)
	}
}

func TestSpeedUnitsAndClamp(t *testing.T) {
	sm := newSnapshot(t)
	sm.car.SetVEgo(10)
	h := NewState()
	h.Update(sm, Scene{IsMetric: false})
	if !near(h.Speed, 22.3694) || h.SpeedUnit() != "mph" || h.SpeedText() != "22" {
		t.Fatalf("got %f %s %s", h.Speed, h.SpeedUnit(), h.SpeedText())
	}

	sm.car.SetVEgo(-1)
	h.Update(sm, Scene{IsMetric: true})
	if h.Speed != 0 || h.SpeedUnit() != "km/h" {
		t.Fatalf("negative speed should clamp to 0, got %f", h.Speed)
	}
}

func TestIoniqDerivedValues(t *testing.T) {
	sm := newSnapshot(t)
	sm.ioniq.SetVoltage(650)
	sm.ioniq.SetCurrent(-200)
	sm.ioniq.SetEnergySinceIgnition(12345)
	sm.ioniq.SetEnergySinceCharging(54321)
	sm.ioniq.SetAltitudeMsl(100)
	sm.ioniq.SetAvailableChargePower(180)
	sm.ioniq.SetAvailableDischargePower(250)
	sm.ioniq.SetMaximumChargeCurrent(350)
	sm.ioniq.SetMaximumChargePower(225)
	sm.ioniq.SetMinBatteryTemp(-3)
	sm.ioniq.SetMaxBatteryTemp(12)
	sm.ioniq.SetBatteryInletTemp(8)
	sm.ioniq.SetHeaterTemp(30)
	if err := sm.ioniq.SetSunrise("06:55"); err != nil {
		t.Fatal(err)
	}
	if err := sm.ioniq.SetSunset("18:20"); err != nil {
		t.Fatal(err)
	}

	h := NewState()
	h.Update(sm, Scene{IsMetric: true})

	if h.Power != -130 || h.Current != -200 {
		t.Errorf("power/current: %f %f", h.Power, h.Current)
	}
	if !near(h.EnergySinceIgnition, 12.345) || !near(h.EnergySinceCharging, 54.321) {
		t.Errorf("energy: %f %f", h.EnergySinceIgnition, h.EnergySinceCharging)
	}
	if h.Altitude != 100 {
		t.Errorf("altitude: %f", h.Altitude)
	}
	if h.MaxChargePower != 180 || h.MaxDischargePower != 250 || h.MaxRequestedChargeCurrent != 350 || h.MaxRequestedChargePower != 225 {
		t.Errorf("power limits: %+v", h)
	}
	if h.MinBatteryTemp != -3 || h.MaxBatteryTemp != 12 || h.BatteryInletTemp != 8 || h.HeaterTemp != 30 {
		t.Errorf("temps: %d %d %d %d", h.MinBatteryTemp, h.MaxBatteryTemp, h.BatteryInletTemp, h.HeaterTemp)
	}
	if h.Sunrise != "06:55" || h.Sunset != "18:20" {
		t.Errorf("sun times: %s %s", h.Sunrise, h.Sunset)
	}
}

func TestStatusFromControls(t *testing.T) {
	if StatusFromControls(log.ControlsState_UiStatus_engaged) != STATUS_ENGAGED {
		t.Error("engaged")
	}
	if StatusFromControls(log.ControlsState_UiStatus_override) != STATUS_OVERRIDE {
		t.Error("override")
	}
	if StatusFromControls(log.ControlsState_UiStatus_disengaged) != STATUS_DISENGAGED {
		t.Error("disengaged")
	}
}
