package ui

import (
	"image"
	"testing"

	"pfeifer.dev/dashd/cereal"
	"pfeifer.dev/dashd/cereal/log"
	"pfeifer.dev/dashd/display"
	"pfeifer.dev/dashd/hud"
	ms "pfeifer.dev/dashd/settings"
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

type frames struct {
	hud, panel int
}

func newDash(t *testing.T) (*Dash, map[string]*queue, *frames) {
	t.Helper()
	ms.Settings.Default()
	queues := map[string]*queue{}
	sources := map[string]cereal.Source{}
	for _, name := range SERVICES {
		queues[name] = &queue{}
		sources[name] = queues[name]
	}
	d := NewDash(cereal.NewSubMasterFromSources(SERVICES, sources))
	d.Surface = display.NewSurface(1080, 540)
	d.Hud = hud.NewState()
	d.Hud.LatchWidth(1080)
	d.Reload = nil

	f := &frames{}
	d.HudOut = display.PresenterFunc(func(image.Image) error { f.hud++; return nil })
	d.PanelOut = display.PresenterFunc(func(image.Image) error { f.panel++; return nil })
	return d, queues, f
}

func sendCarState(t *testing.T, q *queue, vEgo float32) {
	t.Helper()
	pub := cereal.NewPublisherToSink(q, cereal.CarStateCreator)
	msg, cs, err := pub.NewMessage(true)
	if err != nil {
		t.Fatal(err)
	}
	cs.SetVEgo(vEgo)
	if err := pub.Send(msg); err != nil {
		t.Fatal(err)
	}
}

func sendControlsState(t *testing.T, q *queue, state log.ControlsState_UiStatus) {
	t.Helper()
	pub := cereal.NewPublisherToSink(q, cereal.ControlsStateCreator)
	msg, cs, err := pub.NewMessage(true)
	if err != nil {
		t.Fatal(err)
	}
	cs.SetState(state)
	cs.SetEnabled(true)
	if err := pub.Send(msg); err != nil {
		t.Fatal(err)
	}
}

func sendIoniq(t *testing.T, q *queue, soc float32) {
	t.Helper()
	pub := cereal.NewPublisherToSink(q, cereal.IoniqCreator)
	msg, ioniq, err := pub.NewMessage(true)
	if err != nil {
		t.Fatal(err)
	}
	ioniq.SetSocDisplay(soc)
	if err := pub.Send(msg); err != nil {
		t.Fatal(err)
	}
}

func TestOffroadShowsPanel(t *testing.T) {
	d, queues, f := newDash(t)
	sendIoniq(t, queues["ioniq"], 55)

	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if d.Scene.Started {
		t.Fatal("should not be started without carState")
	}
	if f.panel != 1 || f.hud != 0 {
		t.Fatalf("expected one panel frame, got %+v", f)
	}
	if d.Panel.Primary != "<b>55.0%</b> - Not charging" {
		t.Fatalf("panel not updated from ioniq: %q", d.Panel.Primary)
	}
}

func TestOnroadShowsHud(t *testing.T) {
	d, queues, f := newDash(t)
	d.Step()

	sendCarState(t, queues["carState"], 10)
	sendControlsState(t, queues["controlsState"], log.ControlsState_UiStatus_engaged)
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if !d.Scene.Started || d.Scene.StartedFrame != 2 {
		t.Fatalf("expected start on frame 2, got %+v", d.Scene)
	}
	if d.Scene.Status != hud.STATUS_ENGAGED {
		t.Fatalf("expected engaged status, got %d", d.Scene.Status)
	}
	if f.hud != 1 {
		t.Fatalf("expected a hud frame, got %+v", f)
	}
	if d.Hud.SpeedText() != "22" {
		t.Fatalf("expected 22 mph, got %s", d.Hud.SpeedText())
	}

	// started frame only moves on the transition
	d.Step()
	if d.Scene.StartedFrame != 2 {
		t.Fatalf("started frame moved to %d", d.Scene.StartedFrame)
	}
}

func TestContentRectWithSidebar(t *testing.T) {
	d, _, _ := newDash(t)
	if got := d.ContentRect(); got != d.Surface.Bounds() {
		t.Fatalf("expected full screen, got %v", got)
	}
	ms.Settings.SidebarVisible = true
	defer func() { ms.Settings.SidebarVisible = false }()
	if got := d.ContentRect(); got.Min.X != ms.Settings.SidebarWidth {
		t.Fatalf("expected sidebar offset, got %v", got)
	}
}

func TestReloadCadence(t *testing.T) {
	d, _, _ := newDash(t)
	reloads := 0
	d.Reload = func() { reloads++ }
	d.ReloadEvery = 3
	for range 7 {
		d.Step()
	}
	if reloads != 2 {
		t.Fatalf("expected 2 reloads, got %d", reloads)
	}
}

func sendDeviceState(t *testing.T, q *queue, started bool) {
	t.Helper()
	pub := cereal.NewPublisherToSink(q, cereal.DeviceStateCreator)
	msg, ds, err := pub.NewMessage(true)
	if err != nil {
		t.Fatal(err)
	}
	ds.SetStarted(started)
	if err := pub.Send(msg); err != nil {
		t.Fatal(err)
	}
}

func TestDeviceStateStartsDrive(t *testing.T) {
	d, queues, f := newDash(t)

	// carState from before ignition, the device is not started yet
	sendCarState(t, queues["carState"], 10)
	sendDeviceState(t, queues["deviceState"], false)
	d.Step()
	if d.Scene.Started {
		t.Fatal("deviceState should win over a live carState")
	}
	if f.panel != 1 {
		t.Fatalf("expected a panel frame, got %+v", f)
	}

	sendDeviceState(t, queues["deviceState"], true)
	d.Step()
	if !d.Scene.Started || d.Scene.StartedFrame != 2 {
		t.Fatalf("expected start on frame 2, got %+v", d.Scene)
	}
	if d.Hud.Speed != 0 || d.Hud.SetSpeed != ms.SET_SPEED_NA {
		t.Fatalf("carState from before the start should be ignored, got speed %f set %f", d.Hud.Speed, d.Hud.SetSpeed)
	}

	sendCarState(t, queues["carState"], 10)
	d.Step()
	if d.Hud.SpeedText() != "22" {
		t.Fatalf("expected 22 mph once carState is fresh, got %s", d.Hud.SpeedText())
	}
}
