// Package ui drives the dashboard: it keeps the shared scene in step with the
// subscribed services and presents either the onroad HUD or the offroad
// vehicle info panel every frame.
package ui

import (
	"context"
	"image"
	"image/color"
	"time"

	"pfeifer.dev/dashd/cereal"
	"pfeifer.dev/dashd/display"
	"pfeifer.dev/dashd/hud"
	ms "pfeifer.dev/dashd/settings"
	"pfeifer.dev/dashd/utils"
	"pfeifer.dev/dashd/vehicleinfo"
)

var SERVICES = []string{"carState", "controlsState", "ioniq", "gpsLocation", "deviceState"}

// panel is inset from the screen edges like the offroad home layout
const PANEL_MARGIN = 50

type Dash struct {
	Sm       *cereal.SubMaster
	Scene    hud.Scene
	Hud      *hud.State
	Panel    vehicleinfo.Panel
	Surface  *display.Surface
	HudOut   display.Presenter
	PanelOut display.Presenter

	// how many frames between settings reloads, 0 disables reloading
	ReloadEvery uint64
	Reload      func()
}

func NewDash(sm *cereal.SubMaster) *Dash {
	d := &Dash{
		Sm:          sm,
		Hud:         hud.NewState(),
		Surface:     display.NewSurface(ms.Settings.ScreenWidth, ms.Settings.ScreenHeight),
		HudOut:      display.PNGPresenter{Path: ms.Settings.HudOutput},
		PanelOut:    display.PNGPresenter{Path: ms.Settings.PanelOutput},
		ReloadEvery: uint64(max(ms.Settings.RefreshHz, 1)),
		Reload:      func() { ms.Settings.Load() },
	}
	d.Hud.LatchWidth(ms.Settings.ScreenWidth)
	return d
}

// NextScene follows deviceState.started while a device state publisher is
// alive and falls back to carState liveness without one. StartedFrame is the
// frame of the false to true transition, carState received before it is
// stale for the HUD.
func NextScene(sm *cereal.SubMaster, prev hud.Scene) hud.Scene {
	scene := prev
	started := sm.Alive("carState")
	if sm.Alive("deviceState") {
		started = sm.DeviceState().Started()
	}
	if started && !prev.Started {
		scene.StartedFrame = sm.Frame
	}
	scene.Started = started
	scene.IsMetric = ms.Settings.IsMetric
	scene.Status = hud.StatusFromControls(sm.ControlsState().State())
	return scene
}

// Step polls every service once, updates the widgets and presents a frame.
func (d *Dash) Step() error {
	d.Sm.Update()
	if d.Reload != nil && d.ReloadEvery > 0 && d.Sm.Frame%d.ReloadEvery == 0 {
		d.Reload()
	}
	d.Scene = NextScene(d.Sm, d.Scene)

	if ms.Settings.ChargePowerRef > 0 {
		d.Hud.ChargePowerRef = ms.Settings.ChargePowerRef
	}
	d.Hud.Update(d.Sm, d.Scene)
	if d.Sm.Updated("ioniq") {
		d.Panel.Update(d.Sm.Ioniq())
	}
	return d.Render()
}

// ContentRect is the screen area not covered by the sidebar.
func (d *Dash) ContentRect() image.Rectangle {
	rect := d.Surface.Bounds()
	if ms.Settings.SidebarVisible {
		rect.Min.X += ms.Settings.SidebarWidth
	}
	return rect
}

func (d *Dash) Render() error {
	d.Surface.Clear(color.Transparent)
	rect := d.ContentRect()

	if d.Scene.Started {
		d.Hud.Draw(d.Surface, rect)
		return d.HudOut.Present(d.Surface.Img)
	}

	d.Panel.Render(d.Surface, rect.Inset(PANEL_MARGIN))
	return d.PanelOut.Present(d.Surface.Img)
}

// Run renders at period until ctx is cancelled.
func (d *Dash) Run(ctx context.Context, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		utils.Logwe(d.Step())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
