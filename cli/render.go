package cli

import (
	"context"
	"image/color"
	"time"

	"pfeifer.dev/dashd/cereal"
	"pfeifer.dev/dashd/display"
	ms "pfeifer.dev/dashd/settings"
	"pfeifer.dev/dashd/ui"
)

type renderOptions struct {
	HudOutput   string
	PanelOutput string
	Wait        time.Duration
	Sidebar     bool
}

func render(ctx context.Context, opts renderOptions) error {
	return renderFrom(ctx, cereal.NewSubMaster(ui.SERVICES...), opts)
}

// renderFrom collects messages for opts.Wait and then writes both widgets,
// regardless of whether the car is started.
func renderFrom(ctx context.Context, sm *cereal.SubMaster, opts renderOptions) error {
	d := ui.NewDash(sm)
	d.Reload = nil
	d.HudOut = display.PNGPresenter{Path: opts.HudOutput}
	d.PanelOut = display.PNGPresenter{Path: opts.PanelOutput}

	deadline := time.Now().Add(opts.Wait)
	for {
		d.Sm.Update()
		d.Scene = ui.NextScene(d.Sm, d.Scene)
		d.Hud.Update(d.Sm, d.Scene)
		if d.Sm.Updated("ioniq") {
			d.Panel.Update(d.Sm.Ioniq())
		}
		if !time.Now().Before(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(ms.LOOP_DELAY):
		}
	}

	full := d.Surface.Bounds()
	rect := full
	if opts.Sidebar {
		rect.Min.X += ms.Settings.SidebarWidth
	}
	d.Surface.Clear(color.Transparent)
	d.Hud.Draw(d.Surface, rect)
	if err := d.HudOut.Present(d.Surface.Img); err != nil {
		return err
	}

	d.Surface.Clear(color.Transparent)
	d.Panel.Render(d.Surface, full.Inset(ui.PANEL_MARGIN))
	return d.PanelOut.Present(d.Surface.Img)
}
