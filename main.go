package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"pfeifer.dev/dashd/battery"
	"pfeifer.dev/dashd/cereal"
	"pfeifer.dev/dashd/cli"
	"pfeifer.dev/dashd/ioniq"
	"pfeifer.dev/dashd/params"
	ms "pfeifer.dev/dashd/settings"
	"pfeifer.dev/dashd/ui"
)

func main() {
	cli.Handle()
	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(5)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("dashd stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return produceIoniq(ctx)
	})
	g.Go(func() error {
		dash := ui.NewDash(cereal.NewSubMaster(ui.SERVICES...))
		return dash.Run(ctx, ms.Settings.RefreshPeriod())
	})

	return g.Wait()
}

// produceIoniq publishes battery telemetry. Without a CAN interface the
// dashboard still runs on whatever other publishers provide.
func produceIoniq(ctx context.Context) error {
	bus, err := battery.OpenBus(ms.Settings.CanInterface)
	if err != nil {
		slog.Warn("battery telemetry disabled", "error", err)
		return nil
	}
	defer bus.Disconnect()

	pub := cereal.NewPublisher("ioniq", cereal.IoniqCreator)
	gps := cereal.NewSubscriber("gpsLocation", cereal.GpsLocationReader, true)
	producer := ioniq.NewProducer(battery.NewClientWithSettings(bus, &ms.Settings), &gps, &pub)

	return producer.Run(ctx, ms.Settings.BatteryPeriod())
}
