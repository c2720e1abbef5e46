package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	ms "pfeifer.dev/dashd/settings"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Pick an action from a menu",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive(ctx)
					return nil
				},
			},
			{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Watch the live dashboard values and edit settings of a running dashd",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					watch()
					return nil
				},
			},
			{
				Name:    "battery",
				Aliases: []string{"b"},
				Usage:   "Query the battery management system once and print the result",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "interface",
						Usage: "The socketcan interface the BMS is reachable on",
						Value: "",
					},
					&cli.UintFlag{
						Name:  "addr",
						Usage: "The request address of the BMS",
						Value: 0,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ms.Settings.Load()
					if iface := cmd.String("interface"); iface != "" {
						ms.Settings.CanInterface = iface
					}
					if addr := cmd.Uint("addr"); addr != 0 {
						ms.Settings.BatteryAddr = uint32(addr)
					}
					return queryBattery(ctx, os.Stdout)
				},
			},
			{
				Name:    "render",
				Aliases: []string{"r"},
				Usage:   "Render one HUD and one vehicle info frame from the live services",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Category: "Outputs",
						Name:     "hud-output",
						Usage:    "Where to write the HUD frame",
						Value:    "./hud.png",
					},
					&cli.StringFlag{
						Category: "Outputs",
						Name:     "panel-output",
						Usage:    "Where to write the vehicle info frame",
						Value:    "./panel.png",
					},
					&cli.DurationFlag{
						Name:  "wait",
						Usage: "How long to collect messages before rendering",
						Value: ms.LOOP_DELAY * 20,
					},
					&cli.BoolFlag{
						Name:  "sidebar",
						Usage: "Render the narrowed sidebar layout of the HUD",
						Value: false,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ms.Settings.Load()
					return render(ctx, renderOptions{
						HudOutput:   cmd.String("hud-output"),
						PanelOutput: cmd.String("panel-output"),
						Wait:        cmd.Duration("wait"),
						Sidebar:     cmd.Bool("sidebar"),
					})
				},
			},
		},
		Name:  "Dashd",
		Usage: "Start an instance of dashd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
