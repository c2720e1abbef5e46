package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	ms "pfeifer.dev/dashd/settings"
)

func interactive(ctx context.Context) {
	prompt := promptui.Select{
		Label: "Select Action",
		Items: []string{"Watch", "Query Battery", "Render Frames"},
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	switch result {
	case "Watch":
		watch()
	case "Query Battery":
		ms.Settings.Load()
		if err := queryBattery(ctx, os.Stdout); err != nil {
			fmt.Printf("Battery query failed %v\n", err)
		}
	case "Render Frames":
		ms.Settings.Load()
		err := render(ctx, renderOptions{HudOutput: "./hud.png", PanelOutput: "./panel.png", Wait: ms.LOOP_DELAY * 20})
		if err != nil {
			fmt.Printf("Render failed %v\n", err)
		}
	}

}
