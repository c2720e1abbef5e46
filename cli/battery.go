package cli

import (
	"context"
	"fmt"
	"io"

	"pfeifer.dev/dashd/battery"
	ms "pfeifer.dev/dashd/settings"
)

func queryBattery(ctx context.Context, w io.Writer) error {
	bus, err := battery.OpenBus(ms.Settings.CanInterface)
	if err != nil {
		return err
	}
	defer bus.Disconnect()

	client := battery.NewClientWithSettings(bus, &ms.Settings)
	reading, err := client.Read(ctx)
	if err != nil {
		return err
	}
	printReading(w, reading)
	return nil
}

func printReading(w io.Writer, r battery.Reading) {
	fmt.Fprintf(w, "soc: %.1f %% (display %.1f %%)\n", r.Soc, r.SocDisplay)
	fmt.Fprintf(w, "voltage: %.1f V\ncurrent: %.1f A\n", r.Voltage, r.Current)
	fmt.Fprintf(w, "charging: %s\n", r.ChargingType)
	fmt.Fprintf(w, "available charge power: %.1f kW\navailable discharge power: %.1f kW\n", r.AvailableChargePower, r.AvailableDischargePower)
	fmt.Fprintf(w, "requested charge: %.1f kW / %.1f A\n", r.MaximumChargePower, r.MaximumChargeCurrent)
	fmt.Fprintf(w, "battery temp: %d - %d °C, inlet %d °C, heater %d °C\n", r.MinBatteryTemp, r.MaxBatteryTemp, r.BatteryInletTemp, r.HeaterTemp)
	fmt.Fprintf(w, "ac inlet: %d °C, dc inlet: %d - %d °C\n", r.AcInletTemp, r.DcInlet1Temp, r.DcInlet2Temp)
}
