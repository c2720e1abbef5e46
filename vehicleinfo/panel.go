// Package vehicleinfo builds the offroad vehicle info panel: state of charge,
// charging status, battery health and sun times.
package vehicleinfo

import (
	"fmt"
	"regexp"
	"strings"

	"pfeifer.dev/dashd/cereal/log"
)

const Title = "Ioniq 5"

type Panel struct {
	Primary   string
	Secondary string
	SunTimes  string
}

func f1(v float32) string {
	return fmt.Sprintf("%.1f", v)
}

// ChargingPower is the pack power while charging, positive into the pack.
func ChargingPower(ioniq log.Ioniq) float32 {
	return ioniq.Voltage() * ioniq.Current() / -1000
}

func primary(ioniq log.Ioniq) string {
	soc := fmt.Sprintf("<b>%s%%</b> - ", f1(ioniq.SocDisplay()))
	power := f1(ChargingPower(ioniq))
	switch ioniq.ChargingType() {
	case log.Ioniq_ChargingType_notCharging:
		return soc + "Not charging"
	case log.Ioniq_ChargingType_ac:
		return soc + fmt.Sprintf("AC slow charging<br />%s kW", power)
	case log.Ioniq_ChargingType_dc:
		return soc + fmt.Sprintf("DC fast charging<br />%s kW - (%s kW / %s A)",
			power, f1(ioniq.MaximumChargePower()), f1(ioniq.MaximumChargeCurrent()))
	default:
		return soc + fmt.Sprintf("Other charging<br />%s kW", power)
	}
}

func secondary(ioniq log.Ioniq) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Charge Power: <b>%s kW</b><br />", f1(ioniq.AvailableChargePower()))
	fmt.Fprintf(&b, "Discharge Power: <b>%s kW</b><br /><br />", f1(ioniq.AvailableDischargePower()))
	fmt.Fprintf(&b, "Battery Temp: <b>%d</b> - <b>%d °C</b><br />", ioniq.MinBatteryTemp(), ioniq.MaxBatteryTemp())
	fmt.Fprintf(&b, "Heater Temp: <b>%d °C</b> / Inlet Temp: <b>%d °C</b><br />", ioniq.HeaterTemp(), ioniq.BatteryInletTemp())
	fmt.Fprintf(&b, "AC Inlet: <b>%d °C</b> / DC Inlet: <b>%d</b> - <b>%d °C</b>", ioniq.AcInletTemp(), ioniq.DcInlet1Temp(), ioniq.DcInlet2Temp())
	return b.String()
}

func sunTimes(ioniq log.Ioniq) string {
	sunrise, _ := ioniq.Sunrise()
	sunset, _ := ioniq.Sunset()
	return fmt.Sprintf("Sunrise: <b>%s</b><br />Sunset: <b>%s</b>", sunrise, sunset)
}

func (p *Panel) Update(ioniq log.Ioniq) {
	p.Primary = primary(ioniq)
	p.Secondary = secondary(ioniq)
	p.SunTimes = sunTimes(ioniq)
}

var (
	lineBreak = regexp.MustCompile(`<br\s*/?>`)
	tag       = regexp.MustCompile(`<[^>]+>`)
)

// Lines splits rich text into display lines with markup removed. Consecutive
// breaks produce empty lines.
func Lines(rich string) []string {
	lines := lineBreak.Split(rich, -1)
	for i, l := range lines {
		lines[i] = tag.ReplaceAllString(l, "")
	}
	return lines
}

// Plain renders the whole panel as text for terminals and logs.
func (p *Panel) Plain() string {
	var b strings.Builder
	b.WriteString(Title)
	b.WriteString("\n\n")
	for _, block := range []string{p.Primary, p.Secondary, p.SunTimes} {
		b.WriteString(strings.Join(Lines(block), "\n"))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
