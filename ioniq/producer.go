// Package ioniq publishes the ioniq telemetry event: battery state from the
// BMS, energy counters, altitude and sun times.
package ioniq

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/dashd/battery"
	"pfeifer.dev/dashd/cereal"
	"pfeifer.dev/dashd/cereal/log"
	"pfeifer.dev/dashd/params"
	"pfeifer.dev/dashd/sun"
	"pfeifer.dev/dashd/utils"
)

// only persist the since charging counter after it moved this many Wh
const ENERGY_SAVE_STEP = 10.0

type BatteryReader interface {
	Read(ctx context.Context) (battery.Reading, error)
}

type GpsSource interface {
	Read() (log.GpsLocationData, bool)
}

type Producer struct {
	Battery BatteryReader
	Gps     GpsSource
	Pub     *cereal.Publisher[log.Ioniq]
	Now     func() time.Time

	Location Location
	Energy   Energy

	tracker   utils.UpdateTracker
	started   bool
	lastSaved float64
}

func NewProducer(bat BatteryReader, gps GpsSource, pub *cereal.Publisher[log.Ioniq]) *Producer {
	p := &Producer{Battery: bat, Gps: gps, Pub: pub, Now: time.Now}

	loc, err := LastKnownLocation()
	utils.Logde(err)
	if err == nil {
		p.Location = loc
	}

	p.Energy.SinceCharging = loadEnergySinceCharging()
	p.lastSaved = p.Energy.SinceCharging
	return p
}

func loadEnergySinceCharging() float64 {
	data, err := params.GetParam(params.ENERGY_SINCE_CHARGING)
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read energy since charging"))
		return 0
	}
	wh, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		utils.Logwe(errors.Wrap(err, "could not parse energy since charging"))
		return 0
	}
	if math.IsNaN(wh) || math.IsInf(wh, 0) {
		slog.Warn("ignoring invalid energy since charging", "value", wh)
		return 0
	}
	return wh
}

func (p *Producer) saveEnergySinceCharging(force bool) {
	if !force && math.Abs(p.Energy.SinceCharging-p.lastSaved) < ENERGY_SAVE_STEP {
		return
	}
	err := params.PutParam(params.ENERGY_SINCE_CHARGING, []byte(fmt.Sprintf("%.1f", p.Energy.SinceCharging)))
	if err != nil {
		utils.Logwe(errors.Wrap(err, "could not save energy since charging"))
		return
	}
	p.lastSaved = p.Energy.SinceCharging
}

func (p *Producer) updateLocation() {
	if p.Gps == nil {
		return
	}
	for {
		gps, ok := p.Gps.Read()
		if !ok {
			return
		}
		if loc, ok := locationFromGps(gps); ok {
			p.Location = loc
		}
	}
}

// Step runs one query and publish cycle.
func (p *Producer) Step(ctx context.Context) error {
	p.updateLocation()

	reading, err := p.Battery.Read(ctx)
	if err != nil {
		return errors.Wrap(err, "could not read battery")
	}

	now := p.Now()
	dt := 0.0
	if p.started {
		typical := p.tracker.DiffMA.Estimate
		dt = p.tracker.UpdateAt(now)
		if dt > MAX_INTEGRATION_GAP.Seconds() {
			// the car slept, the gap says nothing about the query cadence
			p.tracker.DiffMA.Reset()
		} else if typical > 0 && dt > 2*typical {
			slog.Debug("battery readings missed", "gap", dt, "typical", typical)
		}
	} else {
		p.tracker.InitAt(10, now)
		p.started = true
	}

	watts := float64(reading.Voltage) * float64(reading.Current)
	reset := p.Energy.Add(watts, dt, reading.ChargingType)
	if reset {
		slog.Info("charging ended, reset energy since charging")
	}
	p.saveEnergySinceCharging(reset)

	return p.publish(reading, now)
}

func (p *Producer) publish(r battery.Reading, now time.Time) error {
	msg, ioniq, err := p.Pub.NewMessage(true)
	if err != nil {
		return err
	}

	ioniq.SetSoc(r.Soc)
	ioniq.SetSocDisplay(r.SocDisplay)
	ioniq.SetVoltage(r.Voltage)
	ioniq.SetCurrent(r.Current)
	ioniq.SetAvailableChargePower(r.AvailableChargePower)
	ioniq.SetAvailableDischargePower(r.AvailableDischargePower)
	ioniq.SetMaximumChargePower(r.MaximumChargePower)
	ioniq.SetMaximumChargeCurrent(r.MaximumChargeCurrent)
	ioniq.SetChargingType(r.ChargingType)
	ioniq.SetMinBatteryTemp(r.MinBatteryTemp)
	ioniq.SetMaxBatteryTemp(r.MaxBatteryTemp)
	ioniq.SetBatteryInletTemp(r.BatteryInletTemp)
	ioniq.SetHeaterTemp(r.HeaterTemp)
	ioniq.SetAcInletTemp(r.AcInletTemp)
	ioniq.SetDcInlet1Temp(r.DcInlet1Temp)
	ioniq.SetDcInlet2Temp(r.DcInlet2Temp)

	ioniq.SetEnergySinceIgnition(float32(p.Energy.SinceIgnition))
	ioniq.SetEnergySinceCharging(float32(p.Energy.SinceCharging))
	ioniq.SetAltitudeMsl(p.Location.Altitude)

	rise, set := sun.Unknown, sun.Unknown
	if p.Location.Valid {
		rise, set = sun.Times(p.Location.Latitude, p.Location.Longitude, now)
	}
	if err := ioniq.SetSunrise(rise); err != nil {
		return errors.Wrap(err, "could not set sunrise")
	}
	if err := ioniq.SetSunset(set); err != nil {
		return errors.Wrap(err, "could not set sunset")
	}

	logOutput(ioniq)
	return p.Pub.Send(msg)
}

func logOutput(ioniq log.Ioniq) {
	sunrise, _ := ioniq.Sunrise()
	sunset, _ := ioniq.Sunset()
	slog.Debug("ioniq",
		"soc", ioniq.SocDisplay(),
		"voltage", ioniq.Voltage(),
		"current", ioniq.Current(),
		"chargingType", ioniq.ChargingType().String(),
		"energySinceIgnition", ioniq.EnergySinceIgnition(),
		"energySinceCharging", ioniq.EnergySinceCharging(),
		"altitude", ioniq.AltitudeMsl(),
		"sunrise", sunrise,
		"sunset", sunset,
	)
}

// Run publishes every period until ctx is cancelled. Failed cycles are logged
// and skipped.
func (p *Producer) Run(ctx context.Context, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	defer p.saveEnergySinceCharging(true)

	for {
		utils.Logwe(p.Step(ctx))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
