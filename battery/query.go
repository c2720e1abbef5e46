// Package battery reads the high voltage battery state from the BMS with UDS
// ReadDataByIdentifier requests over ISO-TP.
package battery

import (
	"context"
	"encoding/binary"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/dashd/cereal/log"
)

const (
	BMS_ADDR = 0x7E4

	PID1 = 0x0101
	PID2 = 0x0105

	READ_DATA_BY_IDENTIFIER = 0x22
	NEGATIVE_RESPONSE       = 0x7F
	RESPONSE_PENDING        = 0x78
)

// Reading is one decoded pass over both BMS pids.
type Reading struct {
	Soc                     float32
	SocDisplay              float32
	Voltage                 float32
	Current                 float32
	AvailableChargePower    float32
	AvailableDischargePower float32
	MaximumChargeCurrent    float32
	MaximumChargePower      float32
	ChargingType            log.Ioniq_ChargingType
	MinBatteryTemp          int8
	MaxBatteryTemp          int8
	BatteryInletTemp        int8
	HeaterTemp              int8
	AcInletTemp             int8
	DcInlet1Temp            int8
	DcInlet2Temp            int8
}

type Client struct {
	Bus     Bus
	Addr    uint32
	Timeout time.Duration
	Retries int
}

func NewClient(bus Bus) *Client {
	return &Client{Bus: bus, Addr: BMS_ADDR, Timeout: 100 * time.Millisecond, Retries: 10}
}

func request(pid uint16) []byte {
	return []byte{READ_DATA_BY_IDENTIFIER, byte(pid >> 8), byte(pid)}
}

func (c *Client) readOnce(ctx context.Context, pid uint16) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	sess := openSession(c.Bus, c.Addr)
	defer sess.Close()

	if err := sess.send(request(pid)); err != nil {
		return nil, err
	}
	for {
		resp, err := sess.recv(ctx)
		if err != nil {
			return nil, err
		}
		if len(resp) >= 3 && resp[0] == NEGATIVE_RESPONSE {
			if resp[2] == RESPONSE_PENDING {
				continue
			}
			return nil, errors.Errorf("negative response 0x%02x to pid 0x%04x", resp[2], pid)
		}
		want := request(pid)
		want[0] += 0x40
		if len(resp) < 3 || resp[0] != want[0] || resp[1] != want[1] || resp[2] != want[2] {
			return nil, errors.Errorf("unexpected response header % x to pid 0x%04x", resp[:min(len(resp), 3)], pid)
		}
		return resp[3:], nil
	}
}

// ReadPid queries pid, retrying on failure, and returns the response data
// without the UDS header.
func (c *Client) ReadPid(ctx context.Context, pid uint16) ([]byte, error) {
	for i := range c.Retries {
		data, err := c.readOnce(ctx, pid)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Debug("battery query exception", "pid", pid, "error", err)
		slog.Error("battery query retry", "attempt", i+1, "pid", pid)
	}
	slog.Error("battery query failed", "pid", pid)
	return nil, errors.Errorf("battery query for pid 0x%04x failed after %d tries", pid, c.Retries)
}

func (c *Client) Read(ctx context.Context) (Reading, error) {
	bms, err := c.ReadPid(ctx, PID1)
	if err != nil {
		return Reading{}, err
	}
	extra, err := c.ReadPid(ctx, PID2)
	if err != nil {
		return Reading{}, err
	}
	return Decode(bms, extra)
}

const (
	pid1Len = 40
	pid2Len = 35

	statusCharging = 0x80
	statusAc       = 0x20
	statusDc       = 0x40
)

func u16(b []byte, i int) float32 {
	return float32(binary.BigEndian.Uint16(b[i:]))
}

// Decode maps the 0x0101 and 0x0105 responses to a Reading.
func Decode(bms, extra []byte) (Reading, error) {
	if len(bms) < pid1Len {
		return Reading{}, errors.Errorf("pid 0x0101 response too short: %d bytes", len(bms))
	}
	if len(extra) < pid2Len {
		return Reading{}, errors.Errorf("pid 0x0105 response too short: %d bytes", len(extra))
	}

	r := Reading{
		Soc:                     float32(bms[4]) / 2,
		AvailableChargePower:    u16(bms, 5) / 100,
		AvailableDischargePower: u16(bms, 7) / 100,
		Current:                 float32(int16(binary.BigEndian.Uint16(bms[10:]))) / 10,
		Voltage:                 u16(bms, 12) / 10,
		MaxBatteryTemp:          int8(bms[14]),
		MinBatteryTemp:          int8(bms[15]),
		BatteryInletTemp:        int8(bms[21]),

		HeaterTemp:   int8(extra[25]),
		AcInletTemp:  int8(extra[26]),
		DcInlet1Temp: int8(extra[27]),
		DcInlet2Temp: int8(extra[28]),
		SocDisplay:   float32(extra[31]) / 2,

		MaximumChargeCurrent: u16(extra, 32) / 10,
	}
	r.MaximumChargePower = r.MaximumChargeCurrent * r.Voltage / 1000

	status := bms[9]
	switch {
	case status&statusCharging == 0:
		r.ChargingType = log.Ioniq_ChargingType_notCharging
	case status&statusDc != 0:
		r.ChargingType = log.Ioniq_ChargingType_dc
	case status&statusAc != 0:
		r.ChargingType = log.Ioniq_ChargingType_ac
	default:
		r.ChargingType = log.Ioniq_ChargingType_other
	}
	return r, nil
}
