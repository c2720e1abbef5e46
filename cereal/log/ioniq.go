package log

import (
	"math"

	capnp "capnproto.org/go/capnp/v3"
)

type Ioniq capnp.Struct

type Ioniq_ChargingType uint16

const (
	Ioniq_ChargingType_notCharging Ioniq_ChargingType = 0
	Ioniq_ChargingType_ac          Ioniq_ChargingType = 1
	Ioniq_ChargingType_dc          Ioniq_ChargingType = 2
	Ioniq_ChargingType_other       Ioniq_ChargingType = 3
)

func (c Ioniq_ChargingType) String() string {
	switch c {
	case Ioniq_ChargingType_notCharging:
		return "notCharging"
	case Ioniq_ChargingType_ac:
		return "ac"
	case Ioniq_ChargingType_dc:
		return "dc"
	case Ioniq_ChargingType_other:
		return "other"
	}
	return ""
}

func (c Ioniq_ChargingType) Charging() bool {
	return c != Ioniq_ChargingType_notCharging
}

var ioniqSize = capnp.ObjectSize{DataSize: 64, PointerCount: 2}

func NewIoniq(s *capnp.Segment) (Ioniq, error) {
	st, err := capnp.NewStruct(s, ioniqSize)
	return Ioniq(st), err
}

func (s Ioniq) SocDisplay() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s Ioniq) SetSocDisplay(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s Ioniq) Soc() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s Ioniq) SetSoc(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s Ioniq) Voltage() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s Ioniq) SetVoltage(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s Ioniq) Current() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s Ioniq) SetCurrent(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s Ioniq) AvailableChargePower() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s Ioniq) SetAvailableChargePower(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s Ioniq) AvailableDischargePower() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s Ioniq) SetAvailableDischargePower(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s Ioniq) MaximumChargePower() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s Ioniq) SetMaximumChargePower(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s Ioniq) MaximumChargeCurrent() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(28))
}

func (s Ioniq) SetMaximumChargeCurrent(v float32) {
	capnp.Struct(s).SetUint32(28, math.Float32bits(v))
}

func (s Ioniq) EnergySinceIgnition() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(32))
}

func (s Ioniq) SetEnergySinceIgnition(v float32) {
	capnp.Struct(s).SetUint32(32, math.Float32bits(v))
}

func (s Ioniq) EnergySinceCharging() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(36))
}

func (s Ioniq) SetEnergySinceCharging(v float32) {
	capnp.Struct(s).SetUint32(36, math.Float32bits(v))
}

func (s Ioniq) AltitudeMsl() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(40))
}

func (s Ioniq) SetAltitudeMsl(v float64) {
	capnp.Struct(s).SetUint64(40, math.Float64bits(v))
}

func (s Ioniq) ChargingType() Ioniq_ChargingType {
	return Ioniq_ChargingType(capnp.Struct(s).Uint16(48))
}

func (s Ioniq) SetChargingType(v Ioniq_ChargingType) {
	capnp.Struct(s).SetUint16(48, uint16(v))
}

func (s Ioniq) MinBatteryTemp() int8 {
	return int8(capnp.Struct(s).Uint8(50))
}

func (s Ioniq) SetMinBatteryTemp(v int8) {
	capnp.Struct(s).SetUint8(50, uint8(v))
}

func (s Ioniq) MaxBatteryTemp() int8 {
	return int8(capnp.Struct(s).Uint8(51))
}

func (s Ioniq) SetMaxBatteryTemp(v int8) {
	capnp.Struct(s).SetUint8(51, uint8(v))
}

func (s Ioniq) BatteryInletTemp() int8 {
	return int8(capnp.Struct(s).Uint8(52))
}

func (s Ioniq) SetBatteryInletTemp(v int8) {
	capnp.Struct(s).SetUint8(52, uint8(v))
}

func (s Ioniq) HeaterTemp() int8 {
	return int8(capnp.Struct(s).Uint8(53))
}

func (s Ioniq) SetHeaterTemp(v int8) {
	capnp.Struct(s).SetUint8(53, uint8(v))
}

func (s Ioniq) AcInletTemp() int8 {
	return int8(capnp.Struct(s).Uint8(54))
}

func (s Ioniq) SetAcInletTemp(v int8) {
	capnp.Struct(s).SetUint8(54, uint8(v))
}

func (s Ioniq) DcInlet1Temp() int8 {
	return int8(capnp.Struct(s).Uint8(55))
}

func (s Ioniq) SetDcInlet1Temp(v int8) {
	capnp.Struct(s).SetUint8(55, uint8(v))
}

func (s Ioniq) DcInlet2Temp() int8 {
	return int8(capnp.Struct(s).Uint8(56))
}

func (s Ioniq) SetDcInlet2Temp(v int8) {
	capnp.Struct(s).SetUint8(56, uint8(v))
}

func (s Ioniq) Sunrise() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s Ioniq) SetSunrise(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s Ioniq) Sunset() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s Ioniq) SetSunset(v string) error {
	return capnp.Struct(s).SetText(1, v)
}
