package hud

import (
	"image"

	"pfeifer.dev/dashd/display"
)

const UI_HEADER_HEIGHT = 420

var (
	labelFont  = display.NewFont(60)
	valueFont  = display.NewFontWeight(70, display.Bold)
	detailFont = display.NewFontWeight(60, display.Bold)
)

// LatchWidth fixes the full screen width before the first Draw, for screens
// that start with the sidebar open.
func (h *State) LatchWidth(width int) {
	if h.fullScreenWidth == 0 {
		h.fullScreenWidth = width
	}
}

// Draw paints the HUD. The first call latches the full screen width; later
// frames narrower than that are drawn with the sidebar layout.
func (h *State) Draw(p display.Painter, rect image.Rectangle) {
	fadeStart := rect.Min.Y + UI_HEADER_HEIGHT - UI_HEADER_HEIGHT*2/5
	p.FillVerticalGradient(image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, fadeStart), display.Black(115), display.Black(115))
	p.FillVerticalGradient(image.Rect(rect.Min.X, fadeStart, rect.Max.X, rect.Min.Y+UI_HEADER_HEIGHT), display.Black(115), display.Black(0))

	h.LatchWidth(rect.Dx())

	if h.IsCruiseAvailable {
		h.drawSetSpeed(p, rect)
	}
	h.drawCurrentSpeed(p, rect)

	if rect.Dx() == h.fullScreenWidth {
		h.drawAltitude(p, rect)
		h.drawPower(p, rect)
		h.drawEnergy(p, rect)
		if h.MaxRequestedChargeCurrent > 0 {
			h.drawRequestedCurrent(p, rect)
			h.drawRequestedPower(p, rect)
		}
	} else {
		h.drawChargePower(p, rect)
		h.drawDischargePower(p, rect)
		h.drawBatteryTemps(p, rect)
		h.drawOtherTemps(p, rect)
		h.drawSinceChargeEnergy(p, rect)
		h.drawSuntimes(p, rect)
	}
}

func (h *State) maxColor() (maxColor, setSpeedColor display.Color) {
	maxColor = display.RGB(0xa6, 0xa6, 0xa6)
	setSpeedColor = display.RGB(0x72, 0x72, 0x72)
	if h.IsCruiseSet {
		setSpeedColor = display.White(255)
		switch h.Status {
		case STATUS_DISENGAGED:
			maxColor = display.White(255)
		case STATUS_OVERRIDE:
			maxColor = display.RGB(0x91, 0x9b, 0x95)
		default:
			maxColor = display.RGB(0x80, 0xd8, 0xa6)
		}
	}
	return maxColor, setSpeedColor
}

// SetSpeedRect is the box around the set speed, a little wider in metric to
// fit three digits.
func (h *State) SetSpeedRect(rect image.Rectangle) image.Rectangle {
	const defaultWidth, height = 172, 204
	width := defaultWidth
	if h.IsMetric {
		width = 200
	}
	x := rect.Min.X + 60 + (defaultWidth-width)/2
	y := rect.Min.Y + 45
	return image.Rect(x, y, x+width, y+height)
}

func (h *State) drawSetSpeed(p display.Painter, rect image.Rectangle) {
	box := h.SetSpeedRect(rect)
	p.FillRoundedRect(box, 32, display.Black(166), display.White(75), 6)

	maxColor, setSpeedColor := h.maxColor()

	p.TextInRect(box.Add(image.Pt(0, 27)), display.AlignTopCenter, "MAX", display.NewFontWeight(40, display.DemiBold), maxColor)
	p.TextInRect(box.Add(image.Pt(0, 77)), display.AlignTopCenter, h.SetSpeedText(), display.NewFontWeight(90, display.Bold), setSpeedColor)
}

func (h *State) drawCurrentSpeed(p display.Painter, rect image.Rectangle) {
	x := rect.Min.X + rect.Dx()/2
	p.Text(x, rect.Min.Y+210, h.SpeedText(), display.NewFontWeight(176, display.Bold), display.White(255))
	p.Text(x, rect.Min.Y+290, h.SpeedUnit(), display.NewFont(66), display.White(200))
}

// field draws a dimmed label with its value 75px below, both measured up
// from the bottom left corner of rect.
func field(p display.Painter, rect image.Rectangle, dx, labelDy int, label, value string) {
	x := rect.Min.X + dx
	bottom := rect.Max.Y - 1
	p.Text(x, bottom-labelDy, label, labelFont, display.White(200))
	p.Text(x, bottom-labelDy+75, value, valueFont, display.White(255))
}

func (h *State) drawPower(p display.Painter, rect image.Rectangle) {
	field(p, rect, 175, 445, "Power", h.PowerText())
}

func (h *State) drawEnergy(p display.Painter, rect image.Rectangle) {
	field(p, rect, 175, 285, "Energy", h.EnergyText())
}

func (h *State) drawRequestedPower(p display.Painter, rect image.Rectangle) {
	field(p, rect, 650, 445, "Requested Power", h.RequestedPowerText())
}

func (h *State) drawRequestedCurrent(p display.Painter, rect image.Rectangle) {
	field(p, rect, 650, 285, "Amps", h.RequestedCurrentText())
}

func (h *State) drawAltitude(p display.Painter, rect image.Rectangle) {
	field(p, rect, 175, 125, "Altitude", h.AltitudeText())
}

func (h *State) drawChargePower(p display.Painter, rect image.Rectangle) {
	power, percent := h.ChargePowerText(h.ChargePowerRef)
	field(p, rect, 175, 700, "Charge", power)
	p.Text(rect.Min.X+175, rect.Max.Y-1-565, percent, detailFont, display.White(255))
}

func (h *State) drawDischargePower(p display.Painter, rect image.Rectangle) {
	power, percent := h.DischargePowerText(h.ChargePowerRef)
	field(p, rect, 175, 490, "Discharge", power)
	p.Text(rect.Min.X+175, rect.Max.Y-1-355, percent, detailFont, display.White(255))
}

func (h *State) drawBatteryTemps(p display.Painter, rect image.Rectangle) {
	field(p, rect, 175, 275, "Battery", h.BatteryTempsText())
}

func (h *State) drawOtherTemps(p display.Painter, rect image.Rectangle) {
	field(p, rect, 175, 125, "Heater/Inlet", h.OtherTempsText())
}

func (h *State) drawSinceChargeEnergy(p display.Painter, rect image.Rectangle) {
	field(p, rect, 660, 275, "Since Last Charge", h.SinceChargeEnergyText())
}

func (h *State) drawSuntimes(p display.Painter, rect image.Rectangle) {
	field(p, rect, 525, 125, "Sunrise", h.SunriseText())
	field(p, rect, 800, 125, "Sunset", h.SunsetText())
}
