package settings

import (
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/dashd/params"
	"pfeifer.dev/dashd/utils"
)

var (
	Settings = DashSettings{}
)

type DashSettings struct {
	LogLevel            string  `json:"log_level"`
	IsMetric            bool    `json:"is_metric"`
	ChargePowerRef      float32 `json:"charge_power_ref"`
	RefreshHz           int     `json:"refresh_hz"`
	CanInterface        string  `json:"can_interface"`
	BatteryAddr         uint32  `json:"battery_addr"`
	BatteryQueryTimeout float32 `json:"battery_query_timeout"`
	BatteryQueryRetries int     `json:"battery_query_retries"`
	BatteryQueryPeriod  float32 `json:"battery_query_period"`
	HudOutput           string  `json:"hud_output"`
	PanelOutput         string  `json:"panel_output"`
	ScreenWidth         int     `json:"screen_width"`
	ScreenHeight        int     `json:"screen_height"`
	SidebarWidth        int     `json:"sidebar_width"`
	SidebarVisible      bool    `json:"sidebar_visible"`
}

func (s *DashSettings) Default() {
	s.LogLevel = "error"
	s.IsMetric = false
	s.ChargePowerRef = CHARGE_POWER_REF
	s.RefreshHz = 20
	s.CanInterface = "can0"
	s.BatteryAddr = 0x7E4
	s.BatteryQueryTimeout = 0.1
	s.BatteryQueryRetries = 10
	s.BatteryQueryPeriod = 5
	s.HudOutput = "/dev/shm/dashd_hud.png"
	s.PanelOutput = "/dev/shm/dashd_panel.png"
	s.ScreenWidth = 2160
	s.ScreenHeight = 1080
	s.SidebarWidth = 300
	s.SidebarVisible = false
}

func (s *DashSettings) RefreshPeriod() time.Duration {
	if s.RefreshHz <= 0 {
		return LOOP_DELAY
	}
	return time.Second / time.Duration(s.RefreshHz)
}

// seconds are stored as float32, round to whole milliseconds so 0.1 reads as
// exactly 100ms
func secondsDuration(seconds float32) time.Duration {
	return time.Duration(math.Round(float64(seconds)*1000)) * time.Millisecond
}

func (s *DashSettings) BatteryTimeout() time.Duration {
	return secondsDuration(s.BatteryQueryTimeout)
}

func (s *DashSettings) BatteryPeriod() time.Duration {
	if s.BatteryQueryPeriod <= 0 {
		return IONIQ_DELAY
	}
	return secondsDuration(s.BatteryQueryPeriod)
}

func (s *DashSettings) Unmarshal(data []byte) error {
	return errors.Wrap(json.Unmarshal(data, s), "could not unmarshal settings")
}

func (s *DashSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.DASH_SETTINGS)
	if err != nil {
		utils.Loge(errors.Wrap(err, "could not read settings param"))
		return false
	}

	err = s.Unmarshal(data)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.loadIsMetric()
	s.setLogLevel()

	return true
}

// openpilot keeps the unit preference in its own param, which wins over the
// copy in our settings.
func (s *DashSettings) loadIsMetric() {
	data, err := params.GetParam(params.IS_METRIC)
	if err != nil {
		return
	}
	s.IsMetric = params.ParseBool(data)
}

func (s *DashSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *DashSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.DASH_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *DashSettings) setLogLevel() {
	slog.SetLogLoggerLevel(ParseLogLevel(s.LogLevel))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
