package sun

import (
	"testing"
	"time"
)

func minutes(t *testing.T, hhmm string) int {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		t.Fatalf("not a HH:MM time: %q", hhmm)
	}
	return parsed.Hour()*60 + parsed.Minute()
}

func TestTimesColumbusEquinox(t *testing.T) {
	day := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	rise, set := Times(39.96, -83.0, day)

	// roughly 11:35 and 23:45 UTC
	if m := minutes(t, rise); m < 11*60 || m > 12*60 {
		t.Errorf("sunrise %s out of range", rise)
	}
	if m := minutes(t, set); m < 23*60 || m > 24*60 {
		t.Errorf("sunset %s out of range", set)
	}
}

func TestTimesUsesDayLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	day := time.Date(2024, time.March, 20, 12, 0, 0, 0, loc)
	rise, _ := Times(39.96, -83.0, day)
	if m := minutes(t, rise); m < 6*60 || m > 7*60+30 {
		t.Errorf("local sunrise %s out of range", rise)
	}
}

func TestTimesPolarNight(t *testing.T) {
	day := time.Date(2024, time.December, 21, 12, 0, 0, 0, time.UTC)
	rise, set := Times(85, 0, day)
	if rise != Unknown || set != Unknown {
		t.Fatalf("expected no sunrise/sunset, got %s %s", rise, set)
	}
}
