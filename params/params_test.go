package params

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempParams(t *testing.T) {
	t.Helper()
	old := ParamsPath
	ParamsPath = filepath.Join(t.TempDir(), "params", "d")
	EnsureParamDirectories()
	t.Cleanup(func() { ParamsPath = old })
}

func TestPutGetRemoveParam(t *testing.T) {
	useTempParams(t)

	if err := PutParam(IS_METRIC, []byte("1")); err != nil {
		t.Fatal(err)
	}
	data, err := GetParam(IS_METRIC)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1" {
		t.Fatalf("expected 1, got %q", data)
	}

	names, err := GetParams()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != IS_METRIC {
		t.Fatalf("expected only %s, got %v", IS_METRIC, names)
	}

	if err := RemoveParam(IS_METRIC); err != nil {
		t.Fatal(err)
	}
	if _, err := GetParam(IS_METRIC); !os.IsNotExist(err) {
		t.Fatalf("expected param to be gone, got %v", err)
	}
	if err := RemoveParam(IS_METRIC); err != nil {
		t.Fatalf("removing a missing param should not fail: %v", err)
	}
}

func TestPutParamOverwrites(t *testing.T) {
	useTempParams(t)

	for _, v := range []string{"first", "second"} {
		if err := PutParam(DASH_SETTINGS, []byte(v)); err != nil {
			t.Fatal(err)
		}
	}
	data, _ := GetParam(DASH_SETTINGS)
	if string(data) != "second" {
		t.Fatalf("expected second, got %q", data)
	}
	names, _ := GetParams()
	if len(names) != 1 {
		t.Fatalf("temp files should not be left behind: %v", names)
	}
}

func TestParseBool(t *testing.T) {
	cases := map[string]bool{
		"1":      true,
		"1\n":    true,
		"true":   true,
		"True":   true,
		"0":      false,
		"":       false,
		"banana": false,
	}
	for in, want := range cases {
		if got := ParseBool([]byte(in)); got != want {
			t.Errorf("ParseBool(%q) = %v, want %v", in, got, want)
		}
	}
}
