package math

import "testing"

func TestMovingAverageSeedsWindow(t *testing.T) {
	ma := MovingAverage{}
	ma.Init(4)
	if got := ma.Update(2); got != 2 {
		t.Fatalf("first sample should seed the window, got %f", got)
	}
	if got := ma.Update(6); got != 3 {
		t.Fatalf("expected (2+2+2+6)/4 = 3, got %f", got)
	}
	if ma.Estimate != 3 {
		t.Fatalf("estimate should track the last result, got %f", ma.Estimate)
	}
}

func TestMovingAverageReset(t *testing.T) {
	ma := MovingAverage{}
	ma.Init(2)
	ma.Update(10)
	ma.Update(20)
	ma.Reset()
	if got := ma.Update(4); got != 4 {
		t.Fatalf("reset should reseed, got %f", got)
	}
}

func TestMovingAverageZeroValue(t *testing.T) {
	ma := MovingAverage{}
	if got := ma.Update(5); got != 5 {
		t.Fatalf("uninitialized average should still work, got %f", got)
	}
}
