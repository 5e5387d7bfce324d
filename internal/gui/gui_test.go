package gui

import (
	"testing"
	"time"
)

func TestFixedStep(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewFixedStep(100 * time.Millisecond)

	tests := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{40 * time.Millisecond, false},
		{90 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{210 * time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := f.ShouldStep(start.Add(tt.at)); got != tt.want {
			t.Errorf("ShouldStep at %v = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestFixedStepNoBurst(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewFixedStep(10 * time.Millisecond)
	f.ShouldStep(start)

	late := start.Add(time.Second)
	if !f.ShouldStep(late) {
		t.Fatal("expected a step after a long stall")
	}
	fired := 0
	for i := 0; i < 5; i++ {
		if f.ShouldStep(late) {
			fired++
		}
	}
	if fired > 1 {
		t.Errorf("stall released %d extra steps, want at most 1", fired)
	}
}

func TestFixedStepZeroPeriod(t *testing.T) {
	f := NewFixedStep(0)
	now := time.Unix(0, 0)
	for i := 0; i < 3; i++ {
		if !f.ShouldStep(now) {
			t.Fatalf("call %d did not step", i)
		}
	}
}

func TestFixedStepReset(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewFixedStep(100 * time.Millisecond)
	f.ShouldStep(start)

	f.Reset(start.Add(5 * time.Second))
	if f.ShouldStep(start.Add(5*time.Second + 50*time.Millisecond)) {
		t.Error("paused time leaked into the accumulator")
	}
}
