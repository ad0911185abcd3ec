package core

import (
	"testing"
	"time"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected time.Duration
	}{
		{"60 fps", 60, time.Second / 60},
		{"30 fps", 30, time.Second / 30},
		{"zero falls back to 60", 0, time.Second / 60},
		{"negative falls back to 60", -10, time.Second / 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.rate}
			if got := cfg.FrameDuration(); got != tc.expected {
				t.Errorf("FrameDuration() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionPrimary.String() != "Primary" {
		t.Errorf("ActionPrimary.String() = %q", ActionPrimary.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
