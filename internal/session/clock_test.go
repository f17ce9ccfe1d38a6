package session

import (
	"testing"
	"time"
)

func TestElapsedSeconds(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		now   time.Time
		want  int
	}{
		{"zero span", base, base, 0},
		{"exact seconds", base, base.Add(125 * time.Second), 125},
		{"sub-second floor", base, base.Add(59*time.Second + 900*time.Millisecond), 59},
		{"long suspension", base, base.Add(49 * time.Hour), 49 * 3600},
		{"clock skew clamps to zero", base, base.Add(-10 * time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedSeconds(tt.start, tt.now); got != tt.want {
				t.Errorf("ElapsedSeconds = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWholeMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{-5, 0},
		{1, 1},
		{45, 1},
		{59, 1},
		{60, 1},
		{70, 1},
		{119, 1},
		{120, 2},
		{125, 2},
		{3600, 60},
	}

	for _, tt := range tests {
		if got := WholeMinutes(tt.seconds); got != tt.want {
			t.Errorf("WholeMinutes(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
		{360000, "100:00:00"},
		{-3, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
