package mastery

import (
	"testing"

	"github.com/abhisek/tenk/internal/skill"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{0, 0},
		{-5, 0},
		{2500, 0.25},
		{9999, 0.9999},
		{10000, 1},
		{20000, 1},
	}

	for _, tt := range tests {
		if got := Progress(tt.minutes); got != tt.want {
			t.Errorf("Progress(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestIsMastered(t *testing.T) {
	if IsMastered(9999) {
		t.Error("9999 minutes must not be mastered")
	}
	if !IsMastered(10000) {
		t.Error("10000 minutes must be mastered")
	}
}

func TestCelebrationLatchFiresOnce(t *testing.T) {
	sk := &skill.Skill{Title: "Piano", Category: "Music", TotalMinutes: 9999}

	if ShouldCelebrate(sk) {
		t.Error("celebrated below threshold")
	}

	sk.TotalMinutes = 10000
	if !ShouldCelebrate(sk) {
		t.Fatal("no celebration on crossing the threshold")
	}

	MarkCelebrated(sk)
	if ShouldCelebrate(sk) {
		t.Error("celebration repeated after latch was set")
	}

	// The latch stays set no matter how far the total grows.
	sk.TotalMinutes = 25000
	if ShouldCelebrate(sk) {
		t.Error("latch reset by further accumulation")
	}
}
