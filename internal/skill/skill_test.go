package skill

import (
	"errors"
	"testing"
	"time"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		category  string
		wantField string
	}{
		{"valid", "Piano", "Music", ""},
		{"empty title", "", "Music", "title"},
		{"empty category", "Piano", "", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sk, err := New(tt.title, tt.category, "because")
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				if sk.ID == "" {
					t.Error("New returned empty id")
				}
				if sk.TotalMinutes != 0 || len(sk.DailyLogs) != 0 {
					t.Error("new skill must start with zero accumulation")
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("New err = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestLogMinutesMergesByDate(t *testing.T) {
	sk := &Skill{ID: "x", Title: "Piano", Category: "Music"}

	sk.LogMinutes("2025-06-01", 2)
	sk.LogMinutes("2025-06-01", 3)
	sk.LogMinutes("2025-06-02", 1)
	sk.LogMinutes("2025-06-01", 0)  // ignored
	sk.LogMinutes("2025-06-03", -4) // ignored

	if len(sk.DailyLogs) != 2 {
		t.Fatalf("DailyLogs count = %d, want 2", len(sk.DailyLogs))
	}
	if sk.DailyLogs[0].Date != "2025-06-01" || sk.DailyLogs[0].Minutes != 5 {
		t.Errorf("first entry = %+v, want {2025-06-01 5}", sk.DailyLogs[0])
	}
	if sk.DailyLogs[1].Date != "2025-06-02" || sk.DailyLogs[1].Minutes != 1 {
		t.Errorf("second entry = %+v, want {2025-06-02 1}", sk.DailyLogs[1])
	}

	sum := 0
	for _, l := range sk.DailyLogs {
		sum += l.Minutes
	}
	if sum != sk.TotalMinutes {
		t.Errorf("sum %d != TotalMinutes %d", sum, sk.TotalMinutes)
	}
}

func TestMinutesOn(t *testing.T) {
	sk := &Skill{}
	sk.LogMinutes("2025-06-01", 4)
	if got := sk.MinutesOn("2025-06-01"); got != 4 {
		t.Errorf("MinutesOn = %d, want 4", got)
	}
	if got := sk.MinutesOn("2025-06-02"); got != 0 {
		t.Errorf("MinutesOn missing date = %d, want 0", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	start := time.Now()
	sk := &Skill{ID: "x", Title: "Piano", Category: "Music", StartTime: &start}
	sk.LogMinutes("2025-06-01", 2)

	c := sk.Clone()
	c.LogMinutes("2025-06-01", 10)
	*c.StartTime = start.Add(time.Hour)

	if sk.DailyLogs[0].Minutes != 2 {
		t.Error("clone shares DailyLogs backing array")
	}
	if sk.TotalMinutes != 2 {
		t.Error("clone mutation leaked into TotalMinutes")
	}
	if !sk.StartTime.Equal(start) {
		t.Error("clone shares StartTime pointer")
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 59, 59, 0, time.Local)
	if got := Today(now); got != "2025-06-01" {
		t.Errorf("Today = %q, want 2025-06-01", got)
	}
}

func TestDerivedStats(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	sk := &Skill{Title: "Piano", Category: "Music", CreatedAt: created}
	sk.LogMinutes("2025-06-01", 10)
	sk.LogMinutes("2025-06-03", 5)

	now := created.Add(48 * time.Hour) // 2025-06-03

	if got := sk.PracticeDays(); got != 2 {
		t.Errorf("PracticeDays = %d, want 2", got)
	}
	// Creation day counts, so two elapsed days make three.
	if got := sk.DaysSinceCreated(now); got != 3 {
		t.Errorf("DaysSinceCreated = %d, want 3", got)
	}
	if got := sk.AverageDailyMinutes(now); got != 5.0 {
		t.Errorf("AverageDailyMinutes = %v, want 5.0", got)
	}

	// Same-instant creation still reports one day.
	fresh := &Skill{CreatedAt: now}
	if got := fresh.DaysSinceCreated(now); got != 1 {
		t.Errorf("DaysSinceCreated fresh = %d, want 1", got)
	}
}
