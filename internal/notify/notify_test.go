package notify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/tenk/internal/session"
	"github.com/abhisek/tenk/internal/skill"
)

func TestAnnouncerWritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "session.log")
	a := NewAnnouncer(path)
	defer a.Close()

	sk := &skill.Skill{ID: "sk-1", Title: "Guitar"}
	a.SessionStarted(sk)
	a.SessionPaused(sk, 95)
	a.SessionStopped(sk, &session.Commit{
		SkillID: "sk-1", Date: "2026-09-01",
		Seconds: 95, Minutes: 1, TotalMinutes: 42,
	})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d log lines, want 3", len(lines))
	}

	var last map[string]any
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if last["event"] != "session_stopped" {
		t.Errorf("event = %v", last["event"])
	}
	if last["minutes"] != float64(1) {
		t.Errorf("minutes = %v", last["minutes"])
	}
	if last["skill_id"] != "sk-1" {
		t.Errorf("skill_id = %v", last["skill_id"])
	}
}

func TestDisabledAnnouncerIsSafe(t *testing.T) {
	a := NewAnnouncer("")
	defer a.Close()

	a.SessionStarted(&skill.Skill{ID: "x"})
	a.SessionUpdated(nil, 10)
	a.SessionStopped(nil, nil)
}
