package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/tenk/internal/skill"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustSkill(t *testing.T, title string) *skill.Skill {
	t.Helper()
	sk, err := skill.New(title, "Music", "because")
	if err != nil {
		t.Fatal(err)
	}
	return sk
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaVersionStamped(t *testing.T) {
	s := openTestStore(t)

	repo := s.ActiveRepo().(*settingsRepo)
	got, err := repo.get(context.Background(), schemaVersionKey)
	if err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if got != SchemaVersion {
		t.Errorf("schema version = %q, want %q", got, SchemaVersion)
	}
}

func TestSkillSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	sk := mustSkill(t, "Guitar")
	start := time.Now().UTC().Truncate(time.Second)
	sk.IsActive = true
	sk.StartTime = &start
	sk.LastActiveAt = &start
	sk.LogMinutes("2026-09-01", 25)

	if err := repo.Save(ctx, sk); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, sk.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Guitar" || got.Category != "Music" || got.Motivation != "because" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.TotalMinutes != 25 {
		t.Errorf("total = %d, want 25", got.TotalMinutes)
	}
	if !got.IsActive || got.StartTime == nil || !got.StartTime.Equal(start) {
		t.Errorf("active fields not preserved: %+v", got)
	}
	if len(got.DailyLogs) != 1 || got.DailyLogs[0].Minutes != 25 {
		t.Errorf("daily logs = %+v, want one 25-minute entry", got.DailyLogs)
	}
}

func TestSkillGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SkillRepo().Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSkillUpdateClearsNilTimes(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	sk := mustSkill(t, "Guitar")
	start := time.Now().UTC().Truncate(time.Second)
	sk.IsActive = true
	sk.StartTime = &start
	if err := repo.Save(ctx, sk); err != nil {
		t.Fatalf("save: %v", err)
	}

	sk.IsActive = false
	sk.StartTime = nil
	if err := repo.Save(ctx, sk); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, sk.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IsActive || got.StartTime != nil {
		t.Errorf("expected cleared active fields, got %+v", got)
	}
}

func TestDailyLogReconciliation(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	sk := mustSkill(t, "Guitar")
	sk.LogMinutes("2026-09-01", 10)
	if err := repo.Save(ctx, sk); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Same date again merges into one row; a new date adds one.
	sk.LogMinutes("2026-09-01", 5)
	sk.LogMinutes("2026-09-02", 20)
	if err := repo.Save(ctx, sk); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, sk.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.DailyLogs) != 2 {
		t.Fatalf("daily logs = %d, want 2", len(got.DailyLogs))
	}
	if got.MinutesOn("2026-09-01") != 15 || got.MinutesOn("2026-09-02") != 20 {
		t.Errorf("log minutes = %+v", got.DailyLogs)
	}

	var sum int
	for _, dl := range got.DailyLogs {
		sum += dl.Minutes
	}
	if sum != got.TotalMinutes {
		t.Errorf("sum(logs) = %d, total = %d, must match", sum, got.TotalMinutes)
	}
}

func TestListInCreationOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		if err := repo.Save(ctx, mustSkill(t, title)); err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}

	skills, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("skills = %d, want 3", len(skills))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if skills[i].Title != want {
			t.Errorf("skills[%d] = %q, want %q", i, skills[i].Title, want)
		}
	}
}

func TestActivePointer(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActiveRepo()
	ctx := context.Background()

	id, err := repo.ActiveSkillID(ctx)
	if err != nil {
		t.Fatalf("read empty pointer: %v", err)
	}
	if id != "" {
		t.Errorf("pointer = %q, want empty", id)
	}

	if err := repo.SetActiveSkillID(ctx, "sk-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if id, _ = repo.ActiveSkillID(ctx); id != "sk-1" {
		t.Errorf("pointer = %q, want sk-1", id)
	}

	if err := repo.SetActiveSkillID(ctx, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if id, _ = repo.ActiveSkillID(ctx); id != "" {
		t.Errorf("pointer = %q, want cleared", id)
	}
}

func TestDeleteClearsActivePointer(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sk := mustSkill(t, "Guitar")
	if err := s.SkillRepo().Save(ctx, sk); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.ActiveRepo().SetActiveSkillID(ctx, sk.ID); err != nil {
		t.Fatalf("set pointer: %v", err)
	}

	if err := s.SkillRepo().Delete(ctx, sk.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.SkillRepo().Get(ctx, sk.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	id, err := s.ActiveRepo().ActiveSkillID(ctx)
	if err != nil {
		t.Fatalf("read pointer: %v", err)
	}
	if id != "" {
		t.Errorf("pointer = %q, want cleared by delete", id)
	}
}

func TestDeleteNotFound(t *testing.T) {
	s := openTestStore(t)

	err := s.SkillRepo().Delete(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sk := mustSkill(t, "Guitar")
	sk.LogMinutes("2026-09-01", 30)
	if err := s.SkillRepo().Save(ctx, sk); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.ActiveRepo().SetActiveSkillID(ctx, sk.ID); err != nil {
		t.Fatalf("set pointer: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	skills, err := s.SkillRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) != 0 {
		t.Errorf("skills = %d, want 0 after reset", len(skills))
	}

	// Schema version is re-stamped so the store stays usable.
	repo := s.ActiveRepo().(*settingsRepo)
	got, err := repo.get(ctx, schemaVersionKey)
	if err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if got != SchemaVersion {
		t.Errorf("schema version = %q, want %q", got, SchemaVersion)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"skills", "daily_logs", "settings"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
