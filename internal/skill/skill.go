package skill

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used by daily logs.
const DateLayout = "2006-01-02"

// DailyLog is the committed minutes for a single calendar day.
type DailyLog struct {
	Date    string // YYYY-MM-DD, local time
	Minutes int
}

// Skill is a practice subject tracked toward the 10,000-minute goal.
type Skill struct {
	ID         string
	Title      string
	Category   string
	Motivation string
	CreatedAt  time.Time

	// TotalMinutes always equals the sum of DailyLogs minutes.
	TotalMinutes int

	// DailyLogs holds at most one entry per calendar date, in insertion order.
	DailyLogs []DailyLog

	IsActive         bool
	StartTime        *time.Time
	LastActiveAt     *time.Time
	HasShownConfetti bool
}

// New creates a skill with a fresh id and creation time.
// Returns a ValidationError if title or category is empty.
func New(title, category, motivation string) (*Skill, error) {
	s := &Skill{
		ID:         uuid.New().String(),
		Title:      title,
		Category:   category,
		Motivation: motivation,
		CreatedAt:  time.Now(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the fields required before persistence.
func (s *Skill) Validate() error {
	if s.Title == "" {
		return &ValidationError{Field: "title"}
	}
	if s.Category == "" {
		return &ValidationError{Field: "category"}
	}
	return nil
}

// LogMinutes folds a whole-minute delta into the per-day log, incrementing
// an existing same-date entry or appending a new one, and keeps TotalMinutes
// equal to the sum over all entries. Non-positive deltas are ignored.
func (s *Skill) LogMinutes(date string, minutes int) {
	if minutes <= 0 {
		return
	}
	for i := range s.DailyLogs {
		if s.DailyLogs[i].Date == date {
			s.DailyLogs[i].Minutes += minutes
			s.TotalMinutes += minutes
			return
		}
	}
	s.DailyLogs = append(s.DailyLogs, DailyLog{Date: date, Minutes: minutes})
	s.TotalMinutes += minutes
}

// MinutesOn returns the committed minutes for a calendar date.
func (s *Skill) MinutesOn(date string) int {
	for _, l := range s.DailyLogs {
		if l.Date == date {
			return l.Minutes
		}
	}
	return 0
}

// Clone returns a deep copy, so callers can stage mutations and only adopt
// them after a successful durable write.
func (s *Skill) Clone() *Skill {
	c := *s
	c.DailyLogs = make([]DailyLog, len(s.DailyLogs))
	copy(c.DailyLogs, s.DailyLogs)
	if s.StartTime != nil {
		t := *s.StartTime
		c.StartTime = &t
	}
	if s.LastActiveAt != nil {
		t := *s.LastActiveAt
		c.LastActiveAt = &t
	}
	return &c
}

// Today formats now as a local calendar date. Callers computing a commit
// must call this once and reuse the value across the whole operation.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// PracticeDays is the number of distinct days with committed minutes.
func (s *Skill) PracticeDays() int {
	return len(s.DailyLogs)
}

// DaysSinceCreated counts calendar days since creation, inclusive of the
// creation day (minimum 1).
func (s *Skill) DaysSinceCreated(now time.Time) int {
	days := int(now.Sub(s.CreatedAt).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// AverageDailyMinutes is TotalMinutes spread over the days since creation,
// rounded to one decimal place.
func (s *Skill) AverageDailyMinutes(now time.Time) float64 {
	avg := float64(s.TotalMinutes) / float64(s.DaysSinceCreated(now))
	return float64(int(avg*10+0.5)) / 10
}
