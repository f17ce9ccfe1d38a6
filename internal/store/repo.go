package store

import (
	"context"
	"errors"

	"github.com/abhisek/tenk/internal/skill"
)

// ErrNotFound is returned when an operation names a skill id with no
// backing record.
var ErrNotFound = errors.New("skill not found")

// SkillRepo is durable keyed storage for skill records and their daily logs.
// All operations are synchronous within the call but must be treated as
// fallible: callers surface errors and never retry automatically.
type SkillRepo interface {
	// List returns all skills in creation order.
	List(ctx context.Context) ([]*skill.Skill, error)

	// Get returns one skill by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*skill.Skill, error)

	// Save creates or updates the record and reconciles its daily logs
	// in a single transaction.
	Save(ctx context.Context, sk *skill.Skill) error

	// Delete removes the record and its logs. If the active pointer
	// references the skill it is cleared in the same transaction.
	Delete(ctx context.Context, id string) error
}

// ActiveRepo owns the global active-skill pointer: at most one skill id
// is countable system-wide at any time.
type ActiveRepo interface {
	// ActiveSkillID returns the pointer, or "" when no session is active.
	ActiveSkillID(ctx context.Context) (string, error)

	// SetActiveSkillID sets the pointer; "" clears it.
	SetActiveSkillID(ctx context.Context, id string) error
}
