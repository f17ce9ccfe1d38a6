package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tenk/ent"
	"github.com/abhisek/tenk/ent/setting"
)

const activeSkillKey = "active_skill_id"

// settingsRepo implements ActiveRepo on top of the settings key/value entity.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) ActiveSkillID(ctx context.Context) (string, error) {
	return r.get(ctx, activeSkillKey)
}

func (r *settingsRepo) SetActiveSkillID(ctx context.Context, id string) error {
	if id == "" {
		_, err := r.client.Setting.Delete().
			Where(setting.Key(activeSkillKey)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("clear active skill: %w", err)
		}
		return nil
	}
	return r.set(ctx, activeSkillKey, id)
}

// get returns the value for key, or "" when the key is unset.
func (r *settingsRepo) get(ctx context.Context, key string) (string, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return row.Value, nil
}

func (r *settingsRepo) set(ctx context.Context, key, value string) error {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Setting.Create().
			SetKey(key).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create setting %s: %w", key, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query setting %s: %w", key, err)
	default:
		_, err = r.client.Setting.UpdateOneID(row.ID).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update setting %s: %w", key, err)
		}
		return nil
	}
}

// clearActiveIfEquals removes the active pointer inside tx when it points
// at id.
func clearActiveIfEquals(ctx context.Context, tx *ent.Tx, id string) error {
	row, err := tx.Setting.Query().
		Where(setting.Key(activeSkillKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("query active pointer: %w", err)
	}
	if row.Value != id {
		return nil
	}
	if err := tx.Setting.DeleteOneID(row.ID).Exec(ctx); err != nil {
		return fmt.Errorf("clear active pointer: %w", err)
	}
	return nil
}
