package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tenk/ent"
	"github.com/abhisek/tenk/ent/dailylog"
	entskill "github.com/abhisek/tenk/ent/skill"
	"github.com/abhisek/tenk/internal/skill"
)

// skillRepo implements SkillRepo using the ent client.
type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	rows, err := r.client.Skill.Query().
		Order(ent.Asc(entskill.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	skills := make([]*skill.Skill, 0, len(rows))
	for _, row := range rows {
		sk, err := r.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	return skills, nil
}

func (r *skillRepo) Get(ctx context.Context, id string) (*skill.Skill, error) {
	row, err := r.client.Skill.Query().
		Where(entskill.SkillID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get skill %s: %w", id, err)
	}
	return r.hydrate(ctx, row)
}

// hydrate converts an ent row plus its log rows into a domain skill.
func (r *skillRepo) hydrate(ctx context.Context, row *ent.Skill) (*skill.Skill, error) {
	logs, err := r.client.DailyLog.Query().
		Where(dailylog.SkillID(row.SkillID)).
		Order(ent.Asc(dailylog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load daily logs for %s: %w", row.SkillID, err)
	}

	sk := &skill.Skill{
		ID:               row.SkillID,
		Title:            row.Title,
		Category:         row.Category,
		Motivation:       row.Motivation,
		CreatedAt:        row.CreatedAt,
		TotalMinutes:     row.TotalMinutes,
		IsActive:         row.IsActive,
		StartTime:        row.StartTime,
		LastActiveAt:     row.LastActiveAt,
		HasShownConfetti: row.HasShownConfetti,
	}
	for _, l := range logs {
		sk.DailyLogs = append(sk.DailyLogs, skill.DailyLog{Date: l.Date, Minutes: l.Minutes})
	}
	return sk, nil
}

func (r *skillRepo) Save(ctx context.Context, sk *skill.Skill) error {
	if err := sk.Validate(); err != nil {
		return err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	row, err := tx.Skill.Query().
		Where(entskill.SkillID(sk.ID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.Skill.Create().
			SetSkillID(sk.ID).
			SetTitle(sk.Title).
			SetCategory(sk.Category).
			SetMotivation(sk.Motivation).
			SetCreatedAt(sk.CreatedAt).
			SetTotalMinutes(sk.TotalMinutes).
			SetIsActive(sk.IsActive).
			SetNillableStartTime(sk.StartTime).
			SetNillableLastActiveAt(sk.LastActiveAt).
			SetHasShownConfetti(sk.HasShownConfetti).
			Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("create skill %s: %w", sk.ID, err))
		}
	case err != nil:
		return rollback(tx, fmt.Errorf("query skill %s: %w", sk.ID, err))
	default:
		upd := tx.Skill.UpdateOneID(row.ID).
			SetTitle(sk.Title).
			SetCategory(sk.Category).
			SetMotivation(sk.Motivation).
			SetTotalMinutes(sk.TotalMinutes).
			SetIsActive(sk.IsActive).
			SetHasShownConfetti(sk.HasShownConfetti)
		if sk.StartTime != nil {
			upd.SetStartTime(*sk.StartTime)
		} else {
			upd.ClearStartTime()
		}
		if sk.LastActiveAt != nil {
			upd.SetLastActiveAt(*sk.LastActiveAt)
		} else {
			upd.ClearLastActiveAt()
		}
		if _, err := upd.Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("update skill %s: %w", sk.ID, err))
		}
	}

	if err := reconcileLogs(ctx, tx, sk); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// reconcileLogs makes the stored log rows match the domain skill's logs.
// Log entries only ever grow, so rows are created or their minutes updated,
// never removed here.
func reconcileLogs(ctx context.Context, tx *ent.Tx, sk *skill.Skill) error {
	for _, l := range sk.DailyLogs {
		row, err := tx.DailyLog.Query().
			Where(dailylog.SkillID(sk.ID), dailylog.Date(l.Date)).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			_, err = tx.DailyLog.Create().
				SetSkillID(sk.ID).
				SetDate(l.Date).
				SetMinutes(l.Minutes).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create daily log %s/%s: %w", sk.ID, l.Date, err)
			}
		case err != nil:
			return fmt.Errorf("query daily log %s/%s: %w", sk.ID, l.Date, err)
		case row.Minutes != l.Minutes:
			_, err = tx.DailyLog.UpdateOneID(row.ID).
				SetMinutes(l.Minutes).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("update daily log %s/%s: %w", sk.ID, l.Date, err)
			}
		}
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}

	if _, err := tx.DailyLog.Delete().
		Where(dailylog.SkillID(id)).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete daily logs for %s: %w", id, err))
	}

	n, err := tx.Skill.Delete().
		Where(entskill.SkillID(id)).
		Exec(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("delete skill %s: %w", id, err))
	}
	if n == 0 {
		return rollback(tx, ErrNotFound)
	}

	// A deleted skill must never leave an orphaned active pointer behind.
	if err := clearActiveIfEquals(ctx, tx, id); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// rollback aborts the transaction and returns err, preserving err even when
// the rollback itself fails.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
