// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tenk/ent/dailylog"
	"github.com/abhisek/tenk/ent/schema"
	"github.com/abhisek/tenk/ent/setting"
	"github.com/abhisek/tenk/ent/skill"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dailylogFields := schema.DailyLog{}.Fields()
	_ = dailylogFields
	// dailylogDescSkillID is the schema descriptor for skill_id field.
	dailylogDescSkillID := dailylogFields[0].Descriptor()
	// dailylog.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	dailylog.SkillIDValidator = dailylogDescSkillID.Validators[0].(func(string) error)
	// dailylogDescDate is the schema descriptor for date field.
	dailylogDescDate := dailylogFields[1].Descriptor()
	// dailylog.DateValidator is a validator for the "date" field. It is called by the builders before save.
	dailylog.DateValidator = dailylogDescDate.Validators[0].(func(string) error)
	// dailylogDescMinutes is the schema descriptor for minutes field.
	dailylogDescMinutes := dailylogFields[2].Descriptor()
	// dailylog.DefaultMinutes holds the default value on creation for the minutes field.
	dailylog.DefaultMinutes = dailylogDescMinutes.Default.(int)
	// dailylog.MinutesValidator is a validator for the "minutes" field. It is called by the builders before save.
	dailylog.MinutesValidator = dailylogDescMinutes.Validators[0].(func(int) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescSkillID is the schema descriptor for skill_id field.
	skillDescSkillID := skillFields[0].Descriptor()
	// skill.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	skill.SkillIDValidator = skillDescSkillID.Validators[0].(func(string) error)
	// skillDescTitle is the schema descriptor for title field.
	skillDescTitle := skillFields[1].Descriptor()
	// skill.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	skill.TitleValidator = skillDescTitle.Validators[0].(func(string) error)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[2].Descriptor()
	// skill.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	skill.CategoryValidator = skillDescCategory.Validators[0].(func(string) error)
	// skillDescCreatedAt is the schema descriptor for created_at field.
	skillDescCreatedAt := skillFields[4].Descriptor()
	// skill.DefaultCreatedAt holds the default value on creation for the created_at field.
	skill.DefaultCreatedAt = skillDescCreatedAt.Default.(func() time.Time)
	// skillDescTotalMinutes is the schema descriptor for total_minutes field.
	skillDescTotalMinutes := skillFields[5].Descriptor()
	// skill.DefaultTotalMinutes holds the default value on creation for the total_minutes field.
	skill.DefaultTotalMinutes = skillDescTotalMinutes.Default.(int)
	// skill.TotalMinutesValidator is a validator for the "total_minutes" field. It is called by the builders before save.
	skill.TotalMinutesValidator = skillDescTotalMinutes.Validators[0].(func(int) error)
	// skillDescIsActive is the schema descriptor for is_active field.
	skillDescIsActive := skillFields[6].Descriptor()
	// skill.DefaultIsActive holds the default value on creation for the is_active field.
	skill.DefaultIsActive = skillDescIsActive.Default.(bool)
	// skillDescHasShownConfetti is the schema descriptor for has_shown_confetti field.
	skillDescHasShownConfetti := skillFields[9].Descriptor()
	// skill.DefaultHasShownConfetti holds the default value on creation for the has_shown_confetti field.
	skill.DefaultHasShownConfetti = skillDescHasShownConfetti.Default.(bool)
}
