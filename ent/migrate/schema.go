// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DailyLogsColumns holds the columns for the "daily_logs" table.
	DailyLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeString},
		{Name: "minutes", Type: field.TypeInt, Default: 0},
	}
	// DailyLogsTable holds the schema information for the "daily_logs" table.
	DailyLogsTable = &schema.Table{
		Name:       "daily_logs",
		Columns:    DailyLogsColumns,
		PrimaryKey: []*schema.Column{DailyLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailylog_skill_id_date",
				Unique:  true,
				Columns: []*schema.Column{DailyLogsColumns[1], DailyLogsColumns[2]},
			},
			{
				Name:    "dailylog_date",
				Unique:  false,
				Columns: []*schema.Column{DailyLogsColumns[2]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "motivation", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "total_minutes", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_active_at", Type: field.TypeTime, Nullable: true},
		{Name: "has_shown_confetti", Type: field.TypeBool, Default: false},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_skill_id",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[1]},
			},
			{
				Name:    "skill_is_active",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DailyLogsTable,
		SettingsTable,
		SkillsTable,
	}
)

func init() {
}
