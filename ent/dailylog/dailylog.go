// Code generated by ent, DO NOT EDIT.

package dailylog

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailylog type in the database.
	Label = "daily_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldMinutes holds the string denoting the minutes field in the database.
	FieldMinutes = "minutes"
	// Table holds the table name of the dailylog in the database.
	Table = "daily_logs"
)

// Columns holds all SQL columns for dailylog fields.
var Columns = []string{
	FieldID,
	FieldSkillID,
	FieldDate,
	FieldMinutes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultMinutes holds the default value on creation for the "minutes" field.
	DefaultMinutes int
	// MinutesValidator is a validator for the "minutes" field. It is called by the builders before save.
	MinutesValidator func(int) error
)

// OrderOption defines the ordering options for the DailyLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByMinutes orders the results by the minutes field.
func ByMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinutes, opts...).ToFunc()
}
