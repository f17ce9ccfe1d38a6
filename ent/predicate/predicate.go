// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DailyLog is the predicate function for dailylog builders.
type DailyLog func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)
