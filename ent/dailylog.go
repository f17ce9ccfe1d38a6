// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tenk/ent/dailylog"
)

// DailyLog is the model entity for the DailyLog schema.
type DailyLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning skill's opaque id
	SkillID string `json:"skill_id,omitempty"`
	// Local calendar date, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// Minutes holds the value of the "minutes" field.
	Minutes      int `json:"minutes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailylog.FieldID, dailylog.FieldMinutes:
			values[i] = new(sql.NullInt64)
		case dailylog.FieldSkillID, dailylog.FieldDate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyLog fields.
func (_m *DailyLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailylog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailylog.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case dailylog.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case dailylog.FieldMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minutes", values[i])
			} else if value.Valid {
				_m.Minutes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyLog.
// This includes values selected through modifiers, order, etc.
func (_m *DailyLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyLog.
// Note that you need to call DailyLog.Unwrap() before calling this method if this DailyLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyLog) Update() *DailyLogUpdateOne {
	return NewDailyLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyLog) Unwrap() *DailyLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyLog) String() string {
	var builder strings.Builder
	builder.WriteString("DailyLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Minutes))
	builder.WriteByte(')')
	return builder.String()
}

// DailyLogs is a parsable slice of DailyLog.
type DailyLogs []*DailyLog
