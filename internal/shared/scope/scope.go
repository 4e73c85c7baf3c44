// Package scope holds reusable gorm scopes for ledger queries.
package scope

import (
	"time"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func Employee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

// DateWithin restricts a date column to the inclusive range [start, end].
func DateWithin(column string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" BETWEEN ? AND ?", start.Format(dateLayout), end.Format(dateLayout))
	}
}

// TimestampOnDays restricts a timestamp column to the calendar days
// [start, end], both inclusive.
func TimestampOnDays(column string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" < ?",
			start.Format(dateLayout), end.AddDate(0, 0, 1).Format(dateLayout))
	}
}

// Overlapping matches rows whose [startColumn, endColumn] range shares at
// least one day with [start, end].
func Overlapping(startColumn, endColumn string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("NOT ("+endColumn+" < ? OR "+startColumn+" > ?)",
			start.Format(dateLayout), end.Format(dateLayout))
	}
}

func Status(column, status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", status)
	}
}
