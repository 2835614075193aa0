// Package types implements special types for Centavo.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific year.
//
// It is stored as the integer month key year*12 + month, so consecutive
// months always differ by exactly 1 and month arithmetic never touches
// day-of-month or time zone handling. The zero value is the unset month.
type Month int

// NewMonth returns a new Month.
//
// Out of range month values are normalized the same way time.Date
// normalizes them.
func NewMonth(year int, month time.Month) Month {
	if month < time.January || month > time.December {
		t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		year, month, _ = t.Date()
	}

	return Month(year*12 + int(month))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month(0), err
	}

	return MonthOf(t), nil
}

// ParseDateToMonth parses a string in RFC3339 full-date format and returns the Month value it represents.
func ParseDateToMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Month(0), err
	}

	return MonthOf(t), nil
}

// Year returns the year the month is in.
func (m Month) Year() int {
	return (int(m) - 1) / 12
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return time.Month((int(m)-1)%12 + 1)
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month()))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return m == 0
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return m + Month(years*12+months)
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return m < n
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return m > n
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return m == n
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// First returns the first instant of the month in UTC.
func (m Month) First() time.Time {
	return time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String(), the zero value marshals to null.
func (m Month) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a string in "YYYY-MM" or RFC3339 full-date
// format. From a full date, the day is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		month, err = ParseDateToMonth(value)
		if err != nil {
			return err
		}
	}

	*m = month
	return nil
}

// Scan reads the value from the database.
func (m *Month) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = Month(0)
		return nil
	case string:
		return m.scanString(v)
	case []byte:
		return m.scanString(string(v))
	case time.Time:
		*m = MonthOf(v)
		return nil
	default:
		return fmt.Errorf("unsupported type %T for Month", value)
	}
}

func (m *Month) scanString(s string) error {
	if s == "" {
		*m = Month(0)
		return nil
	}

	month, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Value returns the value for the SQL driver to write to the database.
//
// Months are stored as "YYYY-MM" strings. Their lexicographic order matches
// their chronological order, so range scans work directly on the column.
func (m Month) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}

	return m.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "varchar(7)"
}
