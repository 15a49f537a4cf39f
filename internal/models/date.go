package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component. It marshals to and from
// YYYY-MM-DD over JSON and stores as a DATE column.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string, with an RFC3339 fallback for
// timestamp-shaped inputs.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return NewDate(y, m, d), nil
	}
	return Date{}, fmt.Errorf("models: parse date %q: want YYYY-MM-DD", s)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("models: date must be a JSON string, got %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner. The sqlite and mysql drivers hand back either
// a time.Time or the raw column text depending on declared column type.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		y, m, day := v.Date()
		*d = NewDate(y, m, day)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("models: cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	for _, layout := range []string{
		dateLayout,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, day := t.Date()
			*d = NewDate(y, m, day)
			return nil
		}
	}
	return fmt.Errorf("models: cannot scan %q into Date", s)
}

// GormDataType tells gorm to declare a DATE column for this type.
func (Date) GormDataType() string {
	return "date"
}
