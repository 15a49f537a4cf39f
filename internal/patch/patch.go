// Package patch turns sparse JSON update payloads into GORM column maps.
//
// A decoded request body keeps the absent-vs-null distinction: a key missing
// from the map was never supplied, a key with a nil value was explicitly set
// to null. Apply preserves that distinction so updates touch only the fields
// the caller named.
package patch

import (
	"fmt"

	"github.com/zulandar/trestle/internal/models"
)

// Spec whitelists the updatable fields of one entity and marks which of them
// hold calendar dates.
type Spec struct {
	// Fields maps incoming JSON field names to database column names.
	Fields map[string]string
	// Dates is the set of column names that carry YYYY-MM-DD values.
	Dates map[string]bool
}

// Apply filters raw through the spec and returns a column map suitable for
// gorm Updates. Unknown fields are dropped. Explicit nulls survive as nil
// column values. Date strings are parsed; anything else in a date field is a
// ValidationError.
func (s Spec) Apply(raw map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(raw))
	for name, val := range raw {
		col, ok := s.Fields[name]
		if !ok {
			continue
		}
		if s.Dates[col] {
			parsed, err := coerceDate(name, val)
			if err != nil {
				return nil, err
			}
			updates[col] = parsed
			continue
		}
		updates[col] = val
	}
	return updates, nil
}

func coerceDate(field string, val interface{}) (interface{}, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case string:
		d, err := models.ParseDate(v)
		if err != nil {
			return nil, models.NewValidationError(fmt.Sprintf("%s: invalid date %q, want YYYY-MM-DD", field, v))
		}
		return d, nil
	default:
		return nil, models.NewValidationError(fmt.Sprintf("%s: invalid date value %v", field, val))
	}
}
