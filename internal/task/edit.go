package task

import (
	"fmt"
	"time"

	"github.com/jorge-barreto/tasklist/internal/datetime"
	"github.com/jorge-barreto/tasklist/internal/status"
)

// Field names an editable attribute, spelled the way the user types it.
type Field string

const (
	FieldPriority Field = "priority"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldDetails  Field = "task"
)

var fields = []Field{FieldPriority, FieldDate, FieldTime, FieldDetails}

// Fields returns the editable fields in prompt order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// ParseField validates a field name.
func ParseField(s string) (Field, error) {
	for _, f := range fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidField, s)
}

// Edit carries the replacement value for a single field. Only the member
// matching Field is read; Time contributes its hour and minute only.
type Edit struct {
	Field    Field
	Priority status.Tag
	Date     datetime.Date
	Time     time.Time
	Details  []string
}
