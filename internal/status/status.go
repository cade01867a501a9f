// Package status classifies tasks into the color tags shown in the table.
package status

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jorge-barreto/tasklist/internal/datetime"
)

var ErrInvalidPriority = errors.New("invalid priority")

// Color is the presentational state shared by priority and overdue tags.
type Color int

const (
	Unknown Color = iota
	Red
	Yellow
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Tag is a color tag attached to a task. Tags read back from disk that do
// not name a known color keep their original text in Raw.
type Tag struct {
	Color Color
	Raw   string
}

// Of returns the tag for a known color.
func Of(c Color) Tag {
	return Tag{Color: c}
}

// Opaque wraps text that does not decode to a known color.
func Opaque(raw string) Tag {
	return Tag{Color: Unknown, Raw: raw}
}

// Known reports whether the tag names one of the fixed colors.
func (t Tag) Known() bool {
	return t.Color != Unknown
}

// Priority levels, in the order they are offered at the prompt.
const (
	Critical = Red
	High     = Yellow
	Normal   = Green
	Low      = Blue
)

// Overdue states relative to today.
const (
	Overdue  = Red
	DueToday = Yellow
	Upcoming = Green
)

// ParsePriority maps one of C, H, N, L (any case) to its tag.
func ParsePriority(s string) (Tag, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return Of(Critical), nil
	case "H":
		return Of(High), nil
	case "N":
		return Of(Normal), nil
	case "L":
		return Of(Low), nil
	}
	return Tag{}, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// Classify compares a task's date with today by whole days.
func Classify(date, today datetime.Date) Tag {
	switch date.Compare(today) {
	case 1:
		return Of(Upcoming)
	case -1:
		return Of(Overdue)
	default:
		return Of(DueToday)
	}
}
