package status

import (
	"errors"
	"testing"
	"time"

	"github.com/jorge-barreto/tasklist/internal/datetime"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"C", Red},
		{"c", Red},
		{"H", Yellow},
		{"h", Yellow},
		{"N", Green},
		{"n", Green},
		{"L", Blue},
		{"l", Blue},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if err != nil {
			t.Fatalf("ParsePriority(%q) error: %v", tt.in, err)
		}
		if got != Of(tt.want) {
			t.Fatalf("ParsePriority(%q) = %v, want %v", tt.in, got.Color, tt.want)
		}
	}
}

func TestParsePriority_Invalid(t *testing.T) {
	for _, in := range []string{"", "X", "CH", "critical", "1"} {
		if _, err := ParsePriority(in); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("ParsePriority(%q) err = %v, want ErrInvalidPriority", in, err)
		}
	}
}

func TestClassify(t *testing.T) {
	today := datetime.Date{Year: 2024, Month: time.February, Day: 29}
	tests := []struct {
		name string
		date datetime.Date
		want Color
	}{
		{"same day", today, DueToday},
		{"day before", datetime.Date{Year: 2024, Month: time.February, Day: 28}, Overdue},
		{"day after", datetime.Date{Year: 2024, Month: time.March, Day: 1}, Upcoming},
		{"last year", datetime.Date{Year: 2023, Month: time.December, Day: 31}, Overdue},
		{"next year", datetime.Date{Year: 2025, Month: time.January, Day: 1}, Upcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.date, today); got.Color != tt.want {
				t.Fatalf("Classify(%v) = %v, want %v", tt.date, got.Color, tt.want)
			}
		})
	}
}

func TestOpaque(t *testing.T) {
	tag := Opaque("?")
	if tag.Known() {
		t.Fatal("opaque tag reported as known")
	}
	if tag.Raw != "?" {
		t.Fatalf("Raw = %q", tag.Raw)
	}
	if !Of(Blue).Known() {
		t.Fatal("blue tag reported as unknown")
	}
}
