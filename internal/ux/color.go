package ux

import "github.com/jorge-barreto/tasklist/internal/status"

// ANSI color helpers
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Red   = "\033[31m"
	Green = "\033[32m"
	Cyan  = "\033[36m"
)

// Background swatches, one blank cell wide. These strings are also the
// tag values stored in the task file.
const (
	SwatchRed    = "\033[101m \033[0m"
	SwatchGreen  = "\033[102m \033[0m"
	SwatchYellow = "\033[103m \033[0m"
	SwatchBlue   = "\033[104m \033[0m"
)

// Swatch returns the colored cell for a tag. Unknown tags print their raw
// text unchanged.
func Swatch(t status.Tag) string {
	if !t.Known() {
		return t.Raw
	}
	switch t.Color {
	case status.Red:
		return SwatchRed
	case status.Yellow:
		return SwatchYellow
	case status.Green:
		return SwatchGreen
	case status.Blue:
		return SwatchBlue
	default:
		return t.Raw
	}
}

// ParseSwatch is the inverse of Swatch.
func ParseSwatch(s string) status.Tag {
	switch s {
	case SwatchRed:
		return status.Of(status.Red)
	case SwatchYellow:
		return status.Of(status.Yellow)
	case SwatchGreen:
		return status.Of(status.Green)
	case SwatchBlue:
		return status.Of(status.Blue)
	default:
		return status.Opaque(s)
	}
}
