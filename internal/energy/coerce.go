package energy

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the leading decimal literal of a form field, the same
// prefix a browser's parseFloat would read ("80kg" -> "80", "1.5e2x" -> "1.5e2").
var numberPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseNumber coerces raw form text to a finite number. Text with no numeric
// prefix, or one that overflows to infinity, yields 0 with ok=false; empty
// text also reports ok=false. Negative values pass through unchanged.
func ParseNumber(text string) (value float64, ok bool) {
	m := numberPrefix.FindString(strings.TrimSpace(text))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// NumberOrZero is ParseNumber without the flag, for callers that only need
// the coerced value.
func NumberOrZero(text string) float64 {
	v, _ := ParseNumber(text)
	return v
}
