package figure

import (
	"math"
	"strconv"
	"strings"
)

// ShouldAnnotate reports whether a bar of height v gets a value label.
// Heights are truncated toward zero first, so anything below 1 is skipped.
func ShouldAnnotate(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return math.Trunc(v) > 0
}

// FormatValue renders a bar height as annotation text: shortest round-trip
// digits, integral values keep a trailing ".0", very large or very small
// magnitudes switch to exponent form.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
