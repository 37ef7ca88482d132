package core

import (
	"math"
	"strconv"
	"strings"
)

// RoundTo rounds v to the given number of decimal places using banker's
// rounding (round half to even).
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*p) / p
}

// FormatFloat renders v in the shortest decimal form that round-trips,
// always carrying a decimal point (200 prints as "200.0").
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
