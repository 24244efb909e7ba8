package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// IsEven reports whether n is divisible by 2
func IsEven(n int) bool {
	return n%2 == 0
}

// NumberClamp keeps value inside [min, max]
func NumberClamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// clampInt is NumberClamp for integers
func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// PadTo2Digits left-pads n with zeros to at least two characters
func PadTo2Digits(n int) string {
	return PadDigits(n, 2)
}

// PadDigits left-pads n with zeros to at least width characters.
// Longer numbers are returned unchanged.
func PadDigits(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Interpolate maps value from [inStart, inEnd] onto [outStart, outEnd].
// Values outside the input range are clamped to it first.
func Interpolate(value, inStart, inEnd, outStart, outEnd float64) (float64, error) {
	if inStart == inEnd {
		return 0, fmt.Errorf("%w: input start and end cannot be equal (%v)", ErrInvalidRange, inStart)
	}

	lo, hi := math.Min(inStart, inEnd), math.Max(inStart, inEnd)
	clamped := NumberClamp(value, lo, hi)

	ratio := (clamped - inStart) / (inEnd - inStart)
	return outStart + ratio*(outEnd-outStart), nil
}

// TruncDecimals drops every digit after the given number of decimal places.
// The value is taken at its shortest decimal representation, so 0.0000123
// truncated to 5 places is 0.00001.
func TruncDecimals(value float64, places int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return truncDecimal(value, places).InexactFloat64()
}

// TruncDecimals2 truncates to two decimal places
func TruncDecimals2(value float64) float64 {
	return TruncDecimals(value, 2)
}

func truncDecimal(value float64, places int) decimal.Decimal {
	if places < 0 {
		places = 0
	}
	return decimal.NewFromFloat(value).Truncate(int32(places))
}
