package util

import (
	"strconv"
	"strings"
	"time"
)

const (
	decimalValue = 100
	groupSize    = 3
)

// FormatMoney renders an amount in cents using the given separators.
// Examples: 1234567 -> "12.345,67", -99 -> "-0,99"
func FormatMoney(value int64, thousand, decimal string) string {
	var b strings.Builder

	// unsigned magnitude, math.MinInt64 has no int64 negation
	magnitude := uint64(value)
	if value < 0 {
		b.WriteString("-")
		magnitude = -magnitude
	}
	units := magnitude / decimalValue
	cents := magnitude % decimalValue

	digits := strconv.FormatUint(units, 10)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%groupSize == 0 {
			b.WriteString(thousand)
		}
		b.WriteRune(d)
	}

	b.WriteString(decimal)
	if cents < 10 {
		b.WriteString("0")
	}
	b.WriteString(strconv.FormatUint(cents, 10))

	return b.String()
}

// FormatTimestamp renders milliseconds since the unix epoch as a UTC date.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05.000")
}
