// Package duration converts between Zabbix compact duration strings
// (e.g. "1d 2h 30m") and millisecond counts.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
)

// Millisecond scale per unit. "M" is a 30-day month; matching is
// case-sensitive so it never collides with "m" (minute).
const (
	msSecond = int64(1000)
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msMonth  = 30 * msDay
)

// units are scanned independently: each one is searched for anywhere in the
// input, so token order does not matter and missing units contribute zero.
var units = []struct {
	re    *regexp.Regexp
	scale int64
}{
	{regexp.MustCompile(`(\d+)M`), msMonth},
	{regexp.MustCompile(`(\d+)d`), msDay},
	{regexp.MustCompile(`(\d+)h`), msHour},
	{regexp.MustCompile(`(\d+)m`), msMinute},
	{regexp.MustCompile(`(\d+)s`), msSecond},
}

// Parse converts a compact duration string to milliseconds. The parse is
// lenient and never fails: unrecognized text is ignored and an input with
// no tokens yields 0.
func Parse(s string) int64 {
	var ms int64
	for _, u := range units {
		m := u.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		ms += n * u.scale
	}
	return ms
}

// Format renders a millisecond count as a human-readable Indonesian duration.
// Decomposition cascades months -> days -> hours -> minutes, each stage
// consuming the remainder of the previous.
func Format(ms int64) string {
	months := ms / msMonth
	days := (ms % msMonth) / msDay
	hours := (ms % msDay) / msHour
	minutes := (ms % msHour) / msMinute

	switch {
	case ms < msDay:
		return fmt.Sprintf("%d jam %d menit", hours, minutes)
	case months > 0:
		return fmt.Sprintf("%d bulan %d hari %d jam", months, days, hours)
	default:
		return fmt.Sprintf("%d hari %d jam %d menit", days, hours, minutes)
	}
}
