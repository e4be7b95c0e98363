// Package shift maps shift codes (A, C, M, D) to absolute time windows and
// carries the fixed report texts tied to shifts and operators.
package shift

import (
	"fmt"
	"time"
)

// window describes one row of the fixed shift table.
type window struct {
	startHour int
	endHour   int
	nextDay   bool // end falls on the following calendar day
	fullDay   bool // end minute/second are :59:59
}

var windows = map[string]window{
	"A": {startHour: 6, endHour: 15},
	"C": {startHour: 14, endHour: 23},
	"M": {startHour: 22, endHour: 7, nextDay: true},
	"D": {startHour: 0, endHour: 23, fullDay: true},
}

// Window computes the absolute start and end of the given shift on the given
// calendar date, in the date's location. Unknown codes are a caller error.
func Window(code string, date time.Time) (start, end time.Time, err error) {
	w, ok := windows[code]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown shift %q (want A, C, M or D)", code)
	}

	y, m, d := date.Date()
	loc := date.Location()
	start = time.Date(y, m, d, w.startHour, 0, 0, 0, loc)

	endMin, endSec := 0, 0
	if w.fullDay {
		endMin, endSec = 59, 59
	}
	end = time.Date(y, m, d, w.endHour, endMin, endSec, 0, loc)
	if w.nextDay {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// Range formats the shift window as "DD/MM/YYYY HH:MM - DD/MM/YYYY HH:MM".
func Range(code string, date time.Time) (string, error) {
	start, end, err := Window(code, date)
	if err != nil {
		return "", err
	}
	const layout = "02/01/2006 15:04"
	return start.Format(layout) + " - " + end.Format(layout), nil
}
