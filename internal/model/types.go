// Package model defines the data types flowing through the report pipeline:
// raw CSV rows, filtered events, and the grouped report consumed by renderers.
package model

import "time"

// Fixed Zabbix export column layout. The first row of every export is a
// header and is always skipped by the parser.
const (
	ColStart    = 1
	ColStatus   = 3
	ColHost     = 4
	ColTrigger  = 5
	ColDuration = 7
	ColTicket   = 10
)

// RawRow is one parsed CSV row, fields positioned by the Col* indices.
type RawRow []string

// Field returns the field at index i, or "" when the row is too short.
// Zabbix exports occasionally truncate trailing columns; a missing field
// degrades to empty rather than failing the row.
func (r RawRow) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Status is the resolution state of an event.
type Status int

const (
	Unresolved Status = iota
	Resolved
)

// Label returns the report label for the status.
func (s Status) Label() string {
	if s == Resolved {
		return "Resolved"
	}
	return "Belum Resolved"
}

// Category is one of the four fixed problem groups.
type Category string

const (
	CategorySpace       Category = "Space"
	CategoryMemory      Category = "Memory"
	CategoryTemperature Category = "Temperature"
	CategoryOther       Category = "Other"
)

// CategoryOrder is the fixed iteration order for report sections and tables.
var CategoryOrder = []Category{CategorySpace, CategoryMemory, CategoryTemperature, CategoryOther}

// Key is the composite identity used to collapse duplicate rows across
// input files. Start is the raw start-time field, not a parsed timestamp,
// so two exports of the same event always compare equal.
type Key struct {
	Host    string
	Start   string
	Trigger string
}

// Event is the unit the pipeline operates on: one accepted, classified row.
// Events are never mutated after construction.
type Event struct {
	Host       string
	StartRaw   string
	Start      time.Time // zero when StartRaw could not be parsed
	DurationMs int64
	Status     Status
	Category   Category
	TicketID   string // "N/A" when the ticket field carries no IFG reference
}

// StartDisplay renders the event start time in the report's numeric local
// format. Unparseable start times fall back to the raw field.
func (e Event) StartDisplay() string {
	if e.Start.IsZero() {
		return e.StartRaw
	}
	return e.Start.Format("1/2/2006, 15:04")
}

// startLayouts are the accepted start-time formats, tried in order.
var startLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseStart parses a Zabbix export start-time field in local time.
// Returns the zero time when no layout matches.
func ParseStart(s string) time.Time {
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
