package model

import "github.com/fdsmon/shiftrep/internal/duration"

// Grouping maps each category to its events in encounter order.
type Grouping map[Category][]Event

// Add appends an event to its category list.
func (g Grouping) Add(e Event) {
	g[e.Category] = append(g[e.Category], e)
}

// Empty reports whether the grouping holds no events at all.
func (g Grouping) Empty() bool {
	for _, events := range g {
		if len(events) > 0 {
			return false
		}
	}
	return true
}

// Report is the complete output document: grouped events plus the header
// texts the renderers need. Built once per invocation, immutable thereafter.
type Report struct {
	Header   string // shift greeting line
	Period   string // formatted shift date range
	Operator string // display-only operator name

	Current  Grouping // events running for less than 24h
	FollowUp Grouping // events running for 24h or longer
	All      Grouping // every event in encounter order, for the PDF tables
}

// NewReport creates a Report with empty groupings.
func NewReport(header, period, operator string) *Report {
	return &Report{
		Header:   header,
		Period:   period,
		Operator: operator,
		Current:  make(Grouping),
		FollowUp: make(Grouping),
		All:      make(Grouping),
	}
}

// TableRow is one PDF table line: Host, Duration, Time Start, Ticket ID, Status.
type TableRow [5]string

// TableData flattens a grouping into per-category table rows, categories in
// fixed order, events in encounter order. Empty categories are omitted.
func TableData(g Grouping) map[Category][]TableRow {
	tables := make(map[Category][]TableRow)
	for _, cat := range CategoryOrder {
		for _, e := range g[cat] {
			tables[cat] = append(tables[cat], TableRow{
				e.Host,
				duration.Format(e.DurationMs),
				e.StartDisplay(),
				e.TicketID,
				e.Status.Label(),
			})
		}
	}
	return tables
}
