// Package pipeline turns raw export rows into the grouped report model:
// filtering, deduplication, classification, and aggregation.
package pipeline

import (
	"regexp"

	"github.com/fdsmon/shiftrep/internal/duration"
	"github.com/fdsmon/shiftrep/internal/model"
)

// minDurationMs is the inclusion threshold: problems shorter than one hour
// never make it into the report.
const minDurationMs = 3_600_000

var ticketPattern = regexp.MustCompile(`IFG-\d+`)

// accept decides whether a raw row becomes an event. The seen set is owned
// by the calling Build invocation and records dedup keys across all merged
// sources; rejected duplicates are dropped silently.
func accept(row model.RawRow, seen map[model.Key]struct{}) (model.Event, bool) {
	status := row.Field(model.ColStatus)
	if status != "PROBLEM" && status != "RESOLVED" {
		return model.Event{}, false
	}

	ms := duration.Parse(row.Field(model.ColDuration))
	if ms < minDurationMs {
		return model.Event{}, false
	}

	key := model.Key{
		Host:    row.Field(model.ColHost),
		Start:   row.Field(model.ColStart),
		Trigger: row.Field(model.ColTrigger),
	}
	if _, dup := seen[key]; dup {
		return model.Event{}, false
	}
	seen[key] = struct{}{}

	st := model.Unresolved
	if status == "RESOLVED" {
		st = model.Resolved
	}

	return model.Event{
		Host:       key.Host,
		StartRaw:   key.Start,
		Start:      model.ParseStart(key.Start),
		DurationMs: ms,
		Status:     st,
		Category:   Classify(key.Trigger),
		TicketID:   ticketID(row.Field(model.ColTicket)),
	}, true
}

// ticketID extracts the first IFG ticket reference from the free-text field,
// defaulting to "N/A" when none is present.
func ticketID(s string) string {
	if m := ticketPattern.FindString(s); m != "" {
		return m
	}
	return "N/A"
}
