package pipeline

import (
	"log/slog"
	"time"

	"github.com/fdsmon/shiftrep/internal/ingest"
	"github.com/fdsmon/shiftrep/internal/model"
	"github.com/fdsmon/shiftrep/internal/shift"
)

// Build runs the whole pipeline over the merged sources and returns the
// grouped report model. Sources must already be in declared order; rows are
// streamed through the filter source by source, so the first occurrence of a
// duplicate key across files is the one kept.
//
// The dedup set lives and dies inside this call — there is no process-wide
// state, and repeated Build calls over the same inputs yield the same report.
func Build(sources []ingest.Source, shiftCode string, date time.Time, operator string) (*model.Report, error) {
	period, err := shift.Range(shiftCode, date)
	if err != nil {
		return nil, err
	}

	report := model.NewReport(shift.Header(shiftCode), period, operator)

	seen := make(map[model.Key]struct{})
	var kept, dropped int
	for _, src := range sources {
		for _, row := range src.Rows {
			event, ok := accept(row, seen)
			if !ok {
				dropped++
				continue
			}
			kept++
			report.All.Add(event)
			if FollowUp(event.DurationMs) {
				report.FollowUp.Add(event)
			} else {
				report.Current.Add(event)
			}
		}
	}

	slog.Debug("aggregation complete",
		"sources", len(sources), "kept", kept, "dropped", dropped)
	return report, nil
}
