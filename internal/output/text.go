// Package output renders the report model as the shift-report message or as
// a PDF document, and handles writing either to its destination.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fdsmon/shiftrep/internal/duration"
	"github.com/fdsmon/shiftrep/internal/model"
)

// sectionLabels are the text-report section headings. Temperature and Other
// are printed verbatim.
var sectionLabels = map[model.Category]string{
	model.CategorySpace:  "Space is critically low",
	model.CategoryMemory: "High memory utilization",
}

// RenderText produces the complete shift-report message: greeting header,
// period line, the current-shift sections, the follow-up sections under
// "Follow Up Report:", and the closing signature.
func RenderText(r *model.Report) string {
	var b strings.Builder
	b.WriteString(r.Header)
	b.WriteString("\n")
	b.WriteString(r.Period)
	b.WriteString("\n\n")

	writeGrouping(&b, r.Current)
	b.WriteString("Follow Up Report:\n\n")
	writeGrouping(&b, r.FollowUp)

	b.WriteString("Terima kasih\nFDS Monitoring - ")
	b.WriteString(r.Operator)
	return b.String()
}

// writeGrouping emits one section per non-empty category, in fixed order.
func writeGrouping(b *strings.Builder, g model.Grouping) {
	for _, cat := range model.CategoryOrder {
		events := g[cat]
		if len(events) == 0 {
			continue
		}
		label, ok := sectionLabels[cat]
		if !ok {
			label = string(cat)
		}
		b.WriteString(label)
		b.WriteString("\n")
		for _, e := range events {
			b.WriteString(entryLine(e))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

// entryLine formats one event the way the report message expects it.
func entryLine(e model.Event) string {
	return fmt.Sprintf("- %s  Durasi: %s (start %s)  (%s)  *%s*",
		e.Host, duration.Format(e.DurationMs), e.StartDisplay(), e.TicketID, e.Status.Label())
}

// WriteText writes the rendered report to path, or to stdout when path is
// "-" or empty.
func WriteText(r *model.Report, path string) error {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.WriteString(w, RenderText(r)+"\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
