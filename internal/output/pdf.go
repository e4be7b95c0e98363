package output

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/fdsmon/shiftrep/internal/model"
	"github.com/fdsmon/shiftrep/internal/shift"
)

// pdfTitles are the table headings on the PDF summary; longer than the text
// report's section labels because the document spells out the trigger
// thresholds.
var pdfTitles = map[model.Category]string{
	model.CategorySpace:       "Space is Critically Low (Used>90%)",
	model.CategoryMemory:      "Windows: High Memory Utilization (>90% for 5m)",
	model.CategoryTemperature: "CPU Temp: Temperature is above warning threshold: >70°",
	model.CategoryOther:       "Other Issues",
}

// tableHeader and column widths (mm) for the five-column grid tables.
var (
	tableHeader = [5]string{"Host", "Duration", "Time Start", "Ticket ID", "Status"}
	colWidths   = [5]float64{52, 38, 34, 28, 30}
)

const rowHeight = 8.0

// WritePDF renders the report as the issue-summary document and writes it
// to path: centered Times title, period/operator subheader, then one grid
// table per non-empty category in fixed order.
func WritePDF(r *model.Report, path string) error {
	doc := fpdf.New("P", "mm", "A4", "")
	// Core Times fonts are cp1252; the degree sign in the temperature title
	// needs translating from UTF-8.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Times", "B", 14)
	doc.CellFormat(0, 8, "IFG Zabbix Monitoring Issue Summary", "", 1, "C", false, 0, "")

	doc.SetFont("Times", "B", 11)
	doc.CellFormat(0, 6, "Period: "+r.Period, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 6, "Created By: FDS Monitoring - "+shift.FullName(r.Operator), "", 1, "C", false, 0, "")
	doc.Ln(4)

	tables := model.TableData(r.All)
	for _, cat := range model.CategoryOrder {
		rows := tables[cat]
		if len(rows) == 0 {
			continue
		}
		writeTable(doc, tr(pdfTitles[cat]), rows)
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// writeTable emits one category title and its bordered grid table.
func writeTable(doc *fpdf.Fpdf, title string, rows []model.TableRow) {
	doc.SetFont("Times", "B", 11)
	doc.CellFormat(0, 7, title, "", 1, "L", false, 0, "")

	doc.SetFont("Times", "B", 10)
	for i, h := range tableHeader {
		doc.CellFormat(colWidths[i], rowHeight, h, "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Times", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			align := "C"
			if i == 0 {
				align = "L" // host column reads better left-aligned
			}
			doc.CellFormat(colWidths[i], rowHeight, cell, "1", 0, align, false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(6)
}
