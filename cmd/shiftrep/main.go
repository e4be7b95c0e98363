// shiftrep — Zabbix shift-report generator for IFG monitoring.
//
// Reads up to two Zabbix problem-export CSVs, deduplicates and filters the
// events, groups them by category and duration bucket, and renders the
// result as the shift-report message or as a PDF issue summary.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdsmon/shiftrep/internal/ingest"
	"github.com/fdsmon/shiftrep/internal/logging"
	"github.com/fdsmon/shiftrep/internal/model"
	"github.com/fdsmon/shiftrep/internal/output"
	"github.com/fdsmon/shiftrep/internal/pipeline"
)

var (
	version = "0.1.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftrep",
		Short: "Zabbix shift-report generator",
		Long: `shiftrep — one-shot shift report generator for Zabbix problem exports.

Takes one or two CSV exports, drops duplicates and sub-hour problems,
groups what remains into Space / Memory / Temperature / Other and into
current-shift vs follow-up (>= 24h) buckets, and renders either the
plain-text shift message or a PDF issue summary.`,
		Version: version,
	}

	// --- generate command ---
	var (
		genCSVs     []string
		genShift    string
		genDate     string
		genOperator string
		genOutput   string
		genVerbose  bool
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the plain-text shift report",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(genVerbose)

			report, err := buildReport(cmd.Context(), genCSVs, genShift, genDate, genOperator)
			if err != nil {
				return err
			}
			return output.WriteText(report, genOutput)
		},
	}

	addInputFlags(generateCmd, &genCSVs, &genShift, &genDate, &genOperator)
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "-", "Output file path (- for stdout)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Enable debug logging")

	// --- pdf command ---
	var (
		pdfCSVs     []string
		pdfShift    string
		pdfDate     string
		pdfOperator string
		pdfOutput   string
		pdfVerbose  bool
	)

	pdfCmd := &cobra.Command{
		Use:   "pdf",
		Short: "Generate the PDF issue summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(pdfVerbose)

			report, err := buildReport(cmd.Context(), pdfCSVs, pdfShift, pdfDate, pdfOperator)
			if err != nil {
				return err
			}

			path := pdfOutput
			if path == "" {
				path = fmt.Sprintf("Zabbix_Report_%s.pdf", dateOrToday(pdfDate).Format("2006-01-02"))
			}
			return output.WritePDF(report, path)
		},
	}

	addInputFlags(pdfCmd, &pdfCSVs, &pdfShift, &pdfDate, &pdfOperator)
	pdfCmd.Flags().StringVarP(&pdfOutput, "output", "o", "", "Output PDF path (default Zabbix_Report_<date>.pdf)")
	pdfCmd.Flags().BoolVarP(&pdfVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd, pdfCmd, mcpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlags registers the pipeline input flags shared by generate and pdf.
func addInputFlags(cmd *cobra.Command, csvs *[]string, shiftCode, date, operator *string) {
	cmd.Flags().StringSliceVar(csvs, "csv", nil, "Zabbix CSV export path (repeat for a second file)")
	cmd.Flags().StringVarP(shiftCode, "shift", "s", "", "Shift code: A, C, M or D")
	cmd.Flags().StringVarP(date, "date", "d", "", "Report date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(operator, "operator", "", "Operator name for the report signature")
	_ = cmd.MarkFlagRequired("csv")
	_ = cmd.MarkFlagRequired("shift")
}

// buildReport runs the full pipeline for the CLI: read, merge, aggregate.
func buildReport(ctx context.Context, csvs []string, shiftCode, date, operator string) (*model.Report, error) {
	if len(csvs) > 2 {
		return nil, fmt.Errorf("at most two CSV files are supported, got %d", len(csvs))
	}

	sources, err := ingest.ReadSources(ctx, csvs)
	if err != nil {
		return nil, err
	}

	return pipeline.Build(sources, shiftCode, dateOrToday(date), operator)
}

// dateOrToday parses a YYYY-MM-DD flag value in local time, defaulting to
// today. An unparseable value also falls back to today, matching the web
// form's behavior of pre-filling the current date.
func dateOrToday(s string) time.Time {
	if s != "" {
		if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
			return d
		}
	}
	return time.Now()
}
