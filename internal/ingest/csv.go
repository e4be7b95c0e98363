// Package ingest reads Zabbix CSV exports and parses them into raw rows.
package ingest

import (
	"strings"

	"github.com/fdsmon/shiftrep/internal/model"
)

// ParseRows splits an export into rows and fields. Zabbix quotes every field
// and joins them with commas, so fields are split on `","` and the outer
// quotes of the first and last field stripped. The header row is skipped.
//
// The parse is deliberately lenient: rows with too few fields are kept as-is
// (missing fields read as empty via RawRow.Field) and embedded commas inside
// a field survive because only the quote-comma-quote sequence delimits.
func ParseRows(content string) []model.RawRow {
	lines := strings.Split(content, "\n")
	if len(lines) <= 1 {
		return nil
	}

	rows := make([]model.RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, `","`)
		for i, f := range fields {
			fields[i] = strings.TrimSuffix(strings.TrimPrefix(f, `"`), `"`)
		}
		rows = append(rows, model.RawRow(fields))
	}
	return rows
}
