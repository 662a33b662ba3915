package service

import (
	"fmt"
	"strings"
)

// renderHeaderedTable renders a table whose first row is the header. If any
// data row disagrees with the header's column count, the whole table is
// re-rendered with synthetic headers instead of failing the request.
func renderHeaderedTable(rows [][]string) string {
	if len(rows) < 2 {
		return ""
	}

	header := rows[0]
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return renderRawTable(rows)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, " | "))
	b.WriteString("\n")
	for _, row := range rows[1:] {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRawTable renders every row under synthetic col_N headers sized to
// the widest row.
func renderRawTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}

	headers := make([]string, width)
	for i := range headers {
		headers[i] = fmt.Sprintf("col_%d", i+1)
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, " | "))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRows renders rows pipe-delimited with no header treatment, used for
// the full-table view of CSV and XLSX documents.
func renderRows(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}
