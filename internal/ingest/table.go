// Package ingest reads the raw CSV and XLSX extracts into an in-memory
// Table with schema-checked, name-based column access. Downstream
// normalizers never index columns by position, so a reordered input file
// fails loudly with a MissingColumnError instead of silently
// misattributing columns.
package ingest

import "strings"

// Table is a raw input table: a header row plus data rows, all cells as
// strings. Column lookup is case-insensitive.
type Table struct {
	Source string
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table and its column index.
func NewTable(source string, header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[normalizeColumn(col)] = i
	}
	return &Table{Source: source, Header: header, Rows: rows, index: index}
}

// Column returns the index of a named column, or false if absent.
func (t *Table) Column(name string) (int, bool) {
	idx, ok := t.index[normalizeColumn(name)]
	return idx, ok
}

// Get returns a cell by column index, tolerating ragged rows.
func (t *Table) Get(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Cell returns a cell by column name.
func (t *Table) Cell(row []string, name string) string {
	idx, ok := t.Column(name)
	if !ok {
		return ""
	}
	return t.Get(row, idx)
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
