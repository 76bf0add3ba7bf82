// Package export renders rosters into downloadable documents.
package export

import "fmt"

// Column is one printed column. Width is in millimetres and only used by PDF output; zero shares the page evenly.
type Column struct {
	Header string
	Width  float64
}

// Table is an ordered roster ready for rendering.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

func (t Table) check() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("export requires at least one column")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}

func (t Table) headers() []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = col.Header
	}
	return out
}
