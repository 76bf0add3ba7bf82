package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSV renders tables as comma separated text with a header row.
type CSV struct{}

// NewCSV builds a CSV renderer.
func NewCSV() *CSV {
	return &CSV{}
}

// ContentType of the rendered document.
func (CSV) ContentType() string { return "text/csv; charset=utf-8" }

// Extension of the rendered document.
func (CSV) Extension() string { return "csv" }

// Render encodes the table.
func (CSV) Render(t Table) ([]byte, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(t.headers()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
