// Package models defines data structures for loaded expedition records.
package models

import (
	"encoding/json"
)

// Cell is a single cell value: int64, float64, string, or nil when empty.
type Cell = interface{}

// Row is one data row, aligned to Table.Columns.
type Row []Cell

// Table represents a header row plus data rows read from a sheet or a delimited file.
type Table struct {
	// Columns holds the unique column names in source order.
	Columns []string
	// Rows holds data rows in source order. Each row has len(Columns) cells.
	Rows []Row
	// Range is the A1-style source block (e.g. "A4:C7") for sheet-backed tables.
	Range string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumns reports whether every named column is present.
func (t *Table) HasColumns(names ...string) bool {
	for _, n := range names {
		if t.ColumnIndex(n) < 0 {
			return false
		}
	}
	return true
}

// Value returns the cell at row i for the named column.
// ok is false when the row or column does not exist.
func (t *Table) Value(i int, column string) (Cell, bool) {
	if i < 0 || i >= len(t.Rows) {
		return nil, false
	}
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, false
	}
	return t.Rows[i][idx], true
}

// Record returns row i as a column name to value map.
func (t *Table) Record(i int) map[string]Cell {
	row := t.Rows[i]
	rec := make(map[string]Cell, len(t.Columns))
	for j, c := range t.Columns {
		rec[c] = row[j]
	}
	return rec
}

// Records returns every row as a column name to value map.
func (t *Table) Records() []map[string]Cell {
	recs := make([]map[string]Cell, len(t.Rows))
	for i := range t.Rows {
		recs[i] = t.Record(i)
	}
	return recs
}

// tableDoc is the serialized form of a Table.
type tableDoc struct {
	Columns []string          `json:"columns" yaml:"columns"`
	Rows    []map[string]Cell `json:"rows" yaml:"rows"`
	Range   string            `json:"range,omitempty" yaml:"range,omitempty"`
}

func (t *Table) doc() tableDoc {
	return tableDoc{
		Columns: t.Columns,
		Rows:    t.Records(),
		Range:   t.Range,
	}
}

// MarshalJSON encodes the table as columns plus one object per row.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

// MarshalYAML encodes the table the same way as MarshalJSON.
func (t *Table) MarshalYAML() (interface{}, error) {
	return t.doc(), nil
}
