package domain

import (
	"math"
	"strings"
)

// Row holds one transaction keyed by column name.
type Row map[string]any

// FieldMapping maps canonical internal field names to the column names
// used by the source data, e.g. {"vendor": "Supplier"}.
type FieldMapping map[string]string

// Table is an ordered collection of rows. Column order is significant:
// the detail and data-quality sheets emit columns in table order.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(columns ...string) *Table {
	t := &Table{columns: make([]string, len(columns))}
	copy(t.columns, columns)
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow adds a row to the table. Keys that are not declared columns
// are kept in the row but never iterated.
func (t *Table) AppendRow(r Row) {
	t.rows = append(t.rows, r)
}

// Value returns the cell at row i, column col, or nil if absent.
func (t *Table) Value(i int, col string) any {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i][col]
}

// SetValue sets the cell at row i, column col.
func (t *Table) SetValue(i int, col string, v any) {
	if i < 0 || i >= len(t.rows) {
		return
	}
	if t.rows[i] == nil {
		t.rows[i] = Row{}
	}
	t.rows[i][col] = v
}

// Column returns all values of a column in row order.
// The second result is false when the column does not exist.
func (t *Table) Column(name string) ([]any, bool) {
	if !t.HasColumn(name) {
		return nil, false
	}
	values := make([]any, len(t.rows))
	for i, r := range t.rows {
		values[i] = r[name]
	}
	return values, true
}

// Copy returns a deep copy of the table. Mutating the copy never
// affects the original, so callers keep ownership of their input.
func (t *Table) Copy() *Table {
	c := NewTable(t.columns...)
	c.rows = make([]Row, len(t.rows))
	for i, r := range t.rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		c.rows[i] = nr
	}
	return c
}

// RenameColumns returns a new table with columns renamed according to
// oldToNew. Entries whose old name is not a column are silently ignored.
func (t *Table) RenameColumns(oldToNew map[string]string) *Table {
	renamed := t.Copy()
	for i, col := range renamed.columns {
		if newName, ok := oldToNew[col]; ok {
			renamed.columns[i] = newName
			for _, r := range renamed.rows {
				if v, exists := r[col]; exists {
					delete(r, col)
					r[newName] = v
				}
			}
		}
	}
	return renamed
}

// invalidDate is the sentinel type for date cells whose raw value could
// not be parsed. It is distinct from a nil cell, which means no date
// was supplied at all.
type invalidDate struct{}

func (invalidDate) String() string { return "invalid date" }

// InvalidDate marks an unparseable date cell after normalization.
var InvalidDate = invalidDate{}

// IsNull reports whether a cell value counts as missing for the
// data-quality assessment: nil, the invalid-date sentinel, NaN, or a
// blank string.
func IsNull(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case invalidDate:
		return true
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	case string:
		return strings.TrimSpace(val) == ""
	}
	return false
}
