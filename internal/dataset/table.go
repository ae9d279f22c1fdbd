package dataset

import "fmt"

// Table is a column-oriented view of the raw results CSV. The typed
// records used for rendering are extracted once at load time, so edits
// here (column drops) never invalidate a later draw.
type Table struct {
	header []string
	rows   [][]string
}

// Columns returns a copy of the current column names.
func (t *Table) Columns() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)
	return out
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.rows) }

// columnIndex returns the position of name in the header, or -1.
func (t *Table) columnIndex(name string) int {
	for i, h := range t.header {
		if h == name {
			return i
		}
	}
	return -1
}

// dropColumn removes the named column from the header and every row.
func (t *Table) dropColumn(name string) error {
	idx := t.columnIndex(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	t.header = append(t.header[:idx], t.header[idx+1:]...)
	for i, row := range t.rows {
		t.rows[i] = append(row[:idx], row[idx+1:]...)
	}
	return nil
}
