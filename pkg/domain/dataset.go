package domain

import "fmt"

// Field is one named cell of a record.
type Field struct {
	Name  string
	Value string
}

// Dataset is an ordered table of string cells.
// Every row holds exactly one cell per column.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewDataset builds a dataset from a header and rows. Short rows are padded
// with empty cells; a row wider than the header is an error.
func NewDataset(columns []string, rows [][]string) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataset needs at least one column")
	}
	ds := &Dataset{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]string, 0, len(rows)),
	}
	for i, name := range ds.columns {
		if _, dup := ds.index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		ds.index[name] = i
	}
	for i, row := range rows {
		if len(row) > len(ds.columns) {
			return nil, fmt.Errorf("row %d has %d cells but the header has %d", i+1, len(row), len(ds.columns))
		}
		cells := make([]string, len(ds.columns))
		copy(cells, row)
		ds.rows = append(ds.rows, cells)
	}
	return ds, nil
}

// NumRows returns the number of records.
func (d *Dataset) NumRows() int { return len(d.rows) }

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int { return len(d.columns) }

// Columns returns a copy of the column order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// HasColumn reports whether name is a column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnIndex returns the position of name, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	if i, ok := d.index[name]; ok {
		return i
	}
	return -1
}

// Cell returns the value at [row, column].
func (d *Dataset) Cell(row int, column string) (string, error) {
	col, err := d.locate(row, column)
	if err != nil {
		return "", err
	}
	return d.rows[row][col], nil
}

// SetCell writes value at [row, column].
func (d *Dataset) SetCell(row int, column, value string) error {
	col, err := d.locate(row, column)
	if err != nil {
		return err
	}
	d.rows[row][col] = value
	return nil
}

// AddColumn appends a column holding "" in every row.
func (d *Dataset) AddColumn(name string) error {
	if d.HasColumn(name) {
		return fmt.Errorf("column %q already exists", name)
	}
	d.index[name] = len(d.columns)
	d.columns = append(d.columns, name)
	for i := range d.rows {
		d.rows[i] = append(d.rows[i], "")
	}
	return nil
}

// RemoveColumn drops a column from every row.
func (d *Dataset) RemoveColumn(name string) error {
	col, ok := d.index[name]
	if !ok {
		return fmt.Errorf("unknown column %q", name)
	}
	d.columns = append(d.columns[:col], d.columns[col+1:]...)
	for i := range d.rows {
		d.rows[i] = append(d.rows[i][:col], d.rows[i][col+1:]...)
	}
	d.index = make(map[string]int, len(d.columns))
	for i, c := range d.columns {
		d.index[c] = i
	}
	return nil
}

// Record returns the ordered fields of one row.
func (d *Dataset) Record(row int) ([]Field, error) {
	if row < 0 || row >= len(d.rows) {
		return nil, fmt.Errorf("row %d out of range [0, %d)", row, len(d.rows))
	}
	fields := make([]Field, len(d.columns))
	for i, name := range d.columns {
		fields[i] = Field{Name: name, Value: d.rows[row][i]}
	}
	return fields, nil
}

// Rows returns a deep copy of all rows in column order.
func (d *Dataset) Rows() [][]string {
	out := make([][]string, len(d.rows))
	for i, row := range d.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Clone returns an independent copy, used as the read-only snapshot for saves.
func (d *Dataset) Clone() *Dataset {
	clone := &Dataset{
		columns: d.Columns(),
		index:   make(map[string]int, len(d.index)),
		rows:    d.Rows(),
	}
	for k, v := range d.index {
		clone.index[k] = v
	}
	return clone
}

func (d *Dataset) locate(row int, column string) (int, error) {
	if row < 0 || row >= len(d.rows) {
		return 0, fmt.Errorf("row %d out of range [0, %d)", row, len(d.rows))
	}
	col, ok := d.index[column]
	if !ok {
		return 0, fmt.Errorf("unknown column %q", column)
	}
	return col, nil
}
