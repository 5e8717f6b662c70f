package simulate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Table is the simulation output: one row per period, one named column per
// series. Values are stored row-major in a dense matrix.
type Table struct {
	columns []string
	index   map[string]int
	data    *mat.Dense
}

// NewTable assembles equal-length series into a table. Values are copied.
func NewTable(columns []string, values [][]float64) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.New("table has no columns")
	}
	if len(columns) != len(values) {
		return nil, fmt.Errorf("got %d column names for %d series", len(columns), len(values))
	}
	rows := len(values[0])
	if rows == 0 {
		return nil, errors.New("table has no rows")
	}

	index := make(map[string]int, len(columns))
	for j, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		if len(values[j]) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", name, len(values[j]), rows)
		}
		index[name] = j
	}

	data := mat.NewDense(rows, len(columns), nil)
	for j, col := range values {
		data.SetCol(j, col)
	}

	names := make([]string, len(columns))
	copy(names, columns)
	return &Table{columns: names, index: index, data: data}, nil
}

// Rows returns the number of periods.
func (t *Table) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Column returns a copy of the named series.
func (t *Table) Column(name string) ([]float64, bool) {
	j, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return mat.Col(nil, j, t.data), true
}

// Row returns a copy of one period, in column order.
func (t *Table) Row(period int) []float64 {
	return mat.Row(nil, period, t.data)
}

// Value returns one cell; NaN when the column does not exist.
func (t *Table) Value(period int, name string) float64 {
	j, ok := t.index[name]
	if !ok {
		return math.NaN()
	}
	return t.data.At(period, j)
}

// Equal reports whether both tables have the same columns and bitwise-equal
// values, treating NaN as equal to NaN.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.columns) != len(o.columns) || t.Rows() != o.Rows() {
		return false
	}
	for j := range t.columns {
		if t.columns[j] != o.columns[j] {
			return false
		}
	}
	rows, cols := t.data.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a, b := t.data.At(i, j), o.data.At(i, j)
			if math.IsNaN(a) && math.IsNaN(b) {
				continue
			}
			if a != b {
				return false
			}
		}
	}
	return true
}

// cell marshals non-finite values as null.
type cell float64

func (c cell) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (c *cell) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		*c = cell(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return err
	}
	*c = cell(f)
	return nil
}

type tableJSON struct {
	Columns []string `json:"columns"`
	Rows    [][]cell `json:"rows"`
}

func (t *Table) MarshalJSON() ([]byte, error) {
	rows, cols := t.data.Dims()
	out := tableJSON{Columns: t.columns, Rows: make([][]cell, rows)}
	for i := 0; i < rows; i++ {
		row := make([]cell, cols)
		for j := 0; j < cols; j++ {
			row[j] = cell(t.data.At(i, j))
		}
		out.Rows[i] = row
	}
	return json.Marshal(out)
}

func (t *Table) UnmarshalJSON(raw []byte) error {
	var in tableJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return err
	}
	values := make([][]float64, len(in.Columns))
	for j := range values {
		values[j] = make([]float64, len(in.Rows))
	}
	for i, row := range in.Rows {
		if len(row) != len(in.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(in.Columns))
		}
		for j, v := range row {
			values[j][i] = float64(v)
		}
	}
	decoded, err := NewTable(in.Columns, values)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}
