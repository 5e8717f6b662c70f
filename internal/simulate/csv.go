package simulate

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
)

// WriteTableCSV writes t to path, one row per period.
func WriteTableCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeCSV(f, t); err != nil {
		return err
	}
	return f.Close()
}

// EncodeCSV writes a "period" column followed by every table column.
// Undefined values are written as empty cells.
func EncodeCSV(out io.Writer, t *Table) error {
	w := csv.NewWriter(out)

	header := append([]string{"period"}, t.Columns()...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < t.Rows(); i++ {
		values := t.Row(i)
		row := make([]string, 0, len(values)+1)
		row = append(row, strconv.Itoa(i))
		for _, v := range values {
			row = append(row, fmtFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', 6, 64)
}
