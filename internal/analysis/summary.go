package analysis

import (
	"math"

	"macro-stress/internal/simulate"

	"gonum.org/v1/gonum/floats"
)

// VariableSummary is a per-column digest of a projection.
// Undefined (NaN) periods are ignored; a column with no defined value has
// NaN statistics and periods of -1.
type VariableSummary struct {
	Name string

	Min       float64
	MinPeriod int
	Max       float64
	MaxPeriod int
	Mean      float64

	First float64
	Last  float64
	// Change is Last minus the first defined value.
	Change float64
}

// Summarize digests every column of t, in column order.
func Summarize(t *simulate.Table) []VariableSummary {
	cols := t.Columns()
	out := make([]VariableSummary, 0, len(cols))
	for _, name := range cols {
		col, _ := t.Column(name)
		out = append(out, summarizeColumn(name, col))
	}
	return out
}

func summarizeColumn(name string, col []float64) VariableSummary {
	s := VariableSummary{
		Name:      name,
		Min:       math.NaN(),
		MinPeriod: -1,
		Max:       math.NaN(),
		MaxPeriod: -1,
		Mean:      math.NaN(),
		First:     col[0],
		Last:      col[len(col)-1],
		Change:    math.NaN(),
	}

	defined := make([]float64, 0, len(col))
	periods := make([]int, 0, len(col))
	for i, v := range col {
		if math.IsNaN(v) {
			continue
		}
		defined = append(defined, v)
		periods = append(periods, i)
	}
	if len(defined) == 0 {
		return s
	}

	lo := floats.MinIdx(defined)
	hi := floats.MaxIdx(defined)
	s.Min, s.MinPeriod = defined[lo], periods[lo]
	s.Max, s.MaxPeriod = defined[hi], periods[hi]
	s.Mean = floats.Sum(defined) / float64(len(defined))
	s.Change = s.Last - defined[0]
	return s
}
