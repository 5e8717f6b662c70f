package simulate

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		values  [][]float64
	}{
		{"no columns", nil, nil},
		{"name count mismatch", []string{"a", "b"}, [][]float64{{1}}},
		{"no rows", []string{"a"}, [][]float64{{}}},
		{"ragged", []string{"a", "b"}, [][]float64{{1, 2}, {1}}},
		{"duplicate", []string{"a", "a"}, [][]float64{{1}, {2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.columns, tt.values)
			assert.Error(t, err)
		})
	}
}

func TestTable_Access(t *testing.T) {
	src := []float64{1, 2, 3}
	tbl, err := NewTable([]string{"a", "b"}, [][]float64{src, {4, 5, 6}})
	require.NoError(t, err)

	src[0] = 99
	col, ok := tbl.Column("a")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, col)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)

	assert.Equal(t, []float64{2, 5}, tbl.Row(1))
	assert.Equal(t, 6.0, tbl.Value(2, "b"))
	assert.True(t, math.IsNaN(tbl.Value(0, "missing")))
}

func TestTable_JSONWritesNaNAsNull(t *testing.T) {
	tbl, err := NewTable([]string{"growth", "level"}, [][]float64{{math.NaN(), 1.5}, {100, 101}})
	require.NoError(t, err)

	raw, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["growth","level"],"rows":[[null,100],[1.5,101]]}`, string(raw))

	var back Table
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, tbl.Equal(&back))
	assert.True(t, math.IsNaN(back.Value(0, "growth")))
}

func TestTable_UnmarshalRejectsRaggedRows(t *testing.T) {
	var tbl Table
	err := json.Unmarshal([]byte(`{"columns":["a","b"],"rows":[[1]]}`), &tbl)
	assert.Error(t, err)
}
