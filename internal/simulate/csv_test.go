package simulate

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV(t *testing.T) {
	tbl, err := NewTable([]string{"real_gdp_growth", "policy_rate"}, [][]float64{
		{math.NaN(), 2.5},
		{4.4, 4.25},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, tbl))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "period,real_gdp_growth,policy_rate", lines[0])
	assert.Equal(t, "0,,4.400000", lines[1])
	assert.Equal(t, "1,2.500000,4.250000", lines[2])
}

func TestWriteTableCSV(t *testing.T) {
	tbl := simulateTable(t, baselineInputs(9))
	path := filepath.Join(t.TempDir(), "projection.csv")

	require.NoError(t, WriteTableCSV(path, tbl))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "period,unemployment_rate,"))
}
