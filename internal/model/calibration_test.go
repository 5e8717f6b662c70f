package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalibration(t *testing.T) {
	c := DefaultCalibration()
	assert.Equal(t, 1.4, c.OkunCoefficient)
	assert.Equal(t, 0.48, c.CPIIntercept)
	assert.Equal(t, 0.36, c.PhiCoreLag1)
	assert.Equal(t, 0.23, c.PhiCoreLag2)
	assert.Equal(t, 0.41, c.PhiCoreExpectations)
	assert.Equal(t, 0.08, c.PhiCoreUnemploymentGap)
	assert.Equal(t, 0.36, c.PhiHeadlineWedge)
	assert.Equal(t, 0.11, c.PhiCPIWedge)
	assert.Equal(t, 0.45, c.PhiGDPWedge)
	assert.Equal(t, 0.81, c.PhiTermPremium10)
	assert.Equal(t, 0.74, c.PhiTermPremium5)
	assert.Equal(t, 0.87, c.PhiBBBSpread)
}

func TestCalibrationParamsCoverEveryField(t *testing.T) {
	params := CalibrationParams()
	assert.Len(t, params, 12)
	assert.Len(t, DefaultCalibration().Map(), len(params))

	seen := map[string]bool{}
	for _, p := range params {
		assert.False(t, seen[p.Name], "duplicate %s", p.Name)
		seen[p.Name] = true
		assert.NotEmpty(t, p.Description)
	}
}

func TestCalibrationApply(t *testing.T) {
	c := DefaultCalibration()
	require.NoError(t, c.Apply(map[string]float64{
		"okun_coefficient": 2,
		"phi_bbb_spread":   0.9,
	}))
	assert.Equal(t, 2.0, c.OkunCoefficient)
	assert.Equal(t, 0.9, c.PhiBBBSpread)

	v, ok := c.Get("phi_bbb_spread")
	assert.True(t, ok)
	assert.Equal(t, 0.9, v)

	err := c.Apply(map[string]float64{"phi_nope": 1})
	assert.ErrorIs(t, err, ErrUnknownParameter)

	_, ok = c.Get("phi_nope")
	assert.False(t, ok)
}
