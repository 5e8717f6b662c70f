package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() Inputs {
	return Inputs{
		Horizon: 4,
		Series: SeriesInputs{
			Unemployment:         Series{4, 4.1},
			CoreInflationInitial: Series{2, 2.1},
			PotentialGDP:         Series{100},
		},
		Shocks:      Shocks{BBBSpread: Series{0.5}},
		Calibration: DefaultCalibration(),
	}
}

func TestNewInputs(t *testing.T) {
	in := validInputs()
	got, err := NewInputs(in)
	require.NoError(t, err)
	assert.Equal(t, in, *got)

	in.Series.Unemployment[0] = 99
	in.Shocks.BBBSpread[0] = 99
	assert.Equal(t, 4.0, got.Series.Unemployment[0])
	assert.Equal(t, 0.5, got.Shocks.BBBSpread[0])
}

func TestNewInputs_Preconditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
		field  string
	}{
		{"zero horizon", func(in *Inputs) { in.Horizon = 0 }, "horizon"},
		{"missing core seeds", func(in *Inputs) { in.Series.CoreInflationInitial = nil }, "core_inflation_initial"},
		{"single unemployment seed", func(in *Inputs) { in.Series.Unemployment = Series{4} }, "unemployment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.mutate(&in)

			_, err := NewInputs(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInputs)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNewInputs_DefaultsCalibration(t *testing.T) {
	in := validInputs()
	in.Calibration = Calibration{}

	got, err := NewInputs(in)
	require.NoError(t, err)
	assert.Equal(t, DefaultCalibration(), got.Calibration)
	assert.True(t, in.Calibration.IsZero())
}

func TestNewInputs_KeepsPartialCalibration(t *testing.T) {
	in := validInputs()
	in.Calibration = Calibration{OkunCoefficient: 2}

	got, err := NewInputs(in)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Calibration.OkunCoefficient)
	assert.Zero(t, got.Calibration.PhiBBBSpread)
}

func TestValidate_IgnoresCoefficientRanges(t *testing.T) {
	in := validInputs()
	in.Calibration.PhiBBBSpread = 7
	in.Calibration.OkunCoefficient = -3
	in.Series.PotentialGDP = Series{-1}
	assert.NoError(t, in.Validate())
}

func TestValidate_Nil(t *testing.T) {
	var in *Inputs
	assert.ErrorIs(t, in.Validate(), ErrInvalidInputs)
}

func TestShocksOverlay(t *testing.T) {
	base := Shocks{CoreInflation: Series{0.1}, BBBSpread: Series{1}}
	got := base.Overlay(Shocks{BBBSpread: Series{2, 0}})

	assert.Equal(t, Series{0.1}, got.CoreInflation)
	assert.Equal(t, Series{2, 0}, got.BBBSpread)
	assert.Equal(t, Series{1}, base.BBBSpread)
}
