package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownParameter is returned when an override names no calibration constant.
var ErrUnknownParameter = errors.New("unknown calibration parameter")

// Calibration holds the structural-equation coefficients.
// Phi* values are AR persistence or equation weights, dimensionless.
type Calibration struct {
	// OkunCoefficient maps a one-point rise in unemployment to the quarterly
	// real growth shortfall (scaled by 4 for annualized growth).
	OkunCoefficient float64
	// CPIIntercept is the average CPI-over-PCE inflation gap, percent.
	CPIIntercept float64

	PhiCoreLag1            float64
	PhiCoreLag2            float64
	PhiCoreExpectations    float64
	PhiCoreUnemploymentGap float64

	PhiHeadlineWedge float64
	PhiCPIWedge      float64
	PhiGDPWedge      float64

	PhiTermPremium10 float64
	PhiTermPremium5  float64
	PhiBBBSpread     float64
}

// IsZero reports whether every coefficient is zero, i.e. c was never set.
func (c Calibration) IsZero() bool { return c == Calibration{} }

// DefaultCalibration returns the published baseline coefficients.
func DefaultCalibration() Calibration {
	c := Calibration{}
	for _, p := range calibrationParams {
		*p.field(&c) = p.Default
	}
	return c
}

// Param describes one calibration constant.
type Param struct {
	Name        string
	Description string
	Default     float64

	field func(*Calibration) *float64
}

var calibrationParams = []Param{
	{"okun_coefficient", "Okun's law coefficient linking unemployment changes to the output growth shortfall", 1.4,
		func(c *Calibration) *float64 { return &c.OkunCoefficient }},
	{"cpi_intercept", "Average wedge between CPI and headline PCE inflation (percent)", 0.48,
		func(c *Calibration) *float64 { return &c.CPIIntercept }},
	{"phi_core_lag1", "Weight on core inflation lagged one quarter", 0.36,
		func(c *Calibration) *float64 { return &c.PhiCoreLag1 }},
	{"phi_core_lag2", "Weight on core inflation lagged two quarters", 0.23,
		func(c *Calibration) *float64 { return &c.PhiCoreLag2 }},
	{"phi_core_expectations", "Weight on long-run inflation expectations", 0.41,
		func(c *Calibration) *float64 { return &c.PhiCoreExpectations }},
	{"phi_core_unemployment_gap", "Weight on the unemployment gap in the core inflation equation", 0.08,
		func(c *Calibration) *float64 { return &c.PhiCoreUnemploymentGap }},
	{"phi_headline_wedge", "Persistence of the headline-over-core PCE wedge", 0.36,
		func(c *Calibration) *float64 { return &c.PhiHeadlineWedge }},
	{"phi_cpi_wedge", "Persistence of the CPI wedge", 0.11,
		func(c *Calibration) *float64 { return &c.PhiCPIWedge }},
	{"phi_gdp_wedge", "Persistence of the GDP deflator wedge", 0.45,
		func(c *Calibration) *float64 { return &c.PhiGDPWedge }},
	{"phi_term_premium10", "Persistence of the 10-year term premium", 0.81,
		func(c *Calibration) *float64 { return &c.PhiTermPremium10 }},
	{"phi_term_premium5", "Persistence of the 5-year term premium", 0.74,
		func(c *Calibration) *float64 { return &c.PhiTermPremium5 }},
	{"phi_bbb_spread", "Persistence of the BBB corporate spread", 0.87,
		func(c *Calibration) *float64 { return &c.PhiBBBSpread }},
}

// CalibrationParams lists every calibration constant in a stable order.
func CalibrationParams() []Param {
	out := make([]Param, len(calibrationParams))
	copy(out, calibrationParams)
	return out
}

func lookupParam(name string) (Param, bool) {
	for _, p := range calibrationParams {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Get returns the value of the named constant.
func (c Calibration) Get(name string) (float64, bool) {
	p, ok := lookupParam(name)
	if !ok {
		return 0, false
	}
	return *p.field(&c), true
}

// Set assigns the named constant.
func (c *Calibration) Set(name string, v float64) error {
	p, ok := lookupParam(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	*p.field(c) = v
	return nil
}

// Apply sets every override, in name order so failures are reproducible.
func (c *Calibration) Apply(overrides map[string]float64) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.Set(name, overrides[name]); err != nil {
			return err
		}
	}
	return nil
}

// Map returns the calibration keyed by parameter name.
func (c Calibration) Map() map[string]float64 {
	out := make(map[string]float64, len(calibrationParams))
	for _, p := range calibrationParams {
		out[p.Name] = *p.field(&c)
	}
	return out
}
