package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInputs is the sentinel every ValidationError unwraps to.
var ErrInvalidInputs = errors.New("invalid model inputs")

// ValidationError reports a violated construction precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInputs }

// SeriesInputs are the exogenous paths driving a scenario.
// Units: rates and inflation in percent (annualized), GDP levels in the
// scenario's currency units. Every path is padded with its last value or
// truncated to the horizon.
type SeriesInputs struct {
	// Unemployment seeds the unemployment path; at least two values. Values
	// beyond the seeds are extended with the gap AR(2).
	Unemployment        Series `yaml:"unemployment" json:"unemployment"`
	NaturalUnemployment Series `yaml:"natural_unemployment" json:"natural_unemployment"`
	PotentialGDP        Series `yaml:"potential_gdp" json:"potential_gdp"`

	// CoreInflationInitial seeds core PCE inflation; at least two values.
	CoreInflationInitial  Series `yaml:"core_inflation_initial" json:"core_inflation_initial"`
	InflationExpectations Series `yaml:"inflation_expectations" json:"inflation_expectations"`
	InflationTarget       Series `yaml:"inflation_target" json:"inflation_target"`

	// NaturalRate is the neutral real policy rate (r*).
	NaturalRate Series `yaml:"natural_rate" json:"natural_rate"`

	TermPremium10Intercept Series `yaml:"term_premium10_intercept" json:"term_premium10_intercept"`
	TermPremium5Intercept  Series `yaml:"term_premium5_intercept" json:"term_premium5_intercept"`
}

// Initial holds the period-0 levels and the lagged values recursions start from.
type Initial struct {
	RealGDP    float64 `yaml:"real_gdp" json:"real_gdp"`
	NominalGDP float64 `yaml:"nominal_gdp" json:"nominal_gdp"`
	NominalDPI float64 `yaml:"nominal_dpi" json:"nominal_dpi"`
	PolicyRate float64 `yaml:"policy_rate" json:"policy_rate"`

	TermPremium10 float64 `yaml:"term_premium10" json:"term_premium10"`
	TermPremium5  float64 `yaml:"term_premium5" json:"term_premium5"`
	BBBSpread     float64 `yaml:"bbb_spread" json:"bbb_spread"`

	HeadlineWedge float64 `yaml:"headline_wedge" json:"headline_wedge"`
	CPIWedge      float64 `yaml:"cpi_wedge" json:"cpi_wedge"`
	GDPWedge      float64 `yaml:"gdp_wedge" json:"gdp_wedge"`
}

// Shocks are additive innovations per period. Absent series are all zero.
type Shocks struct {
	CoreInflation Series `yaml:"core_inflation,omitempty" json:"core_inflation,omitempty"`
	HeadlineWedge Series `yaml:"headline_wedge,omitempty" json:"headline_wedge,omitempty"`
	CPIWedge      Series `yaml:"cpi_wedge,omitempty" json:"cpi_wedge,omitempty"`
	GDPWedge      Series `yaml:"gdp_wedge,omitempty" json:"gdp_wedge,omitempty"`
	TermPremium10 Series `yaml:"term_premium10,omitempty" json:"term_premium10,omitempty"`
	TermPremium5  Series `yaml:"term_premium5,omitempty" json:"term_premium5,omitempty"`
	BBBSpread     Series `yaml:"bbb_spread,omitempty" json:"bbb_spread,omitempty"`
}

// Inputs is the complete, immutable description of one simulation.
type Inputs struct {
	// Horizon is the number of simulated periods (quarters).
	Horizon int
	Series  SeriesInputs
	Initial Initial
	Shocks  Shocks

	// Calibration holds the equation coefficients. The zero value stands for
	// DefaultCalibration(); an all-zero coefficient set cannot be expressed.
	Calibration Calibration
}

// NewInputs copies in and validates the copy. The returned value shares no
// slices with in. An unset calibration is replaced by DefaultCalibration().
func NewInputs(in Inputs) (*Inputs, error) {
	out := in.Clone()
	if out.Calibration.IsZero() {
		out.Calibration = DefaultCalibration()
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks the construction preconditions only; coefficient ranges and
// level positivity are not checked.
func (in *Inputs) Validate() error {
	if in == nil {
		return &ValidationError{Field: "inputs", Reason: "inputs are nil"}
	}
	if in.Horizon <= 0 {
		return &ValidationError{Field: "horizon", Reason: fmt.Sprintf("must be positive, got %d", in.Horizon)}
	}
	if n := len(in.Series.CoreInflationInitial); n < 2 {
		return &ValidationError{
			Field:  "core_inflation_initial",
			Reason: fmt.Sprintf("need at least two starting values, got %d", n),
		}
	}
	if n := len(in.Series.Unemployment); n < 2 {
		return &ValidationError{
			Field:  "unemployment",
			Reason: fmt.Sprintf("need at least two values to seed the AR(2), got %d", n),
		}
	}
	return nil
}

// Clone deep-copies every series.
func (in Inputs) Clone() Inputs {
	out := in
	out.Series = in.Series.Clone()
	out.Shocks = in.Shocks.Clone()
	return out
}

func (s SeriesInputs) Clone() SeriesInputs {
	return SeriesInputs{
		Unemployment:           s.Unemployment.Clone(),
		NaturalUnemployment:    s.NaturalUnemployment.Clone(),
		PotentialGDP:           s.PotentialGDP.Clone(),
		CoreInflationInitial:   s.CoreInflationInitial.Clone(),
		InflationExpectations:  s.InflationExpectations.Clone(),
		InflationTarget:        s.InflationTarget.Clone(),
		NaturalRate:            s.NaturalRate.Clone(),
		TermPremium10Intercept: s.TermPremium10Intercept.Clone(),
		TermPremium5Intercept:  s.TermPremium5Intercept.Clone(),
	}
}

func (s Shocks) Clone() Shocks {
	return Shocks{
		CoreInflation: s.CoreInflation.Clone(),
		HeadlineWedge: s.HeadlineWedge.Clone(),
		CPIWedge:      s.CPIWedge.Clone(),
		GDPWedge:      s.GDPWedge.Clone(),
		TermPremium10: s.TermPremium10.Clone(),
		TermPremium5:  s.TermPremium5.Clone(),
		BBBSpread:     s.BBBSpread.Clone(),
	}
}

// Overlay replaces every shock path that is set in override.
func (s Shocks) Overlay(override Shocks) Shocks {
	out := s
	pick := func(dst *Series, src Series) {
		if src != nil {
			*dst = src.Clone()
		}
	}
	pick(&out.CoreInflation, override.CoreInflation)
	pick(&out.HeadlineWedge, override.HeadlineWedge)
	pick(&out.CPIWedge, override.CPIWedge)
	pick(&out.GDPWedge, override.GDPWedge)
	pick(&out.TermPremium10, override.TermPremium10)
	pick(&out.TermPremium5, override.TermPremium5)
	pick(&out.BBBSpread, override.BBBSpread)
	return out
}
