package models

import (
	"math"

	"macro-stress/internal/analysis"
	"macro-stress/internal/simulate"
)

// SimulationResponse represents the response from a projection run
type SimulationResponse struct {
	ID      string            `json:"id"`
	Status  string            `json:"status"`
	Name    string            `json:"name,omitempty"`
	Horizon int               `json:"horizon"`
	Summary []VariableSummary `json:"summary"`
	Stress  StressSummary     `json:"stress"`
	Table   *simulate.Table   `json:"table,omitempty"`
}

// VariableSummary is the JSON form of analysis.VariableSummary. Undefined
// statistics are null.
type VariableSummary struct {
	Name      string   `json:"name"`
	Min       *float64 `json:"min"`
	MinPeriod int      `json:"min_period"`
	Max       *float64 `json:"max"`
	MaxPeriod int      `json:"max_period"`
	Mean      *float64 `json:"mean"`
	First     *float64 `json:"first"`
	Last      *float64 `json:"last"`
	Change    *float64 `json:"change"`
}

// StressSummary contains the headline severity metrics
type StressSummary struct {
	PeakUnemployment       *float64 `json:"peak_unemployment"`
	PeakUnemploymentPeriod int      `json:"peak_unemployment_period"`
	UnemploymentIncrease   *float64 `json:"unemployment_increase"`
	TroughOutputGap        *float64 `json:"trough_output_gap"`
	TroughOutputGapPeriod  int      `json:"trough_output_gap_period"`
	CumulativeRealGrowth   *float64 `json:"cumulative_real_growth"`
	PeakBBBSpread          *float64 `json:"peak_bbb_spread"`
	PeakBBBYield           *float64 `json:"peak_bbb_yield"`
	FinalPolicyRate        *float64 `json:"final_policy_rate"`
	MinPolicyRate          *float64 `json:"min_policy_rate"`
	Peak10YYield           *float64 `json:"peak_10y_yield"`
	TroughNominalDPIGrowth *float64 `json:"trough_nominal_dpi_growth"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
	Failed     []FailedVariation  `json:"failed,omitempty"`
}

// ComparisonResult contains results for one scenario, most severe first
type ComparisonResult struct {
	Rank   int           `json:"rank"`
	Name   string        `json:"name"`
	Stress StressSummary `json:"stress"`
}

// FailedVariation is a variation that could not be run.
type FailedVariation struct {
	Name  string      `json:"name"`
	Error ErrorDetail `json:"error"`
}

// ParameterInfo describes a calibration parameter
type ParameterInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Default     float64 `json:"default"`
}

// ColumnInfo describes an output column
type ColumnInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       string `json:"units"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSummaries converts analysis summaries for the wire.
func NewSummaries(in []analysis.VariableSummary) []VariableSummary {
	out := make([]VariableSummary, len(in))
	for i, s := range in {
		out[i] = VariableSummary{
			Name:      s.Name,
			Min:       num(s.Min),
			MinPeriod: s.MinPeriod,
			Max:       num(s.Max),
			MaxPeriod: s.MaxPeriod,
			Mean:      num(s.Mean),
			First:     num(s.First),
			Last:      num(s.Last),
			Change:    num(s.Change),
		}
	}
	return out
}

func NewStressSummary(m analysis.StressMetrics) StressSummary {
	return StressSummary{
		PeakUnemployment:       num(m.PeakUnemployment),
		PeakUnemploymentPeriod: m.PeakUnemploymentPeriod,
		UnemploymentIncrease:   num(m.UnemploymentIncrease),
		TroughOutputGap:        num(m.TroughOutputGap),
		TroughOutputGapPeriod:  m.TroughOutputGapPeriod,
		CumulativeRealGrowth:   num(m.CumulativeRealGrowth),
		PeakBBBSpread:          num(m.PeakBBBSpread),
		PeakBBBYield:           num(m.PeakBBBYield),
		FinalPolicyRate:        num(m.FinalPolicyRate),
		MinPolicyRate:          num(m.MinPolicyRate),
		Peak10YYield:           num(m.Peak10YYield),
		TroughNominalDPIGrowth: num(m.TroughNominalDPIGrowth),
	}
}

// num maps non-finite values to nil so they encode as null.
func num(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

// ScenarioInfo represents a scenario preset
type ScenarioInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Horizon     int    `json:"horizon"`
}
