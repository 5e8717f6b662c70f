package analysis

import (
	"math"

	"macro-stress/internal/simulate"

	"gonum.org/v1/gonum/floats"
)

// StressMetrics are the headline severity readings of one projection.
type StressMetrics struct {
	PeakUnemployment       float64
	PeakUnemploymentPeriod int
	UnemploymentIncrease   float64

	TroughOutputGap       float64
	TroughOutputGapPeriod int

	// CumulativeRealGrowth is the percent change in real GDP over the horizon.
	CumulativeRealGrowth float64

	PeakBBBSpread          float64
	PeakBBBYield           float64
	FinalPolicyRate        float64
	MinPolicyRate          float64
	Peak10YYield           float64
	TroughNominalDPIGrowth float64
}

// Stress computes StressMetrics from a projection table.
func Stress(t *simulate.Table) StressMetrics {
	col := func(name string) []float64 {
		c, _ := t.Column(name)
		return c
	}
	u := col(simulate.ColUnemploymentRate)
	gap := col(simulate.ColOutputGap)
	realGDP := col(simulate.ColRealGDP)
	policy := col(simulate.ColPolicyRate)
	dpi := col(simulate.ColNominalDPI)

	m := StressMetrics{}
	i := floats.MaxIdx(u)
	m.PeakUnemployment, m.PeakUnemploymentPeriod = u[i], i
	m.UnemploymentIncrease = u[i] - u[0]

	j := floats.MinIdx(gap)
	m.TroughOutputGap, m.TroughOutputGapPeriod = gap[j], j

	m.CumulativeRealGrowth = 100 * (realGDP[len(realGDP)-1]/realGDP[0] - 1)
	m.PeakBBBSpread = floats.Max(col(simulate.ColBBBSpread))
	m.PeakBBBYield = floats.Max(col(simulate.ColBBBYield))
	m.FinalPolicyRate = policy[len(policy)-1]
	m.MinPolicyRate = floats.Min(policy)
	m.Peak10YYield = floats.Max(col(simulate.ColYield10Y))
	m.TroughNominalDPIGrowth = troughAnnualizedGrowth(dpi)
	return m
}

// troughAnnualizedGrowth is the weakest quarter-on-quarter log growth of a
// level series, annualized in percent. A single-period series has none (0).
func troughAnnualizedGrowth(levels []float64) float64 {
	if len(levels) < 2 {
		return 0
	}
	trough := math.Inf(1)
	for t := 1; t < len(levels); t++ {
		g := 400 * math.Log(levels[t]/levels[t-1])
		if g < trough {
			trough = g
		}
	}
	return trough
}
