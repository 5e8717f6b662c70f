package simulate

import (
	"math"

	"macro-stress/internal/series"
)

// Fixed structural constants of the equation system.
const (
	gapAR1 = 1.65
	gapAR2 = -0.68

	policyInertia     = 0.85
	policyRuleWeight  = 0.15
	taylorInflation   = 0.5
	policyFloor       = 0.125
	unemploymentDrag  = 0.85
	inflationAvgWidth = 4

	expected5yQuarters  = 20
	expected10yQuarters = 40

	bbbSpreadIntercept = 1.66

	dpiUnemploymentSensitivity = 0.0058
)

// unemployment keeps the seeded path and extends it with the AR(2) on the gap
// to natural unemployment.
func (r *run) unemployment() {
	r.uStar = r.norm(r.in.Series.NaturalUnemployment)

	seeds := r.in.Series.Unemployment
	r.u = make([]float64, r.n)
	seeded := copy(r.u, seeds)
	for t := seeded; t < r.n; t++ {
		gap1 := r.u[t-1] - r.uStar[t-1]
		gap2 := r.u[t-2] - r.uStar[t-2]
		r.u[t] = r.uStar[t] + gapAR1*gap1 + gapAR2*gap2
	}

	r.uGap = make([]float64, r.n)
	for t := range r.uGap {
		r.uGap[t] = r.u[t] - r.uStar[t]
	}
}

func (r *run) coreInflation() {
	r.coreInfl = make([]float64, r.n)
	seeded := copy(r.coreInfl, r.in.Series.CoreInflationInitial)

	expect := r.norm(r.in.Series.InflationExpectations)
	shock := r.norm(r.in.Shocks.CoreInflation)
	c := r.cal
	for t := seeded; t < r.n; t++ {
		r.coreInfl[t] = c.PhiCoreLag1*r.coreInfl[t-1] +
			c.PhiCoreLag2*r.coreInfl[t-2] +
			c.PhiCoreExpectations*expect[t] +
			c.PhiCoreUnemploymentGap*r.uGap[t] +
			shock[t]
	}
}

// decayFromSeed is an AR(1) toward zero whose period 0 is the seed itself.
func (r *run) decayFromSeed(seed, phi float64, shock []float64) []float64 {
	out := make([]float64, r.n)
	out[0] = seed
	for t := 1; t < r.n; t++ {
		out[t] = phi*out[t-1] + shock[t]
	}
	return out
}

func (r *run) inflationWedges() {
	ini := r.in.Initial
	c := r.cal
	r.headlineWedge = r.decayFromSeed(ini.HeadlineWedge, c.PhiHeadlineWedge, r.norm(r.in.Shocks.HeadlineWedge))
	r.cpiWedge = r.decayFromSeed(ini.CPIWedge, c.PhiCPIWedge, r.norm(r.in.Shocks.CPIWedge))
	r.gdpWedge = r.decayFromSeed(ini.GDPWedge, c.PhiGDPWedge, r.norm(r.in.Shocks.GDPWedge))

	r.headlineInfl = make([]float64, r.n)
	r.cpiInfl = make([]float64, r.n)
	r.gdpInfl = make([]float64, r.n)
	for t := 0; t < r.n; t++ {
		r.headlineInfl[t] = r.coreInfl[t] + r.headlineWedge[t]
		r.cpiInfl[t] = c.CPIIntercept + r.headlineInfl[t] + r.cpiWedge[t]
		r.gdpInfl[t] = r.headlineInfl[t] + r.gdpWedge[t]
	}
}

// realOutput applies Okun's law to the unemployment path. Growth in period 0
// has no predecessor and stays NaN.
func (r *run) realOutput() {
	r.potential = r.norm(r.in.Series.PotentialGDP)
	r.realGDP = make([]float64, r.n)
	r.realGrowth = make([]float64, r.n)

	r.realGDP[0] = r.in.Initial.RealGDP
	r.realGrowth[0] = math.NaN()
	for t := 1; t < r.n; t++ {
		potentialGrowth := 400 * math.Log(r.potential[t]/r.potential[t-1])
		du := r.u[t] - r.u[t-1]
		r.realGrowth[t] = potentialGrowth - 4*r.cal.OkunCoefficient*du
		r.realGDP[t] = r.realGDP[t-1] * math.Exp(r.realGrowth[t]/400)
	}

	r.outputGap = make([]float64, r.n)
	for t := range r.outputGap {
		r.outputGap[t] = 100 * math.Log(r.realGDP[t]/r.potential[t])
	}
}

// policyRate runs the inertial Taylor rule with an unemployment drag and the
// effective lower bound.
func (r *run) policyRate() {
	rStar := r.norm(r.in.Series.NaturalRate)
	target := r.norm(r.in.Series.InflationTarget)

	r.policy = make([]float64, r.n)
	r.tbill = make([]float64, r.n)
	prev := r.in.Initial.PolicyRate
	for t := 0; t < r.n; t++ {
		avgCore := series.MovingAverage(r.coreInfl, t, inflationAvgWidth)
		base := rStar[t] + avgCore + taylorInflation*(avgCore-target[t])

		gapTerm := 0.0
		if r.outputGap[t] < 0 {
			gapTerm = r.outputGap[t]
		}

		drag := 0.0
		if t >= 2 {
			rise := r.u[t] - r.u[t-2]
			if r.u[t] > r.uStar[t] && rise > 0 {
				drag = unemploymentDrag * rise
			}
		}

		rate := policyInertia*prev + policyRuleWeight*(base+gapTerm) - drag
		r.policy[t] = math.Max(rate, policyFloor)
		r.tbill[t] = r.policy[t]
		prev = r.policy[t]
	}
}

func (r *run) expectedShortRates() {
	r.expected5 = make([]float64, r.n)
	r.expected10 = make([]float64, r.n)
	for t := 0; t < r.n; t++ {
		r.expected5[t] = series.ForwardAverage(r.policy, t, expected5yQuarters)
		r.expected10[t] = series.ForwardAverage(r.policy, t, expected10yQuarters)
	}
}

// revertToward is an AR(1) around a per-period intercept, started from the
// lagged value prev so that period 0 is already a recursion step.
func (r *run) revertToward(prev, phi float64, intercept, shock []float64) []float64 {
	out := make([]float64, r.n)
	for t := 0; t < r.n; t++ {
		prev = intercept[t] + phi*(prev-intercept[t]) + shock[t]
		out[t] = prev
	}
	return out
}

func (r *run) termPremiums() {
	ini := r.in.Initial
	r.tp10 = r.revertToward(ini.TermPremium10, r.cal.PhiTermPremium10,
		r.norm(r.in.Series.TermPremium10Intercept), r.norm(r.in.Shocks.TermPremium10))
	r.tp5 = r.revertToward(ini.TermPremium5, r.cal.PhiTermPremium5,
		r.norm(r.in.Series.TermPremium5Intercept), r.norm(r.in.Shocks.TermPremium5))

	r.yield5 = make([]float64, r.n)
	r.yield10 = make([]float64, r.n)
	for t := 0; t < r.n; t++ {
		r.yield5[t] = r.expected5[t] + r.tp5[t]
		r.yield10[t] = r.expected10[t] + r.tp10[t]
	}
}

func (r *run) creditSpread() {
	r.bbbSpread = r.revertToward(r.in.Initial.BBBSpread, r.cal.PhiBBBSpread,
		series.Broadcast(bbbSpreadIntercept, r.n), r.norm(r.in.Shocks.BBBSpread))

	r.bbbYield = make([]float64, r.n)
	for t := 0; t < r.n; t++ {
		r.bbbYield[t] = r.bbbSpread[t] + r.yield10[t]
	}
}

// nominalAggregates compounds nominal GDP by real growth plus deflator
// inflation, and disposable income additionally by its unemployment
// sensitivity.
func (r *run) nominalAggregates() {
	r.nominalGDP = make([]float64, r.n)
	r.nominalDPI = make([]float64, r.n)
	r.nominalGDP[0] = r.in.Initial.NominalGDP
	r.nominalDPI[0] = r.in.Initial.NominalDPI
	for t := 1; t < r.n; t++ {
		growth := r.realGrowth[t]
		if math.IsNaN(growth) {
			growth = 0
		}
		factor := math.Exp((growth + r.gdpInfl[t]) / 400)
		r.nominalGDP[t] = r.nominalGDP[t-1] * factor

		du := r.u[t] - r.u[t-1]
		r.nominalDPI[t] = r.nominalDPI[t-1] * factor * math.Exp(dpiUnemploymentSensitivity*du)
	}
}
