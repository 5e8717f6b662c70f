package simulate

import (
	"fmt"

	"macro-stress/internal/model"
	"macro-stress/internal/series"
)

// Engine projects a scenario forward through the recursive equation system.
// It holds no state; one Engine may serve concurrent callers.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Run evaluates every equation block once, in dependency order, over the
// whole horizon and returns one row per period. in is only read.
func (e *Engine) Run(in *model.Inputs) (*Table, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	r := newRun(in)
	r.unemployment()
	r.coreInflation()
	r.inflationWedges()
	r.realOutput()
	r.policyRate()
	r.expectedShortRates()
	r.termPremiums()
	r.creditSpread()
	r.nominalAggregates()

	t, err := NewTable(Columns(), r.columns())
	if err != nil {
		return nil, fmt.Errorf("assemble table: %w", err)
	}
	return t, nil
}

// run carries the series of one evaluation. Each field is written by exactly
// one block and only read afterwards.
type run struct {
	in  *model.Inputs
	cal model.Calibration
	n   int

	uStar    []float64
	u        []float64
	uGap     []float64
	coreInfl []float64

	headlineWedge []float64
	cpiWedge      []float64
	gdpWedge      []float64
	headlineInfl  []float64
	cpiInfl       []float64
	gdpInfl       []float64

	potential  []float64
	realGDP    []float64
	realGrowth []float64
	outputGap  []float64

	policy []float64
	tbill  []float64

	expected5  []float64
	expected10 []float64
	tp5        []float64
	tp10       []float64
	yield5     []float64
	yield10    []float64

	bbbSpread []float64
	bbbYield  []float64

	nominalGDP []float64
	nominalDPI []float64
}

func newRun(in *model.Inputs) *run {
	cal := in.Calibration
	if cal.IsZero() {
		cal = model.DefaultCalibration()
	}
	return &run{in: in, cal: cal, n: in.Horizon}
}

func (r *run) norm(s model.Series) []float64 {
	return series.Normalize(s, r.n, 0)
}

// columns returns the computed series in Columns() order.
func (r *run) columns() [][]float64 {
	return [][]float64{
		r.u,
		r.uStar,
		r.uGap,
		r.coreInfl,
		r.headlineInfl,
		r.cpiInfl,
		r.gdpInfl,
		r.headlineWedge,
		r.cpiWedge,
		r.gdpWedge,
		r.realGDP,
		r.potential,
		r.realGrowth,
		r.outputGap,
		r.policy,
		r.tbill,
		r.expected5,
		r.expected10,
		r.tp5,
		r.tp10,
		r.yield5,
		r.yield10,
		r.bbbSpread,
		r.bbbYield,
		r.nominalGDP,
		r.nominalDPI,
	}
}
