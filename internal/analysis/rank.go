package analysis

import (
	"math"
	"sort"

	"macro-stress/internal/simulate"
)

type RankedScenario struct {
	Name string
	StressMetrics
}

// RankBySeverity computes stress metrics per scenario and sorts the most
// severe first: highest peak unemployment, then deepest output gap trough,
// then name. Undefined (NaN) metrics rank after every defined value.
func RankBySeverity(byName map[string]*simulate.Table) []RankedScenario {
	out := make([]RankedScenario, 0, len(byName))
	for name, t := range byName {
		out = append(out, RankedScenario{Name: name, StressMetrics: Stress(t)})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := compareSeverity(a.PeakUnemployment, b.PeakUnemployment, true); c != 0 {
			return c < 0
		}
		if c := compareSeverity(a.TroughOutputGap, b.TroughOutputGap, false); c != 0 {
			return c < 0
		}
		return a.Name < b.Name
	})
	return out
}

// compareSeverity returns -1 when a ranks ahead of b, 1 when b does and 0 on a
// tie. NaN ties with NaN and loses to any number.
func compareSeverity(a, b float64, higherFirst bool) int {
	switch aNaN, bNaN := math.IsNaN(a), math.IsNaN(b); {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	if a == b {
		return 0
	}
	if (a > b) == higherFirst {
		return -1
	}
	return 1
}
