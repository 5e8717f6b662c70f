package series

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ForwardAverage averages s over [start, start+horizon).
//
// A window running past the end of s is padded with the last value of s so
// the mean is always over horizon points. When start is at or past the end,
// the last value is returned as is. s must not be empty.
func ForwardAverage(s []float64, start, horizon int) float64 {
	last := s[len(s)-1]
	if start >= len(s) {
		return last
	}
	if horizon <= 0 {
		return last
	}
	end := start + horizon
	if end <= len(s) {
		return stat.Mean(s[start:end], nil)
	}
	window := s[start:]
	missing := end - len(s)
	return (floats.Sum(window) + float64(missing)*last) / float64(horizon)
}

// MovingAverage averages the trailing window of s ending at index end
// (inclusive). Near the start of s the window is shorter; it never reads past
// end. An empty segment averages to 0.
func MovingAverage(s []float64, end, window int) float64 {
	if end >= len(s) {
		end = len(s) - 1
	}
	start := end - window + 1
	if start < 0 {
		start = 0
	}
	if end < start {
		return 0
	}
	return stat.Mean(s[start:end+1], nil)
}
