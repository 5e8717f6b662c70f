// Package series holds the fixed-length time-series helpers the equation
// blocks are built on. Every function returns freshly allocated data and never
// modifies its arguments.
package series

// Normalize returns values as a slice of exactly length points.
//
// Empty or nil values yield fill repeated length times. Shorter input is
// right-padded with its last element; longer input is truncated.
func Normalize(values []float64, length int, fill float64) []float64 {
	if length <= 0 {
		return []float64{}
	}
	if len(values) == 0 {
		return Broadcast(fill, length)
	}
	out := make([]float64, length)
	n := copy(out, values)
	last := values[len(values)-1]
	for i := n; i < length; i++ {
		out[i] = last
	}
	return out
}

// Broadcast repeats v length times.
func Broadcast(v float64, length int) []float64 {
	if length <= 0 {
		return []float64{}
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = v
	}
	return out
}
