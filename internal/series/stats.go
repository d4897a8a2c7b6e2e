package series

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics over the valid numeric subset
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// numbers returns every Number element, including NaN and infinities
func (s *Series) numbers() []float64 {
	out := make([]float64, 0, len(s.items))
	for _, v := range s.items {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// validNumbers returns the finite, non-NaN Number elements
func (s *Series) validNumbers() []float64 {
	out := make([]float64, 0, len(s.items))
	for _, v := range s.items {
		if v.IsValidNumber() {
			f, _ := v.Float()
			out = append(out, f)
		}
	}
	return out
}

func (s *Series) sortedValidNumbers() []float64 {
	sorted := s.validNumbers()
	slices.Sort(sorted)
	return sorted
}

// Sum adds the Number elements; other kinds contribute 0.
// An empty series sums to 0.
func (s *Series) Sum() float64 {
	return floats.Sum(s.numbers())
}

// Max returns the largest Number element. Non-numbers never win.
// It reports false when the series is empty, holds no Number, holds a NaN,
// or the maximum is infinite.
func (s *Series) Max() (float64, bool) {
	return s.extreme(math.Inf(-1), func(a, b float64) bool { return a > b })
}

// Min returns the smallest Number element, with the same rules as Max.
func (s *Series) Min() (float64, bool) {
	return s.extreme(math.Inf(1), func(a, b float64) bool { return a < b })
}

// extreme scans with a sentinel that stands in for every non-number
func (s *Series) extreme(sentinel float64, better func(a, b float64) bool) (float64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}

	best := sentinel
	for _, v := range s.items {
		f, ok := v.Float()
		if !ok {
			continue
		}
		if math.IsNaN(f) {
			return 0, false
		}
		if better(f, best) {
			best = f
		}
	}

	if math.IsInf(best, 0) {
		return 0, false
	}
	return best, true
}

// Mean averages the valid numeric subset; the divisor is the count of valid
// numbers. It reports false for an empty series and returns 0 when the
// running total is zero, including when no element is a valid number.
func (s *Series) Mean() (float64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}

	valid := s.validNumbers()
	if floats.Sum(valid) == 0 {
		return 0, true
	}
	return stat.Mean(valid, nil), true
}

// Median returns the middle of the sorted valid numeric subset, averaging
// the two middle values for an even count. It reports false when the subset
// is empty.
func (s *Series) Median() (float64, bool) {
	return s.Quantile(0.5)
}

// Quantile returns the p-quantile of the valid numeric subset using linear
// interpolation between adjacent ranked values at rank p*(n-1).
// Quantile(0) is the minimum and Quantile(1) the maximum.
// It reports false when the subset is empty or p is outside [0, 1].
func (s *Series) Quantile(p float64) (float64, bool) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, false
	}

	sorted := s.sortedValidNumbers()
	if len(sorted) == 0 {
		return 0, false
	}
	return quantileSorted(sorted, p), true
}

// quantileSorted expects a non-empty ascending slice and p in [0, 1]
func quantileSorted(sorted []float64, p float64) float64 {
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	// Weighted form; the difference of distant neighbours can overflow.
	return (1-frac)*sorted[lo] + frac*sorted[hi]
}

// Variance returns the unbiased sample variance of the valid numeric subset.
// It reports false with fewer than two valid numbers.
func (s *Series) Variance() (float64, bool) {
	valid := s.validNumbers()
	if len(valid) < 2 {
		return 0, false
	}
	return stat.Variance(valid, nil), true
}

// StdDev returns the sample standard deviation of the valid numeric subset.
// It reports false with fewer than two valid numbers.
func (s *Series) StdDev() (float64, bool) {
	valid := s.validNumbers()
	if len(valid) < 2 {
		return 0, false
	}
	return stat.StdDev(valid, nil), true
}

// Describe summarizes the valid numeric subset. It reports false when the
// subset is empty. Std is 0 for a single valid number.
func (s *Series) Describe() (Summary, bool) {
	sorted := s.sortedValidNumbers()
	if len(sorted) == 0 {
		return Summary{}, false
	}

	summary := Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Q25:    quantileSorted(sorted, 0.25),
		Median: quantileSorted(sorted, 0.5),
		Q75:    quantileSorted(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		summary.Std = stat.StdDev(sorted, nil)
	}
	return summary, true
}
