// Package shannon computes Shannon entropies of frequency distributions.
package shannon

import "math"

// Entropy returns the base-2 Shannon entropy of a distribution given by
// absolute counts. Zero counts are ignored. The result is 0 if total is 0 or if
// at most one count is non-zero.
func Entropy(counts []int, total int) float64 {
	if total <= 0 {
		return 0
	}
	h, nonzero := 0.0, 0
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		nonzero++
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	if nonzero <= 1 {
		return 0
	}
	return h
}

// Accumulator collects counts for Entropy without materializing a slice
// upfront. Its zero value is ready to use.
type Accumulator struct {
	h       float64
	nonzero int
	total   int
}

// Reset prepares an accumulator for a distribution with the given total.
func (acc *Accumulator) Reset(total int) {
	acc.h, acc.nonzero, acc.total = 0, 0, total
}

// Add adds the count of one outcome.
func (acc *Accumulator) Add(count int) {
	if count <= 0 || acc.total <= 0 {
		return
	}
	acc.nonzero++
	p := float64(count) / float64(acc.total)
	acc.h -= p * math.Log2(p)
}

// Entropy returns the entropy of the counts added since the last Reset.
func (acc *Accumulator) Entropy() float64 {
	if acc.nonzero <= 1 {
		return 0
	}
	return acc.h
}
