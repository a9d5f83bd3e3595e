/*
Package metrics computes character-level text-quality signals in a single pass.

Content

Aggregate walks a text once, classifying every code-point with package
charclass, and returns a Snapshot of raw counts, ratios and entropies.
Callers usually request dozens of these values per document, so all of them
are derived from one accumulator instead of re-scanning the text per metric.
The individual functions of this package (CountLetters, RatioDigits, …) are
conveniences for callers interested in a single value; they return exactly
the corresponding Snapshot field.

Degenerate inputs never produce an error, an infinity or a NaN: ratios with
a zero denominator are 0. The ratio of letters to digits for a text without
digits is the number of letters times AlphaNumericSentinel, a large but
finite value which keeps all emitted numbers comparable.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package metrics

import (
	"sort"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textstat/category"
	"github.com/npillmayer/textstat/charclass"
	"github.com/npillmayer/textstat/internal/shannon"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// AlphaNumericSentinel is multiplied with the letter count for texts which
// contain letters, but no digits.
const AlphaNumericSentinel = 1e6

// Snapshot holds the character metrics of a text.
//
// Ratio fields relate a count to TotalChars, with two exceptions:
// RatioUppercase and RatioLowercase relate to Letters, as case is a property
// of letters only.
type Snapshot struct {
	TotalChars   int // number of code-points
	Letters      int
	Digits       int
	Punctuation  int
	Symbols      int
	Whitespace   int
	Other        int // neither of the above
	NonASCII     int // code-points > U+007F, of any bucket
	Uppercase    int // category Lu
	Lowercase    int // category Ll
	Alphanumeric int // Letters + Digits

	RatioLetters        float64
	RatioDigits         float64
	RatioPunctuation    float64
	RatioSymbols        float64
	RatioWhitespace     float64
	RatioNonASCII       float64
	RatioAlphanumeric   float64
	RatioUppercase      float64 // relative to Letters
	RatioLowercase      float64 // relative to Letters
	RatioAlphaToNumeric float64 // Letters / Digits, see AlphaNumericSentinel

	CharEntropy          float64 // entropy of code-point frequencies, in bits
	CategoryEntropy      float64 // entropy of general category frequencies, in bits
	CaseRatio            float64 // Uppercase / Lowercase
	CharTypeTransitions  int     // adjacent pairs of code-points with differing buckets
	ConsecutiveRuns      int     // maximal runs of code-points of equal bucket
	PunctuationDiversity int     // distinct punctuation code-points
}

// Aggregate computes the character metrics of a text. Invalid UTF-8 is
// decoded as U+FFFD.
func Aggregate(text string) Snapshot {
	acc := newAccumulator()
	for _, r := range text {
		acc.add(r)
	}
	return acc.snapshot()
}

// AggregateRunes computes the character metrics of a sequence of code-points.
func AggregateRunes(runes []rune) Snapshot {
	acc := newAccumulator()
	for _, r := range runes {
		acc.add(r)
	}
	return acc.snapshot()
}

// accumulator is updated once per code-point.
type accumulator struct {
	total        int
	buckets      [charclass.NumBuckets]int
	nonASCII     int
	upper, lower int
	categories   [category.Count]int
	chars        map[rune]int
	punctuation  map[rune]struct{}
	prev         charclass.Bucket
	transitions  int
}

func newAccumulator() *accumulator {
	return &accumulator{
		chars:       make(map[rune]int),
		punctuation: make(map[rune]struct{}),
	}
}

func (acc *accumulator) add(r rune) {
	c := charclass.Classify(r)
	if acc.total > 0 && c.Bucket != acc.prev {
		acc.transitions++
	}
	acc.prev = c.Bucket
	acc.total++
	acc.buckets[c.Bucket]++
	acc.categories[c.Category]++
	acc.chars[r]++
	if charclass.NonASCII(r) {
		acc.nonASCII++
	}
	if c.Uppercase() {
		acc.upper++
	} else if c.Lowercase() {
		acc.lower++
	}
	if c.Bucket == charclass.Punctuation {
		acc.punctuation[r] = struct{}{}
	}
}

func (acc *accumulator) snapshot() Snapshot {
	s := Snapshot{
		TotalChars:           acc.total,
		Letters:              acc.buckets[charclass.Letter],
		Digits:               acc.buckets[charclass.Digit],
		Punctuation:          acc.buckets[charclass.Punctuation],
		Symbols:              acc.buckets[charclass.Symbol],
		Whitespace:           acc.buckets[charclass.Whitespace],
		Other:                acc.buckets[charclass.Other],
		NonASCII:             acc.nonASCII,
		Uppercase:            acc.upper,
		Lowercase:            acc.lower,
		CharTypeTransitions:  acc.transitions,
		PunctuationDiversity: len(acc.punctuation),
	}
	s.Alphanumeric = s.Letters + s.Digits
	if s.TotalChars > 0 {
		s.ConsecutiveRuns = s.CharTypeTransitions + 1
	}
	s.RatioLetters = ratio(s.Letters, s.TotalChars)
	s.RatioDigits = ratio(s.Digits, s.TotalChars)
	s.RatioPunctuation = ratio(s.Punctuation, s.TotalChars)
	s.RatioSymbols = ratio(s.Symbols, s.TotalChars)
	s.RatioWhitespace = ratio(s.Whitespace, s.TotalChars)
	s.RatioNonASCII = ratio(s.NonASCII, s.TotalChars)
	s.RatioAlphanumeric = ratio(s.Alphanumeric, s.TotalChars)
	s.RatioUppercase = ratio(s.Uppercase, s.Letters)
	s.RatioLowercase = ratio(s.Lowercase, s.Letters)
	s.RatioAlphaToNumeric = alphaToNumeric(s.Letters, s.Digits)
	s.CaseRatio = ratio(s.Uppercase, s.Lowercase)
	s.CategoryEntropy = shannon.Entropy(acc.categories[:], acc.total)
	s.CharEntropy = acc.charEntropy()
	tracer().P("chars", s.TotalChars).Debugf("metrics: %d runs, %d distinct code-points",
		s.ConsecutiveRuns, len(acc.chars))
	return s
}

// charEntropy sums up in code-point order, making results reproducible
// bit for bit.
func (acc *accumulator) charEntropy() float64 {
	runes := make([]rune, 0, len(acc.chars))
	for r := range acc.chars {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	var h shannon.Accumulator
	h.Reset(acc.total)
	for _, r := range runes {
		h.Add(acc.chars[r])
	}
	return h.Entropy()
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func alphaToNumeric(letters, digits int) float64 {
	if letters == 0 {
		return 0
	}
	if digits == 0 {
		return float64(letters) * AlphaNumericSentinel
	}
	return float64(letters) / float64(digits)
}

// AsMap returns the metrics keyed by their snake-case names, e.g.
// "ratio_alpha_to_numeric". Counts are converted to float64.
func (s Snapshot) AsMap() map[string]float64 {
	return map[string]float64{
		"total_chars":            float64(s.TotalChars),
		"letters":                float64(s.Letters),
		"digits":                 float64(s.Digits),
		"punctuation":            float64(s.Punctuation),
		"symbols":                float64(s.Symbols),
		"whitespace":             float64(s.Whitespace),
		"other":                  float64(s.Other),
		"non_ascii":              float64(s.NonASCII),
		"uppercase":              float64(s.Uppercase),
		"lowercase":              float64(s.Lowercase),
		"alphanumeric":           float64(s.Alphanumeric),
		"ratio_letters":          s.RatioLetters,
		"ratio_digits":           s.RatioDigits,
		"ratio_punctuation":      s.RatioPunctuation,
		"ratio_symbols":          s.RatioSymbols,
		"ratio_whitespace":       s.RatioWhitespace,
		"ratio_non_ascii":        s.RatioNonASCII,
		"ratio_alphanumeric":     s.RatioAlphanumeric,
		"ratio_uppercase":        s.RatioUppercase,
		"ratio_lowercase":        s.RatioLowercase,
		"ratio_alpha_to_numeric": s.RatioAlphaToNumeric,
		"char_entropy":           s.CharEntropy,
		"category_entropy":       s.CategoryEntropy,
		"case_ratio":             s.CaseRatio,
		"char_type_transitions":  float64(s.CharTypeTransitions),
		"consecutive_runs":       float64(s.ConsecutiveRuns),
		"punctuation_diversity":  float64(s.PunctuationDiversity),
	}
}
