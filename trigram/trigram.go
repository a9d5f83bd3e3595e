/*
Package trigram computes Unicode category transition statistics.

Content

Every code-point of a text is labeled with its general category ("Lu", "Po",
…) or, at a coarser granularity, with its category group ("L", "P", …). The
label sequence is padded with sentinels START and END, and a window of width
three slides across it. For a text of n code-points there are n+2 labels
and n windows:

   "Hi!"   START Lu Ll Po END
           (START,Lu,Ll) (Lu,Ll,Po) (Ll,Po,END)

A Table counts the occurrences of each label triple, Ratios relate them to
the number of windows. Both are empty for an empty text.

Group labels are derived per code-point before windowing. A group table
cannot be computed from a category table, as transitions between distinct
categories of the same group collapse (Lu→Ll becomes L→L).

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trigram

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textstat/category"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Sentinel labels at the boundaries of a text.
const (
	Start = "START"
	End   = "END"
)

// Granularity selects the labels of code-points.
type Granularity int8

// Supported granularities.
const (
	ByCategory Granularity = iota // two-letter general category
	ByGroup                       // one-letter category group
)

var granularityNames = [...]string{"category", "group"}

func (g Granularity) String() string {
	if g < 0 || int(g) >= len(granularityNames) {
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// ErrUnknownGranularity is returned for granularities other than ByCategory
// and ByGroup.
var ErrUnknownGranularity = errors.New("unknown trigram granularity")

// ParseGranularity returns the granularity for its name, "category" or "group".
func ParseGranularity(name string) (Granularity, error) {
	for i, n := range granularityNames {
		if strings.EqualFold(n, name) {
			return Granularity(i), nil
		}
	}
	return ByCategory, fmt.Errorf("trigram: %q: %w", name, ErrUnknownGranularity)
}

// Key is a triple of labels.
type Key [3]string

func (k Key) String() string {
	return "(" + k[0] + "," + k[1] + "," + k[2] + ")"
}

func (k Key) less(other Key) bool {
	for i := range k {
		if k[i] != other[i] {
			return k[i] < other[i]
		}
	}
	return false
}

// Table maps label triples to their number of occurrences.
type Table map[Key]int

// Ratios maps label triples to their share of all windows.
type Ratios map[Key]float64

// Total returns the number of windows counted.
func (t Table) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Keys returns the label triples of the table, sorted.
func (t Table) Keys() []Key {
	keys := make([]Key, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// Keys returns the label triples, sorted.
func (r Ratios) Keys() []Key {
	keys := make([]Key, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
}

// Analyzer counts label trigrams at a fixed granularity.
// Analyzers hold no state between calls and may be shared.
type Analyzer struct {
	granularity Granularity
	label       func(rune) string
}

// New creates an analyzer for a granularity. Granularities other than
// ByCategory and ByGroup are rejected with ErrUnknownGranularity.
func New(g Granularity) (*Analyzer, error) {
	a := &Analyzer{granularity: g}
	switch g {
	case ByCategory:
		a.label = categoryLabel
	case ByGroup:
		a.label = groupLabel
	default:
		return nil, fmt.Errorf("trigram: %s: %w", g, ErrUnknownGranularity)
	}
	return a, nil
}

func categoryLabel(r rune) string {
	return category.Of(r).String()
}

func groupLabel(r rune) string {
	return category.GroupOf(r).String()
}

// Granularity returns the granularity of the analyzer.
func (a *Analyzer) Granularity() Granularity {
	return a.granularity
}

// Counts returns the trigram counts of a text. Invalid UTF-8 is decoded as
// U+FFFD.
func (a *Analyzer) Counts(text string) Table {
	var w window
	for _, r := range text {
		w.push(a.label(r))
	}
	return w.finish()
}

// CountsRunes returns the trigram counts of a sequence of code-points.
func (a *Analyzer) CountsRunes(runes []rune) Table {
	var w window
	for _, r := range runes {
		w.push(a.label(r))
	}
	return w.finish()
}

// Ratios returns the trigram counts of a text divided by the number of
// windows. The values sum up to 1 for non-empty texts.
func (a *Analyzer) Ratios(text string) Ratios {
	return a.Counts(text).Ratios()
}

// Ratios divides every count by the total number of windows.
func (t Table) Ratios() Ratios {
	ratios := make(Ratios, len(t))
	n := t.Total()
	if n == 0 {
		return ratios
	}
	for k, c := range t {
		ratios[k] = float64(c) / float64(n)
	}
	return ratios
}

// window is a sliding window over the label sequence. The third label of a
// window is the one pushed last.
type window struct {
	prev2, prev1 string
	n            int
	table        Table
}

func (w *window) push(label string) {
	switch w.n {
	case 0:
		w.table = make(Table)
		w.prev2, w.prev1 = Start, label
	default:
		w.table[Key{w.prev2, w.prev1, label}]++
		w.prev2, w.prev1 = w.prev1, label
	}
	w.n++
}

func (w *window) finish() Table {
	if w.n == 0 {
		return Table{}
	}
	w.table[Key{w.prev2, w.prev1, End}]++
	tracer().P("windows", w.n).Debugf("trigram: %d distinct trigrams", len(w.table))
	return w.table
}

// --- Convenience functions -------------------------------------------------

var (
	byCategory = &Analyzer{granularity: ByCategory, label: categoryLabel}
	byGroup    = &Analyzer{granularity: ByGroup, label: groupLabel}
)

// CategoryTrigrams counts general category trigrams of a text.
func CategoryTrigrams(text string) Table {
	return byCategory.Counts(text)
}

// CategoryTrigramRatios returns the shares of general category trigrams of a text.
func CategoryTrigramRatios(text string) Ratios {
	return byCategory.Ratios(text)
}

// GroupTrigrams counts category group trigrams of a text.
func GroupTrigrams(text string) Table {
	return byGroup.Counts(text)
}

// GroupTrigramRatios returns the shares of category group trigrams of a text.
func GroupTrigramRatios(text string) Ratios {
	return byGroup.Ratios(text)
}
