/*
Package category maps Unicode code-points to their general category.

Content

Every Unicode code-point carries a general category property, a two-letter
code like "Lu" (uppercase letter) or "Po" (other punctuation). The first
letter of the code is the category group ("L", "P", …). Both are total
functions: code-points without an assignment are of category "Cn".

The tables in this package are generated from the Unicode Character Database
tables of the Go runtime (see sub-package internal/generator). They are the
single source of truth for all the classification schemes of this module:
the six-bucket character classes of package charclass, the word characters
of package tokenize and the trigram labels of package trigram.

Attention

Tables are initialized lazily on first use. Initialization is
concurrency-safe and tables are read-only afterwards.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package category

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator -v

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Category is a Unicode general category. Must be convertable to int.
type Category int8

// Count is the number of general categories, including Cn.
const Count = int(Cn) + 1

// Group is a general category group, i.e. the first letter of a category code.
type Group int8

// All the category groups, in the order of the categories they subsume.
const (
	LetterGroup      Group = iota // L
	MarkGroup                     // M
	NumberGroup                   // N
	PunctuationGroup              // P
	SymbolGroup                   // S
	SeparatorGroup                // Z
	OtherGroup                    // C
)

const groupLetters = "LMNPSZC"

// String returns the one-letter code of a group.
func (g Group) String() string {
	if g < 0 || int(g) >= len(groupLetters) {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupLetters[g : g+1]
}

// Group returns the category group of c.
func (c Category) Group() Group {
	switch {
	case c <= Lo:
		return LetterGroup
	case c <= Me:
		return MarkGroup
	case c <= No:
		return NumberGroup
	case c <= Po:
		return PunctuationGroup
	case c <= So:
		return SymbolGroup
	case c <= Zp:
		return SeparatorGroup
	}
	return OtherGroup
}

// Of returns the general category of a code-point. Negative values, values
// beyond unicode.MaxRune and unassigned code-points are of category Cn.
func Of(r rune) Category {
	setupOnce.Do(setup)
	if r >= 0 && r <= unicode.MaxLatin1 {
		return latin1[r]
	}
	if r < 0 || r > unicode.MaxRune {
		return Cn
	}
	for _, c := range searchOrder {
		if unicode.Is(rangeFromCategory[c], r) {
			return c
		}
	}
	return Cn
}

// GroupOf returns the category group of a code-point.
func GroupOf(r rune) Group {
	return Of(r).Group()
}

// ParseCategory returns the category for a two-letter code.
func ParseCategory(code string) (Category, error) {
	for c := Category(0); int(c) < Count; c++ {
		if c.String() == code {
			return c, nil
		}
	}
	return Cn, fmt.Errorf("category: unknown general category %q", code)
}

// UnicodeVersion is the version of the Unicode Character Database the
// tables are derived from.
func UnicodeVersion() string {
	return unicode.Version
}

// Table returns the range table for a category. Cn has no table, as it is
// the complement of all the others; Table returns nil for it.
func Table(c Category) *unicode.RangeTable {
	setupOnce.Do(setup)
	if c < 0 || int(c) >= len(rangeFromCategory) {
		return nil
	}
	return rangeFromCategory[c]
}

// --- Setup ------------------------------------------------------------

var setupOnce sync.Once

var latin1 [unicode.MaxLatin1 + 1]Category

// Categories beyond Latin-1 are searched in order of their typical frequency
// in natural-language text.
var searchOrder = []Category{
	Lo, Ll, Lu, Mn, So, Nd, Po, Mc, Lm, Sm, Cf, Zs, No, Ps, Pe, Pd,
	Sk, Sc, Nl, Lt, Me, Pi, Pf, Pc, Zl, Zp, Cc, Co, Cs,
}

func setup() {
	setupCategoryTables()
	for r := rune(0); r <= unicode.MaxLatin1; r++ {
		latin1[r] = Cn
		for c := Category(0); c < Cn; c++ {
			if unicode.Is(rangeFromCategory[c], r) {
				latin1[r] = c
				break
			}
		}
	}
	tracer().P("unicode", unicode.Version).Debugf("category tables initialized")
}
