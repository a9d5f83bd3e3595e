/*
Package charclass sorts code-points into six mutually exclusive character classes.

Content

Text-quality signals are mostly ratios of character classes: how many
letters, digits, punctuation characters, symbols and whitespace characters a
text consists of. Every code-point falls into exactly one Bucket. Buckets are
derived from the general category of a code-point (see package category),
checking rules in this order and taking the first match:

   Whitespace    Unicode property White_Space
   Digit         category Nd (decimal digits only)
   Letter        category group L
   Symbol        percent sign %
   Punctuation   category group P
   Symbol        category group S
   Other         everything else, e.g. marks, controls, unassigned

The percent sign is general category Po, but is counted as a symbol
together with $, ^ and +. All other ASCII punctuation, including # & * @,
follows its category.

Case is orthogonal to buckets: a code-point is uppercase if its category is
Lu and lowercase if its category is Ll. Characters without case, like
digits or CJK ideographs, are neither.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package charclass

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/textstat/category"
)

// Bucket is one of six character classes.
type Bucket int8

// The character classes, in order of precedence.
const (
	Whitespace Bucket = iota
	Digit
	Letter
	Punctuation
	Symbol
	Other
)

// NumBuckets is the number of distinct buckets.
const NumBuckets = int(Other) + 1

var bucketNames = [...]string{"whitespace", "digit", "letter", "punctuation", "symbol", "other"}

func (b Bucket) String() string {
	if b < 0 || int(b) >= NumBuckets {
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
	return bucketNames[b]
}

// percentSign is of category Po but bucketed as a symbol.
const percentSign = '%'

// Class is the classification of a single code-point.
type Class struct {
	Bucket   Bucket            // one of six mutually exclusive classes
	Category category.Category // general category
}

// Classify returns the classification of a code-point.
func Classify(r rune) Class {
	cat := category.Of(r)
	return Class{Bucket: bucketFor(r, cat), Category: cat}
}

func bucketFor(r rune, cat category.Category) Bucket {
	if unicode.Is(unicode.White_Space, r) {
		return Whitespace
	}
	if cat == category.Nd {
		return Digit
	}
	if r == percentSign {
		return Symbol
	}
	switch cat.Group() {
	case category.LetterGroup:
		return Letter
	case category.PunctuationGroup:
		return Punctuation
	case category.SymbolGroup:
		return Symbol
	}
	return Other
}

// Group is the category group of the classified code-point.
func (c Class) Group() category.Group {
	return c.Category.Group()
}

// Uppercase is true for category Lu.
func (c Class) Uppercase() bool {
	return c.Category == category.Lu
}

// Lowercase is true for category Ll.
func (c Class) Lowercase() bool {
	return c.Category == category.Ll
}

// Alphanumeric is true for letters and digits.
func (c Class) Alphanumeric() bool {
	return c.Bucket == Letter || c.Bucket == Digit
}

func (c Class) String() string {
	return fmt.Sprintf("[%s %s]", c.Bucket, c.Category)
}

// NonASCII is true for code-points beyond U+007F.
func NonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
