package category

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"strconv"
	"unicode"
)

// These are all the Unicode general categories.
const (
	Lu Category = 0
	Ll Category = 1
	Lt Category = 2
	Lm Category = 3
	Lo Category = 4
	Mn Category = 5
	Mc Category = 6
	Me Category = 7
	Nd Category = 8
	Nl Category = 9
	No Category = 10
	Pc Category = 11
	Pd Category = 12
	Ps Category = 13
	Pe Category = 14
	Pi Category = 15
	Pf Category = 16
	Po Category = 17
	Sm Category = 18
	Sc Category = 19
	Sk Category = 20
	So Category = 21
	Zs Category = 22
	Zl Category = 23
	Zp Category = 24
	Cc Category = 25
	Cf Category = 26
	Cs Category = 27
	Co Category = 28
	Cn Category = 29
)

const _Category_name = "LuLlLtLmLoMnMcMeNdNlNoPcPdPsPePiPfPoSmScSkSoZsZlZpCcCfCsCoCn"

// Stringer for type Category
func (c Category) String() string {
	if c < 0 || c > Cn {
		return "Category(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return _Category_name[2*int(c) : 2*int(c)+2]
}

// Will be initialized in setupCategoryTables()
var rangeFromCategory []*unicode.RangeTable

func setupCategoryTables() {
	rangeFromCategory = make([]*unicode.RangeTable, int(Cn)+1)
	rangeFromCategory[int(Lu)] = unicode.Lu
	rangeFromCategory[int(Ll)] = unicode.Ll
	rangeFromCategory[int(Lt)] = unicode.Lt
	rangeFromCategory[int(Lm)] = unicode.Lm
	rangeFromCategory[int(Lo)] = unicode.Lo
	rangeFromCategory[int(Mn)] = unicode.Mn
	rangeFromCategory[int(Mc)] = unicode.Mc
	rangeFromCategory[int(Me)] = unicode.Me
	rangeFromCategory[int(Nd)] = unicode.Nd
	rangeFromCategory[int(Nl)] = unicode.Nl
	rangeFromCategory[int(No)] = unicode.No
	rangeFromCategory[int(Pc)] = unicode.Pc
	rangeFromCategory[int(Pd)] = unicode.Pd
	rangeFromCategory[int(Ps)] = unicode.Ps
	rangeFromCategory[int(Pe)] = unicode.Pe
	rangeFromCategory[int(Pi)] = unicode.Pi
	rangeFromCategory[int(Pf)] = unicode.Pf
	rangeFromCategory[int(Po)] = unicode.Po
	rangeFromCategory[int(Sm)] = unicode.Sm
	rangeFromCategory[int(Sc)] = unicode.Sc
	rangeFromCategory[int(Sk)] = unicode.Sk
	rangeFromCategory[int(So)] = unicode.So
	rangeFromCategory[int(Zs)] = unicode.Zs
	rangeFromCategory[int(Zl)] = unicode.Zl
	rangeFromCategory[int(Zp)] = unicode.Zp
	rangeFromCategory[int(Cc)] = unicode.Cc
	rangeFromCategory[int(Cf)] = unicode.Cf
	rangeFromCategory[int(Cs)] = unicode.Cs
	rangeFromCategory[int(Co)] = unicode.Co
}
