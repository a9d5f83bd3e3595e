package category

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textstat/internal/testdata"
	"github.com/npillmayer/textstat/internal/ucdparse"
	"golang.org/x/text/unicode/rangetable"
)

func TestCategoryStrings(t *testing.T) {
	if Lu.String() != "Lu" || Po.String() != "Po" || Cn.String() != "Cn" {
		t.Errorf("unexpected category codes: %s %s %s", Lu, Po, Cn)
	}
	if s := Category(42).String(); s != "Category(42)" {
		t.Errorf("expected out-of-range category to print as Category(42), is %s", s)
	}
	for c := Category(0); int(c) < Count; c++ {
		p, err := ParseCategory(c.String())
		if err != nil || p != c {
			t.Errorf("ParseCategory(%s) = %s, %v", c, p, err)
		}
	}
	if _, err := ParseCategory("Xx"); err == nil {
		t.Error("expected error for unknown category code Xx")
	}
}

func TestGroups(t *testing.T) {
	for c := Category(0); int(c) < Count; c++ {
		g := c.Group()
		if g.String() != c.String()[:1] {
			t.Errorf("group of %s should be %s, is %s", c, c.String()[:1], g)
		}
	}
	if GroupOf('!') != PunctuationGroup {
		t.Errorf("'!' should be in group P, is %s", GroupOf('!'))
	}
}

func TestCategoryOf(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		r   rune
		cat Category
	}{
		{'H', Lu}, {'i', Ll}, {'!', Po}, {' ', Zs}, {'1', Nd}, {'$', Sc},
		{'^', Sk}, {'+', Sm}, {'\t', Cc}, {'\u00ad', Cf}, {'\u4e16', Lo},
		{'\u0301', Mn}, {'\u0903', Mc}, {'\u2028', Zl}, {'\u2029', Zp},
		{'\u01c5', Lt}, {'\u02b0', Lm}, {'\u216b', Nl}, {'\u00bd', No}, {'_', Pc},
		{'-', Pd}, {'(', Ps}, {')', Pe}, {'\u00ab', Pi}, {'\u00bb', Pf}, {'\u00a9', So},
		{'\ue000', Co}, {0xd800, Cs}, {0x10ffff, Cn}, {-1, Cn},
		{unicode.MaxRune + 1, Cn},
	}
	for _, test := range tests {
		if c := Of(test.r); c != test.cat {
			t.Errorf("category of %#U should be %s, is %s", test.r, test.cat, c)
		}
	}
}

func TestExcerptOfUCD(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r, err := testdata.UCDReader(testdata.CategoryExcerpt)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	err = ucdparse.Parse(r, func(token *ucdparse.Token) {
		want, err := ParseCategory(token.Field(1))
		if err != nil {
			t.Fatalf("line %d: %v", token.LineNo, err)
		}
		from, to := token.Range()
		for r := from; r <= to; r++ {
			n++
			if c := Of(r); c != want {
				t.Errorf("line %d: category of %#U should be %s, is %s", token.LineNo, r, want, c)
			}
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("checked %d code-points against UCD excerpt", n)
}

func TestAssignedCodePointsHaveCategory(t *testing.T) {
	assigned, v := testdata.Assigned(UnicodeVersion())
	if assigned == nil {
		t.Fatalf("no assigned-table for Unicode %s or older", UnicodeVersion())
	}
	t.Logf("checking code-points assigned in Unicode %s", v)
	missing := 0
	rangetable.Visit(assigned, func(r rune) {
		if Of(r) == Cn {
			missing++
		}
	})
	if missing > 0 {
		t.Errorf("%d assigned code-points are reported as unassigned", missing)
	}
}

func TestTable(t *testing.T) {
	if Table(Cn) != nil {
		t.Error("Cn should not have a range table")
	}
	if !unicode.Is(Table(Lu), 'A') {
		t.Error("range table for Lu should contain 'A'")
	}
}
