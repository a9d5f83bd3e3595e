package trigram

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestHi(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := CategoryTrigrams("Hi!")
	exp := Table{
		{Start, "Lu", "Ll"}: 1,
		{"Lu", "Ll", "Po"}:  1,
		{"Ll", "Po", End}:   1,
	}
	if !reflect.DeepEqual(table, exp) {
		t.Errorf("expected %v, have %v", exp, table)
	}
	groups := GroupTrigrams("Hi!")
	exp = Table{
		{Start, "L", "L"}: 1,
		{"L", "L", "P"}:   1,
		{"L", "P", End}:   1,
	}
	if !reflect.DeepEqual(groups, exp) {
		t.Errorf("expected %v, have %v", exp, groups)
	}
	for k, r := range CategoryTrigramRatios("Hi!") {
		if math.Abs(r-1.0/3.0) > 1e-10 {
			t.Errorf("expected ratio 1/3 for %s, is %g", k, r)
		}
	}
}

func TestLongerText(t *testing.T) {
	table := CategoryTrigrams("Hello, world!")
	tests := []struct {
		key   Key
		count int
	}{
		{Key{Start, "Lu", "Ll"}, 1},
		{Key{"Lu", "Ll", "Ll"}, 1},
		{Key{"Ll", "Ll", "Ll"}, 5},
		{Key{"Ll", "Po", "Zs"}, 1},
		{Key{"Po", "Zs", "Ll"}, 1},
		{Key{"Ll", "Po", End}, 1},
	}
	for _, test := range tests {
		if table[test.key] != test.count {
			t.Errorf("expected count %d for %s, have %d", test.count, test.key, table[test.key])
		}
	}
	groups := GroupTrigrams("Hello, world!")
	if groups[Key{"L", "L", "L"}] != 6 {
		t.Errorf("expected 6 (L,L,L), have %d", groups[Key{"L", "L", "L"}])
	}
	if groups[Key{"L", "P", "Z"}] != 1 || groups[Key{"P", "Z", "L"}] != 1 {
		t.Errorf("expected separator transitions, have %v", groups)
	}
	if table.Total() != 13 || groups.Total() != 13 {
		t.Errorf("expected 13 windows, have %d/%d", table.Total(), groups.Total())
	}
}

func TestShortTexts(t *testing.T) {
	if len(CategoryTrigrams("")) != 0 || len(GroupTrigramRatios("")) != 0 {
		t.Error("expected empty tables for empty text")
	}
	if CategoryTrigrams("") == nil {
		t.Error("expected empty table to be non-nil")
	}
	one := CategoryTrigrams("A")
	if len(one) != 1 || one[Key{Start, "Lu", End}] != 1 {
		t.Errorf("expected single (START,Lu,END), have %v", one)
	}
	if g := GroupTrigrams("A"); len(g) != 1 || g[Key{Start, "L", End}] != 1 {
		t.Errorf("expected single (START,L,END), have %v", g)
	}
	two := CategoryTrigrams("A1")
	exp := Table{{Start, "Lu", "Nd"}: 1, {"Lu", "Nd", End}: 1}
	if !reflect.DeepEqual(two, exp) {
		t.Errorf("expected %v, have %v", exp, two)
	}
}

func TestNumericTransitions(t *testing.T) {
	table := CategoryTrigrams("A1B2C3")
	exp := Table{
		{Start, "Lu", "Nd"}: 1,
		{"Lu", "Nd", "Lu"}:  2,
		{"Nd", "Lu", "Nd"}:  2,
		{"Lu", "Nd", End}:   1,
	}
	if !reflect.DeepEqual(table, exp) {
		t.Errorf("expected %v, have %v", exp, table)
	}
	groups := GroupTrigrams("A1B2C3")
	if groups[Key{"L", "N", "L"}] != 2 || groups[Key{"N", "L", "N"}] != 2 {
		t.Errorf("unexpected group trigrams %v", groups)
	}
}

func TestMultilingual(t *testing.T) {
	table := CategoryTrigrams("Hello你好!")
	for _, k := range []Key{
		{Start, "Lu", "Ll"}, {"Ll", "Ll", "Lo"}, {"Ll", "Lo", "Lo"},
		{"Lo", "Lo", "Po"}, {"Lo", "Po", End},
	} {
		if table[k] != 1 {
			t.Errorf("expected count 1 for %s, have %d", k, table[k])
		}
	}
	groups := GroupTrigrams("Hello你好!")
	if groups[Key{"L", "L", "L"}] != 5 || groups[Key{"L", "L", "P"}] != 1 {
		t.Errorf("unexpected group trigrams %v", groups)
	}
}

func TestRatioSums(t *testing.T) {
	for _, text := range []string{"Hello!", "ABC123", "Hello, world!",
		"Mixed: 你好, नमस्ते!", "\xff broken"} {
		for _, ratios := range []Ratios{CategoryTrigramRatios(text), GroupTrigramRatios(text)} {
			sum := 0.0
			for _, k := range ratios.Keys() {
				sum += ratios[k]
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("%q: expected ratios to sum up to 1, is %g", text, sum)
			}
		}
	}
}

func TestGroupIsNotReduction(t *testing.T) {
	// Ll→Lu collapses to L→L
	cats := CategoryTrigrams("aB")
	groups := GroupTrigrams("aB")
	if len(cats) != 2 || len(groups) != 2 {
		t.Fatalf("expected 2 windows each, have %v / %v", cats, groups)
	}
	if groups[Key{Start, "L", "L"}] != 1 || groups[Key{"L", "L", End}] != 1 {
		t.Errorf("unexpected group trigrams %v", groups)
	}
}

func TestGranularity(t *testing.T) {
	g, err := ParseGranularity("group")
	if err != nil || g != ByGroup {
		t.Errorf("expected ByGroup, have %s, %v", g, err)
	}
	if _, err = ParseGranularity("script"); !errors.Is(err, ErrUnknownGranularity) {
		t.Errorf("expected ErrUnknownGranularity, have %v", err)
	}
	if _, err = New(Granularity(7)); !errors.Is(err, ErrUnknownGranularity) {
		t.Errorf("expected ErrUnknownGranularity, have %v", err)
	}
	a, err := New(ByCategory)
	if err != nil {
		t.Fatal(err)
	}
	if a.Granularity() != ByCategory {
		t.Errorf("expected granularity category, is %s", a.Granularity())
	}
	if !reflect.DeepEqual(a.CountsRunes([]rune("Hi!")), CategoryTrigrams("Hi!")) {
		t.Error("expected CountsRunes to equal Counts")
	}
}

func ExampleAnalyzer_Counts() {
	a, _ := New(ByGroup)
	table := a.Counts("Hi 5")
	for _, k := range table.Keys() {
		fmt.Printf("%s=%d\n", k, table[k])
	}
	// Output:
	// (L,L,Z)=1
	// (L,Z,N)=1
	// (START,L,L)=1
	// (Z,N,END)=1
}
