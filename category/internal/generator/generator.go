/*
Package for a generator for Unicode general category tables.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)


Contents

This is a generator for the general category tables of package category.
Categories are taken from the Unicode Character Database tables of the Go
runtime, which are generated from "UnicodeData.txt" by the Go team. Run the
generator again whenever the Go runtime moves to a new Unicode version;
please do not patch the output by hand.


Usage

   generator [-v] [-ucd DerivedGeneralCategory.txt] [-o categorytables.go]

This creates a file "categorytables.go" in the current directory. It is
designed to be called from the "category" directory.

With flag -ucd the runtime tables are cross-checked against a UCD file in
the format of "extracted/DerivedGeneralCategory.txt". The generator refuses
to write output if the two sources disagree. The complete UCD of the runtime's
Unicode version is fetched into internal/testdata/ucd by

   cd internal/testdata && go run download.go

after which the file is passed as

   generator -ucd ../internal/testdata/ucd/DerivedGeneralCategory.txt


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/npillmayer/textstat/internal/testdata"
	"github.com/npillmayer/textstat/internal/ucdparse"
	"golang.org/x/text/unicode/rangetable"
)

var logger = log.New(os.Stderr, "category generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// The order of the categories defines the numeric values of the constants;
// groups must be contiguous.
var categoryNames = []string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Cs", "Co", "Cn",
}

// Load a UCD file of format DerivedGeneralCategory.txt and collect
// code-points per category.
func loadUCDFile(path string) (map[string][]rune, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "loading "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	runeranges := make(map[string][]rune, len(categoryNames))
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		from, to := token.Range()
		cat := token.Field(1)
		list := runeranges[cat]
		for r := from; r <= to; r++ {
			list = append(list, r)
		}
		runeranges[cat] = list
	})
	return runeranges, err
}

// crossCheck compares the runtime tables with the tables built from a UCD file.
func crossCheck(ucd map[string][]rune) (mismatches int) {
	defer timeTrack(time.Now(), "cross-checking tables")
	for _, name := range categoryNames {
		if name == "Cn" {
			continue // Cn is the complement and may be omitted from UCD extracts
		}
		ucdTable := rangetable.New(ucd[name]...)
		rt := unicode.Categories[name]
		for r := rune(0); r <= unicode.MaxRune; r++ {
			if unicode.Is(rt, r) != unicode.Is(ucdTable, r) {
				if mismatches < 20 {
					logger.Printf("category %s differs for %#U", name, r)
				}
				mismatches++
			}
		}
	}
	return
}

// checkAssigned asserts that every code-point assigned in the current Unicode
// version falls into one of the generated categories.
func checkAssigned() {
	assigned, v := testdata.Assigned(unicode.Version)
	if assigned == nil {
		logger.Fatalf("no assigned-table for Unicode %s or older", unicode.Version)
	}
	if v != unicode.Version {
		logger.Printf("checking against assigned-table of Unicode %s", v)
	}
	rangetable.Visit(assigned, func(r rune) {
		for _, name := range categoryNames[:len(categoryNames)-1] {
			if unicode.Is(unicode.Categories[name], r) {
				return
			}
		}
		logger.Fatalf("assigned code-point %#U is without category", r)
	})
}

// --- Templates --------------------------------------------------------

var header = `package category

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"strconv"
	"unicode"
)
`

var templateCategoryConsts = `
// These are all the Unicode general categories.
const ({{$i:=0}}
{{range .}}	{{.}} Category = {{$i}}{{$i = inc $i}}
{{end}})
`

var templateCategoryStringer = `
const _Category_name = "{{range .}}{{.}}{{end}}"

// Stringer for type Category
func (c Category) String() string {
	if c < 0 || c > Cn {
		return "Category(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return _Category_name[2*int(c) : 2*int(c)+2]
}
`

var templateRangeTables = `
// Will be initialized in setupCategoryTables()
var rangeFromCategory []*unicode.RangeTable

func setupCategoryTables() {
	rangeFromCategory = make([]*unicode.RangeTable, int(Cn)+1)
{{range .}}{{if ne . "Cn"}}	rangeFromCategory[int({{.}})] = unicode.{{.}}
{{end}}{{end}}}
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	ucdFile := flag.String("ucd", "", "UCD file DerivedGeneralCategory.txt to cross-check against")
	outFile := flag.String("o", "categorytables.go", "output file")
	flag.Parse()
	verbose = *doVerbose
	if verbose {
		logger.Printf("generating tables for Unicode %s", unicode.Version)
	}
	for _, name := range categoryNames[:len(categoryNames)-1] {
		if _, ok := unicode.Categories[name]; !ok {
			logger.Fatalf("runtime has no table for category %s", name)
		}
	}
	checkAssigned()
	if *ucdFile != "" {
		path := *ucdFile
		if !strings.ContainsRune(path, os.PathSeparator) {
			path = testdata.UCDPath(path)
		}
		ucd, err := loadUCDFile(path)
		checkFatal(err)
		if n := crossCheck(ucd); n > 0 {
			logger.Fatalf("%d code-points differ between runtime tables and %s", n, path)
		}
	}
	f, ioerr := os.Create(*outFile)
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	_, err := w.WriteString(header)
	checkFatal(err)
	t := makeTemplate("category constants", templateCategoryConsts)
	checkFatal(t.Execute(w, categoryNames))
	t = makeTemplate("category stringer", templateCategoryStringer)
	checkFatal(t.Execute(w, categoryNames))
	t = makeTemplate("category range tables", templateRangeTables)
	checkFatal(t.Execute(w, categoryNames))
	checkFatal(w.Flush())
	if verbose {
		logger.Printf("wrote %d categories to %s", len(categoryNames), *outFile)
	}
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", fmt.Sprint(err))
	}
}
