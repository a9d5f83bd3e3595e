package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a line-level scanner for UCD files.
//
// Our line-level scanner will operate by calling scanning steps in a chain.
// Each step function inspects the current line and then possibly branches out
// to a subsequent step function. A step function returning nil ends the chain
// for the current line.
type Scanner struct {
	lines     *bufio.Scanner
	line      string      // remainder of the current line
	lineNo    int         // current line number, 1…n
	step      scannerStep // the next scanner step to execute in a chain
	LastError error       // last error, if any
	Token     *Token      // last token produced by scanner
}

// We're buiding up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
type scannerStep func(*Token) scannerStep

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of a UCD file and calls callback f on it.
// Comment lines and empty lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next data line. Next returns false at the end
// of input or on the first error; the error is then available in LastError.
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.line = sc.lines.Text()
		sc.Token = newToken(sc.lineNo)
		if sc.skippable() {
			continue
		}
		for sc.step = sc.scanRuneRange; sc.step != nil; {
			sc.step = sc.step(sc.Token)
		}
		if sc.Token.Error != nil {
			sc.LastError = sc.Token.Error
			return false
		}
		return true
	}
	if err := sc.lines.Err(); err != nil {
		sc.LastError = err
	}
	sc.Token = newToken(sc.lineNo)
	sc.Token.TokenType = EOF
	return false
}

func (sc *Scanner) skippable() bool {
	trimmed := strings.TrimSpace(sc.line)
	return trimmed == "" || trimmed[0] == '#'
}

// scanRuneRange matches a single code-point or a range "XXXX..YYYY".
func (sc *Scanner) scanRuneRange(token *Token) scannerStep {
	semi := strings.IndexByte(sc.line, ';')
	if semi < 0 {
		token.Error = fmt.Errorf("line %d: missing field separator", sc.lineNo)
		return nil
	}
	cps := strings.TrimSpace(sc.line[:semi])
	sc.line = sc.line[semi+1:]
	from, to := cps, cps
	token.TokenType = SingleDataItem
	if i := strings.Index(cps, ".."); i >= 0 {
		from, to = cps[:i], cps[i+2:]
		token.TokenType = RangeDataItem
	}
	var err error
	if token.runeFrom, err = parseHex(from); err != nil {
		token.Error = fmt.Errorf("line %d: %w", sc.lineNo, err)
		return nil
	}
	if token.runeTo, err = parseHex(to); err != nil {
		token.Error = fmt.Errorf("line %d: %w", sc.lineNo, err)
		return nil
	}
	if token.runeTo < token.runeFrom {
		token.Error = fmt.Errorf("line %d: invalid range %s", sc.lineNo, cps)
		return nil
	}
	return sc.scanItemBody
}

// scanItemBody splits the remainder of a line into fields and comment.
func (sc *Scanner) scanItemBody(token *Token) scannerStep {
	a := strings.SplitN(sc.line, "#", 2)
	if len(a) > 1 {
		token.Comment = strings.TrimSpace(a[1])
	}
	for _, f := range strings.Split(a[0], ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	sc.line = ""
	return nil
}

func parseHex(hex string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
