/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Only the common format of property files is supported: a code-point or a
range of code-points, followed by semicolon-separated fields and an optional
comment, e.g.

   0041..005A    ; Lu #  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and its
// clients. The scanner will read lines and wrap the content of each data
// line into a token.
type Token struct {
	LineNo    int       // line of the data item within the input source
	TokenType TokenType // type of token
	runeFrom  rune      // first/single rune
	runeTo    rune      // final rune of range (may be identical to runeFrom)
	Fields    []string  // fields of the line, trimmed, without the code-point column
	Comment   string    // rest-of-line comment of data item lines
	Error     error     // error condition, if any
}

// TokenType discriminates data lines.
type TokenType int8

// Types of lines.
const (
	Undefined TokenType = iota
	EOF
	SingleDataItem
	RangeDataItem
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case SingleDataItem:
		return "single"
	case RangeDataItem:
		return "range"
	}
	return "undefined"
}

// newToken creates a token initialized with a line index.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U type=%s %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
