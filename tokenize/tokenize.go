/*
Package tokenize splits text into word tokens and, optionally, single-character
punctuation tokens.

Content

A word is a maximal run of word characters. Word characters are letters
(category group L), decimal digits (category Nd) and combining marks
(category group M). Every other code-point is a boundary between words.

A Tokenizer operates in one of two modes. In word-only mode, boundaries do not
produce any tokens. With punctuation included, every boundary code-point
(punctuation, symbols, white space, controls, …) is emitted as a token of its
own, in input order. Adjacent boundary characters therefore produce separate
one-character tokens.

   "Hello, world!"   word-only:    "Hello" "world"
                     punctuation:  "Hello" "," " " "world" "!"

Tokenization is independent of language. There is neither stemming nor
lemmatization, nor any dictionary lookup.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tokenize

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textstat/category"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNotInitialized is returned if a tokenizer's Next-function is called
// without first setting an input source.
var ErrNotInitialized = errors.New("tokenizer not initialized; must call Init(...) first")

// Token is a word or a single boundary character.
type Token struct {
	Text string // literal text of the token
	Len  int    // length in code-points
}

// IsWordChar returns true for code-points which are part of words.
func IsWordChar(r rune) bool {
	c := category.Of(r)
	switch c.Group() {
	case category.LetterGroup, category.MarkGroup:
		return true
	}
	return c == category.Nd
}

// A Tokenizer receives a sequence of code-points from an io.RuneReader and
// splits it into tokens.
type Tokenizer struct {
	reader      io.RuneReader // where we get the next runes from
	punctuation bool          // emit boundary characters as tokens?
	buffer      *bytes.Buffer // collects the runes of the active token
	active      []byte        // the most recent token
	length      int           // length of active token in code-points
	pending     rune          // boundary character read ahead
	hasPending  bool
	err         error
	atEOF       bool
}

// New creates a tokenizer. If includePunctuation is set, every code-point
// which is not part of a word will be emitted as a single-character token.
//
// Before using newly created tokenizers, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func New(includePunctuation bool) *Tokenizer {
	return &Tokenizer{
		punctuation: includePunctuation,
		buffer:      bytes.NewBuffer(make([]byte, 0, 64)),
	}
}

// Init initializes a Tokenizer with an io.RuneReader to read from.
// t is either a newly created tokenizer to be initialized, or we may
// re-initialize a tokenizer already in use.
func (t *Tokenizer) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	t.reader = reader
	t.buffer.Reset()
	t.active = nil
	t.length = 0
	t.hasPending = false
	t.err = nil
	t.atEOF = false
}

// Err returns the first non-EOF error that was encountered by the Tokenizer.
func (t *Tokenizer) Err() error {
	return t.err
}

// Next advances the Tokenizer to the next token, which will then be
// available through the Token(), Bytes() or Text() method. It returns false
// when tokenizing stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error that
// occurred during reading, except for io.EOF.
func (t *Tokenizer) Next() bool {
	if t.reader == nil {
		t.setErr(ErrNotInitialized)
		return false
	}
	t.buffer.Reset()
	t.length = 0
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if IsWordChar(r) {
			t.buffer.WriteRune(r)
			t.length++
			continue
		}
		if t.length > 0 { // r terminates a word
			if t.punctuation {
				t.pending, t.hasPending = r, true
			}
			break
		}
		if t.punctuation {
			t.buffer.WriteRune(r)
			t.length = 1
			break
		}
	}
	if t.length == 0 {
		t.active = nil
		return false
	}
	t.active = t.buffer.Bytes()
	return true
}

func (t *Tokenizer) readRune() (rune, bool) {
	if t.hasPending {
		t.hasPending = false
		return t.pending, true
	}
	if t.atEOF {
		return 0, false
	}
	r, _, err := t.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			t.setErr(err)
		}
		t.atEOF = true
		return 0, false
	}
	return r, true
}

func (t *Tokenizer) setErr(err error) {
	if t.err == nil {
		t.err = err
	}
}

// Bytes returns the most recent token generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (t *Tokenizer) Bytes() []byte {
	return t.active
}

// Text returns the most recent token generated by a call to Next()
// as a newly allocated string holding its bytes.
func (t *Tokenizer) Text() string {
	return string(t.active)
}

// Token returns the most recent token generated by a call to Next().
func (t *Tokenizer) Token() Token {
	return Token{Text: string(t.active), Len: t.length}
}

// Tokenize splits a text into tokens. Invalid UTF-8 is decoded as U+FFFD.
func Tokenize(text string, includePunctuation bool) []Token {
	tok := New(includePunctuation)
	tok.Init(strings.NewReader(text))
	var tokens []Token
	for tok.Next() {
		tokens = append(tokens, tok.Token())
	}
	CT().P("punctuation", includePunctuation).Debugf("tokenize: %d tokens", len(tokens))
	return tokens
}

// Words splits a text into tokens and returns their texts.
func Words(text string, includePunctuation bool) []string {
	tokens := Tokenize(text, includePunctuation)
	words := make([]string, len(tokens))
	for i, token := range tokens {
		words[i] = token.Text
	}
	return words
}
