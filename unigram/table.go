package unigram

import (
	"sort"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/textstat/internal/shannon"
)

// Table maps tokens to their number of occurrences.
type Table map[string]int

// Entry is a token together with its count.
type Entry struct {
	Token string
	Count int
}

// Total returns the number of token occurrences.
func (t Table) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Distinct returns the number of distinct tokens.
func (t Table) Distinct() int {
	return len(t)
}

// Tokens returns the tokens of the table, sorted.
func (t Table) Tokens() []string {
	tokens := make([]string, 0, len(t))
	for token := range t {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Entropy returns the Shannon entropy of the token distribution, in bits.
// Counts are summed up in token order, making results reproducible.
func (t Table) Entropy() float64 {
	var h shannon.Accumulator
	h.Reset(t.Total())
	for _, token := range t.Tokens() {
		h.Add(t[token])
	}
	return h.Entropy()
}

func (t Table) hapaxCount() int {
	n := 0
	for _, c := range t {
		if c == 1 {
			n++
		}
	}
	return n
}

// byFrequency orders entries by descending count, then by token.
func byFrequency(a, b interface{}) int {
	e1, e2 := a.(Entry), b.(Entry)
	switch {
	case e1.Count > e2.Count:
		return -1
	case e1.Count < e2.Count:
		return 1
	}
	return utils.StringComparator(e1.Token, e2.Token)
}

// Top returns the n most frequent tokens, most frequent first. Tokens with
// equal counts are ordered alphabetically (by byte value).
func (t Table) Top(n int) []Entry {
	if n <= 0 || len(t) == 0 {
		return nil
	}
	heap := binaryheap.NewWith(byFrequency)
	for token, c := range t {
		heap.Push(Entry{Token: token, Count: c})
	}
	if n > heap.Size() {
		n = heap.Size()
	}
	top := make([]Entry, 0, n)
	for len(top) < n {
		e, _ := heap.Pop()
		top = append(top, e.(Entry))
	}
	return top
}
