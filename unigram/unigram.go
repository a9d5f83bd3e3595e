/*
Package unigram computes token frequency statistics of a text.

Content

A text is split into tokens by package tokenize, optionally including
single-character punctuation tokens. Unless counting is case sensitive, tokens
are lowercased before counting. Lowercasing follows the Unicode default case
mapping, independent of any language or locale. From the resulting frequency
table, Analyze derives lexical diversity measures: type/token ratio,
repetition rate, Shannon entropy, share of hapax legomena (tokens occurring
exactly once) and coverage of the five most frequent tokens. Token length
ratios are computed on the tokens as they appear in the text.

All measures are 0 for texts without tokens.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package unigram

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textstat/tokenize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Options control tokenization and normalization of tokens.
type Options struct {
	IncludePunctuation bool `yaml:"include_punctuation"` // count boundary characters as tokens
	CaseSensitive      bool `yaml:"case_sensitive"`      // do not lowercase tokens
}

// Token length limits for ShortTokenRatio and LongTokenRatio, in code-points.
const (
	ShortTokenMaxLen = 3
	LongTokenMinLen  = 7
)

// TopN is the number of most frequent tokens for Top5TokenCoverage.
const TopN = 5

// Metrics holds the unigram statistics of a text.
type Metrics struct {
	TokenCount         int     // number of token occurrences
	UniqueTokenCount   int     // number of distinct tokens after normalization
	TypeTokenRatio     float64 // UniqueTokenCount / TokenCount
	RepetitionRate     float64 // 1 - TypeTokenRatio
	Entropy            float64 // Shannon entropy of token frequencies, in bits
	HapaxLegomenaRatio float64 // tokens occurring exactly once / TokenCount
	Top5TokenCoverage  float64 // occurrences of the 5 most frequent tokens / TokenCount
	ShortTokenRatio    float64 // tokens of length <= 3 / TokenCount
	LongTokenRatio     float64 // tokens of length >= 7 / TokenCount
	MaxFrequencyRatio  float64 // occurrences of the most frequent token / TokenCount
	AverageTokenLength float64 // mean length of tokens in code-points
}

// Frequencies tokenizes a text and counts the (normalized) tokens.
func Frequencies(text string, opts Options) Table {
	return count(tokenize.Tokenize(text, opts.IncludePunctuation), opts)
}

func count(tokens []tokenize.Token, opts Options) Table {
	table := make(Table, len(tokens))
	if opts.CaseSensitive {
		for _, token := range tokens {
			table[token.Text]++
		}
		return table
	}
	// a Caser is stateful, thus not shared between calls
	lower := cases.Lower(language.Und)
	for _, token := range tokens {
		table[lower.String(token.Text)]++
	}
	return table
}

// Analyze computes all the unigram statistics of a text in one go.
func Analyze(text string, opts Options) Metrics {
	tokens := tokenize.Tokenize(text, opts.IncludePunctuation)
	table := count(tokens, opts)
	m := Metrics{
		TokenCount:       len(tokens),
		UniqueTokenCount: table.Distinct(),
	}
	if m.TokenCount == 0 {
		return m
	}
	n := float64(m.TokenCount)
	m.TypeTokenRatio = float64(m.UniqueTokenCount) / n
	m.RepetitionRate = float64(m.TokenCount-m.UniqueTokenCount) / n
	m.Entropy = table.Entropy()
	m.HapaxLegomenaRatio = float64(table.hapaxCount()) / n
	m.Top5TokenCoverage = float64(sumCounts(table.Top(TopN))) / n
	if top := table.Top(1); len(top) > 0 {
		m.MaxFrequencyRatio = float64(top[0].Count) / n
	}
	short, long, length := 0, 0, 0
	for _, token := range tokens {
		if token.Len <= ShortTokenMaxLen {
			short++
		}
		if token.Len >= LongTokenMinLen {
			long++
		}
		length += token.Len
	}
	m.ShortTokenRatio = float64(short) / n
	m.LongTokenRatio = float64(long) / n
	m.AverageTokenLength = float64(length) / n
	tracer().P("tokens", m.TokenCount).Debugf("unigram: %d distinct tokens", m.UniqueTokenCount)
	return m
}

func sumCounts(entries []Entry) int {
	sum := 0
	for _, e := range entries {
		sum += e.Count
	}
	return sum
}

// AsMap returns the metrics keyed by their snake-case names, e.g.
// "type_token_ratio". Counts are converted to float64.
func (m Metrics) AsMap() map[string]float64 {
	return map[string]float64{
		"token_count":          float64(m.TokenCount),
		"unique_token_count":   float64(m.UniqueTokenCount),
		"type_token_ratio":     m.TypeTokenRatio,
		"repetition_rate":      m.RepetitionRate,
		"token_entropy":        m.Entropy,
		"hapax_legomena_ratio": m.HapaxLegomenaRatio,
		"top_5_token_coverage": m.Top5TokenCoverage,
		"short_token_ratio":    m.ShortTokenRatio,
		"long_token_ratio":     m.LongTokenRatio,
		"max_frequency_ratio":  m.MaxFrequencyRatio,
		"average_token_length": m.AverageTokenLength,
	}
}

// --- Single values ---------------------------------------------------------

// CountTokens returns the number of token occurrences in a text.
func CountTokens(text string, includePunctuation bool) int {
	return len(tokenize.Tokenize(text, includePunctuation))
}

// CountUnique returns the number of distinct normalized tokens in a text.
func CountUnique(text string, opts Options) int {
	return Frequencies(text, opts).Distinct()
}

// TypeTokenRatio is CountUnique / CountTokens.
func TypeTokenRatio(text string, opts Options) float64 {
	return Analyze(text, opts).TypeTokenRatio
}

// RepetitionRate is 1 - TypeTokenRatio, or 0 for texts without tokens.
func RepetitionRate(text string, opts Options) float64 {
	return Analyze(text, opts).RepetitionRate
}

// Entropy is the Shannon entropy of the token frequencies of a text, in bits.
func Entropy(text string, opts Options) float64 {
	return Frequencies(text, opts).Entropy()
}

// HapaxLegomenaRatio is the share of token occurrences which occur exactly once.
func HapaxLegomenaRatio(text string, opts Options) float64 {
	return Analyze(text, opts).HapaxLegomenaRatio
}

// Top5TokenCoverage is the share of token occurrences covered by the five
// most frequent tokens.
func Top5TokenCoverage(text string, opts Options) float64 {
	return Analyze(text, opts).Top5TokenCoverage
}

// ShortTokenRatio is the share of tokens of at most 3 code-points.
func ShortTokenRatio(text string, opts Options) float64 {
	return Analyze(text, opts).ShortTokenRatio
}

// LongTokenRatio is the share of tokens of at least 7 code-points.
func LongTokenRatio(text string, opts Options) float64 {
	return Analyze(text, opts).LongTokenRatio
}
