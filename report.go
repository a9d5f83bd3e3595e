package textstat

import (
	"github.com/npillmayer/textstat/metrics"
	"github.com/npillmayer/textstat/trigram"
	"github.com/npillmayer/textstat/unigram"
)

// Report bundles the results of all the analyzers for a text.
type Report struct {
	Chars    metrics.Snapshot
	Unigrams unigram.Metrics
	Trigrams trigram.Ratios
}

// Analyze runs every analyzer once on a text. Analyzers are independent of
// each other. The only error conditions stem from an invalid configuration.
func Analyze(text string, cfg Config) (Report, error) {
	tri, err := cfg.trigramAnalyzer()
	if err != nil {
		return Report{}, err
	}
	f, err := cfg.normalizer()
	if err != nil {
		return Report{}, err
	}
	if f != nil {
		text = f.String(text)
	}
	r := Report{
		Chars:    metrics.Aggregate(text),
		Unigrams: unigram.Analyze(text, cfg.Unigram),
		Trigrams: tri.Ratios(text),
	}
	CT().P("chars", r.Chars.TotalChars).Debugf("textstat: %d tokens, %d trigrams",
		r.Unigrams.TokenCount, len(r.Trigrams))
	return r, nil
}

// AsMap returns the character and unigram metrics of a report keyed by their
// snake-case names. Trigram ratios are not included.
func (r Report) AsMap() map[string]float64 {
	m := r.Chars.AsMap()
	for k, v := range r.Unigrams.AsMap() {
		m[k] = v
	}
	return m
}
