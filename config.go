package textstat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/textstat/trigram"
	"github.com/npillmayer/textstat/unigram"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Config collects the options of all the analyzers.
type Config struct {
	Unigram       unigram.Options `yaml:"unigram"`
	Trigram       TrigramConfig   `yaml:"trigram"`
	Normalization string          `yaml:"normalization"` // "none", "nfc", "nfd", "nfkc", "nfkd"
}

// TrigramConfig holds the options of the trigram analyzer.
type TrigramConfig struct {
	Granularity string `yaml:"granularity"` // "category" or "group"
}

// ErrInvalidConfig is returned for configurations which cannot be parsed or
// contain unknown keys or values.
var ErrInvalidConfig = errors.New("invalid textstat configuration")

// DefaultConfig returns the configuration used for options not set
// explicitly: word tokens only, counted case sensitively, general category
// trigrams and no normalization.
func DefaultConfig() Config {
	return Config{
		Unigram: unigram.Options{CaseSensitive: true},
		Trigram: TrigramConfig{Granularity: trigram.ByCategory.String()},
	}
}

// ParseConfig reads a YAML configuration. Options missing from data keep
// their default values; unknown keys are an error. Empty data results in the
// default configuration.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	CT().P("granularity", cfg.Trigram.Granularity).Debugf("textstat: configuration parsed")
	return cfg, nil
}

// Validate checks the option values of a configuration.
func (cfg Config) Validate() error {
	if _, err := cfg.trigramAnalyzer(); err != nil {
		return err
	}
	if _, err := cfg.normalizer(); err != nil {
		return err
	}
	return nil
}

// trigramAnalyzer creates the trigram analyzer for the configured granularity.
func (cfg Config) trigramAnalyzer() (*trigram.Analyzer, error) {
	g, err := trigram.ParseGranularity(cfg.Trigram.Granularity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return trigram.New(g)
}

// normalizer returns the normalization form to apply, or nil for none.
func (cfg Config) normalizer() (*norm.Form, error) {
	var f norm.Form
	switch strings.ToLower(cfg.Normalization) {
	case "", "none":
		return nil, nil
	case "nfc":
		f = norm.NFC
	case "nfkc":
		f = norm.NFKC
	case "nfd":
		f = norm.NFD
	case "nfkd":
		f = norm.NFKD
	default:
		return nil, fmt.Errorf("%w: unknown normalization %q", ErrInvalidConfig, cfg.Normalization)
	}
	return &f, nil
}
