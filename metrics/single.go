package metrics

import (
	"unicode/utf8"

	"github.com/npillmayer/textstat/charclass"
)

// count counts the code-points of text satisfying pred.
func count(text string, pred func(charclass.Class) bool) int {
	n := 0
	for _, r := range text {
		if pred(charclass.Classify(r)) {
			n++
		}
	}
	return n
}

func inBucket(b charclass.Bucket) func(charclass.Class) bool {
	return func(c charclass.Class) bool { return c.Bucket == b }
}

// CountChars returns the number of code-points of text.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// CountLetters returns the number of code-points in bucket letter.
func CountLetters(text string) int {
	return count(text, inBucket(charclass.Letter))
}

// CountDigits returns the number of decimal digits.
func CountDigits(text string) int {
	return count(text, inBucket(charclass.Digit))
}

// CountPunctuation returns the number of code-points in bucket punctuation.
func CountPunctuation(text string) int {
	return count(text, inBucket(charclass.Punctuation))
}

// CountSymbols returns the number of code-points in bucket symbol.
func CountSymbols(text string) int {
	return count(text, inBucket(charclass.Symbol))
}

// CountWhitespace returns the number of white space code-points.
func CountWhitespace(text string) int {
	return count(text, inBucket(charclass.Whitespace))
}

// CountNonASCII returns the number of code-points beyond U+007F.
func CountNonASCII(text string) int {
	n := 0
	for _, r := range text {
		if charclass.NonASCII(r) {
			n++
		}
	}
	return n
}

// CountUppercase returns the number of code-points of category Lu.
func CountUppercase(text string) int {
	return count(text, charclass.Class.Uppercase)
}

// CountLowercase returns the number of code-points of category Ll.
func CountLowercase(text string) int {
	return count(text, charclass.Class.Lowercase)
}

// CountAlphanumeric returns the number of letters and digits.
func CountAlphanumeric(text string) int {
	return count(text, charclass.Class.Alphanumeric)
}

// RatioLetters is CountLetters / CountChars.
func RatioLetters(text string) float64 {
	return ratio(CountLetters(text), CountChars(text))
}

// RatioDigits is CountDigits / CountChars.
func RatioDigits(text string) float64 {
	return ratio(CountDigits(text), CountChars(text))
}

// RatioPunctuation is CountPunctuation / CountChars.
func RatioPunctuation(text string) float64 {
	return ratio(CountPunctuation(text), CountChars(text))
}

// RatioSymbols is CountSymbols / CountChars.
func RatioSymbols(text string) float64 {
	return ratio(CountSymbols(text), CountChars(text))
}

// RatioWhitespace is CountWhitespace / CountChars.
func RatioWhitespace(text string) float64 {
	return ratio(CountWhitespace(text), CountChars(text))
}

// RatioNonASCII is CountNonASCII / CountChars.
func RatioNonASCII(text string) float64 {
	return ratio(CountNonASCII(text), CountChars(text))
}

// RatioAlphanumeric is CountAlphanumeric / CountChars.
func RatioAlphanumeric(text string) float64 {
	return ratio(CountAlphanumeric(text), CountChars(text))
}

// RatioUppercase is CountUppercase / CountLetters.
func RatioUppercase(text string) float64 {
	return ratio(CountUppercase(text), CountLetters(text))
}

// RatioLowercase is CountLowercase / CountLetters.
func RatioLowercase(text string) float64 {
	return ratio(CountLowercase(text), CountLetters(text))
}

// RatioAlphaToNumeric is CountLetters / CountDigits. For texts without
// digits it is CountLetters * AlphaNumericSentinel.
func RatioAlphaToNumeric(text string) float64 {
	return alphaToNumeric(CountLetters(text), CountDigits(text))
}

// CharEntropy is the Shannon entropy of the code-point frequencies of text,
// in bits.
func CharEntropy(text string) float64 {
	return Aggregate(text).CharEntropy
}
