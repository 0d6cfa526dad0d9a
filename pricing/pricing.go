// Package pricing parses free-form price tokens ("20k", "2 lakh", "AED 300k",
// "1.5 crore") into canonical currency amounts. Parsing is deliberately
// forgiving: anything unparseable degrades to "no price constraint" instead
// of surfacing an error to the query pipeline.
package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyRe = regexp.MustCompile(`(?i)(AED|USD|RS|INR|DIRHAM|RUPEES|RUPEE|\$|₹|£|€)`)
	digitsRe   = regexp.MustCompile(`[^\d.]`)
)

// spelledDigits substitutes spelled-out numbers one through ten before any
// suffix matching, so "two lakh" parses the same as "2 lakh".
var spelledDigits = []struct {
	word string
	num  string
}{
	{"ONE", "1"}, {"TWO", "2"}, {"THREE", "3"}, {"FOUR", "4"}, {"FIVE", "5"},
	{"SIX", "6"}, {"SEVEN", "7"}, {"EIGHT", "8"}, {"NINE", "9"}, {"TEN", "10"},
}

// magnitudes are matched in order; longer suffix spellings come before their
// abbreviations so "CR" never clips "CRORE" and "M" never clips "MILLION".
// "K" is checked after "LAKH"/"LAC" so the trailing K of those words (already
// consumed) cannot misfire.
var magnitudes = []struct {
	suffixes   []string
	multiplier float64
}{
	{[]string{"CRORES", "CRORE", "CR"}, 10_000_000},
	{[]string{"LAKHS", "LAKH", "LACS", "LAC"}, 100_000},
	{[]string{"THOUSAND", "K"}, 1_000},
	{[]string{"MILLION", "M"}, 1_000_000},
}

// Normalize parses a price token into a canonical amount. The boolean result
// reports whether parsing succeeded; callers must treat false as "no price
// constraint", never as a failure of the surrounding query.
//
//	Normalize("2.5 lakh")  == 250000, true
//	Normalize("AED 300k")  == 300000, true
//	Normalize("garbage")   == 0, false
func Normalize(s string) (float64, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, false
	}

	cleaned := strings.ToUpper(strings.TrimSpace(s))
	cleaned = currencyRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	for _, d := range spelledDigits {
		cleaned = replaceWord(cleaned, d.word, d.num)
	}

	for _, m := range magnitudes {
		matched := false
		stripped := cleaned
		for _, suffix := range m.suffixes {
			if strings.Contains(stripped, suffix) {
				stripped = strings.ReplaceAll(stripped, suffix, "")
				matched = true
			}
		}
		if !matched {
			continue
		}
		if num, ok := parseNumber(stripped); ok {
			return num * m.multiplier, true
		}
	}

	// Plain number, possibly with thousands separators.
	plain := strings.ReplaceAll(strings.ReplaceAll(cleaned, ",", ""), " ", "")
	if num, err := strconv.ParseFloat(plain, 64); err == nil {
		return num, true
	}
	return 0, false
}

// parseNumber extracts the numeric portion of a suffix-stripped token.
func parseNumber(s string) (float64, bool) {
	s = digitsRe.ReplaceAllString(s, "")
	if s == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// replaceWord substitutes whole-word occurrences only, so "ONE" inside
// "MONEY" is left alone.
func replaceWord(s, word, repl string) string {
	re := regexp.MustCompile(`\b` + word + `\b`)
	return re.ReplaceAllString(s, repl)
}
