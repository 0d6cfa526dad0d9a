// Package query turns free-text vehicle requests into a structured
// SearchIntent using the keyword taxonomy and the price normalizer. The
// interpreter is best-effort and non-exclusive: a query can set brand, year
// and price bounds at once, or nothing at all. Absence of a signal means "no
// constraint", never a rejection.
package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dealerdesk/showroom/pricing"
	"github.com/dealerdesk/showroom/taxonomy"
)

// Intent type labels, from most generic to most specific extraction stage.
const (
	TypeGeneral        = "general"
	TypeYearSearch     = "year_search"
	TypeBrandSearch    = "brand_search"
	TypeBudgetSearch   = "budget_search"
	TypeCategorySearch = "category_search"
)

// Parameters holds the structured filter values extracted from a query.
// Pointer fields distinguish "not requested" from a zero value.
type Parameters struct {
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`
	Year        int      `json:"year,omitempty"`
	MinBudget   *float64 `json:"min_budget,omitempty"`
	MaxBudget   *float64 `json:"max_budget,omitempty"`
	VehicleType string   `json:"vehicle_type,omitempty"`
}

// SearchIntent is the structured interpretation of one free-text vehicle
// query. Built fresh per query and never mutated after construction.
type SearchIntent struct {
	Type       string     `json:"type"`
	Parameters Parameters `json:"parameters"`
	Features   []string   `json:"features"`
}

// HasPriceBound reports whether the query carried an explicit price
// constraint. Used to decide whether the luxury price-floor policy applies.
func (si SearchIntent) HasPriceBound() bool {
	return si.Parameters.MinBudget != nil || si.Parameters.MaxBudget != nil
}

// HasFeature reports whether the given feature tag was requested.
func (si SearchIntent) HasFeature(name string) bool {
	for _, f := range si.Features {
		if f == name {
			return true
		}
	}
	return false
}

var (
	yearRe = regexp.MustCompile(`\b(20\d{2})\b`)

	underRe = regexp.MustCompile(
		`(?:under|below|less than|max|maximum|up to|upto)\s+(?:aed\s+)?(\d+\.?\d*)\s*(k|lakh|lakhs|lac|lacs|thousand|million|m|crore)?`)
	overRe = regexp.MustCompile(
		`(?:above|over|more than|min|minimum)\s+(?:aed\s+)?(\d+\.?\d*)\s*(k|lakh|lakhs|lac|lacs)?`)
	betweenRe = regexp.MustCompile(
		`between\s+(?:aed\s+)?(\d+\.?\d*)\s*(k|lakh|lakhs|lac|lacs)?\s+(?:and|to)\s+(?:aed\s+)?(\d+\.?\d*)\s*(k|lakh|lakhs|lac|lacs)?`)
)

// Interpreter extracts SearchIntents against a fixed taxonomy.
type Interpreter struct {
	tax *taxonomy.Taxonomy
}

// NewInterpreter builds an Interpreter. A nil taxonomy selects the default.
func NewInterpreter(tax *taxonomy.Taxonomy) *Interpreter {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Interpreter{tax: tax}
}

// Interpret runs every extraction stage over the query. Stages are
// independent; each one that finds a signal narrows the intent, and the
// intent type records the most specific stage that fired.
func (it *Interpreter) Interpret(text string) SearchIntent {
	lower := strings.ToLower(text)
	intent := SearchIntent{Type: TypeGeneral, Features: []string{}}

	it.extractFeatures(lower, &intent)
	it.extractYear(text, &intent)
	it.extractBrand(lower, &intent)
	it.extractModel(lower, &intent)
	it.extractPrice(lower, &intent)
	it.extractVehicleType(lower, &intent)

	return intent
}

// extractFeatures collects every feature tag whose keywords appear in the
// query. Tags are checked in sorted order so results are reproducible.
func (it *Interpreter) extractFeatures(lower string, intent *SearchIntent) {
	names := it.tax.FeatureNames()
	sort.Strings(names)
	for _, name := range names {
		for _, kw := range it.tax.Features[name] {
			if strings.Contains(lower, kw) {
				intent.Features = append(intent.Features, name)
				break
			}
		}
	}
}

func (it *Interpreter) extractYear(text string, intent *SearchIntent) {
	m := yearRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	year := atoi(m[1])
	if year >= 2000 && year <= 2030 {
		intent.Parameters.Year = year
		intent.Type = TypeYearSearch
	}
}

// extractBrand resolves the longest matching alias; ties fall to the
// alphabetically first brand so extraction is deterministic.
func (it *Interpreter) extractBrand(lower string, intent *SearchIntent) {
	brands := make([]string, 0, len(it.tax.Brands))
	for brand := range it.tax.Brands {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	var bestBrand, bestAlias string
	for _, brand := range brands {
		for _, alias := range it.tax.Brands[brand] {
			if strings.Contains(lower, alias) && len(alias) > len(bestAlias) {
				bestBrand, bestAlias = brand, alias
			}
		}
	}
	if bestBrand == "" {
		return
	}
	intent.Parameters.Brand = bestBrand
	if intent.Type == TypeGeneral {
		intent.Type = TypeBrandSearch
	}
}

func (it *Interpreter) extractModel(lower string, intent *SearchIntent) {
	for _, model := range it.tax.Models {
		if strings.Contains(lower, model) {
			intent.Parameters.Model = titleCase(model)
			return
		}
	}
}

// extractPrice tries the under, over and between patterns in that order.
// A between range always normalizes to min <= max regardless of the order
// the two bounds were written in.
func (it *Interpreter) extractPrice(lower string, intent *SearchIntent) {
	if m := underRe.FindStringSubmatch(lower); m != nil {
		if amount, ok := pricing.Normalize(m[1] + m[2]); ok {
			intent.Parameters.MaxBudget = &amount
			intent.Type = TypeBudgetSearch
		}
	}

	if m := overRe.FindStringSubmatch(lower); m != nil {
		if amount, ok := pricing.Normalize(m[1] + m[2]); ok {
			intent.Parameters.MinBudget = &amount
			intent.Type = TypeBudgetSearch
		}
	}

	if m := betweenRe.FindStringSubmatch(lower); m != nil {
		p1, ok1 := pricing.Normalize(m[1] + m[2])
		p2, ok2 := pricing.Normalize(m[3] + m[4])
		if ok1 && ok2 {
			lo, hi := p1, p2
			if lo > hi {
				lo, hi = hi, lo
			}
			intent.Parameters.MinBudget = &lo
			intent.Parameters.MaxBudget = &hi
			intent.Type = TypeBudgetSearch
		}
	}
}

// extractVehicleType assigns at most one body-style bucket; buckets are
// tried in taxonomy order so SUV wins over sedan which wins over truck.
func (it *Interpreter) extractVehicleType(lower string, intent *SearchIntent) {
	for _, vt := range it.tax.VehicleTypes {
		for _, kw := range vt.Keywords {
			if strings.Contains(lower, kw) {
				intent.Parameters.VehicleType = vt.Name
				if vt.Name == "suv" && intent.Type == TypeGeneral {
					intent.Type = TypeCategorySearch
				}
				return
			}
		}
	}
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// titleCase uppercases the first letter of each space separated word,
// matching how brand and model names are stored on inventory records.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
