package inventory

import "strings"

// Filter is the conjunctive predicate the search orchestrator builds from a
// SearchIntent. Every set field ANDs into the predicate; the feature tags
// inside FeatureTags OR together (a record matching any requested tag
// satisfies the feature clause). Pointer fields distinguish "unset" from a
// zero bound.
type Filter struct {
	Brand       string
	Model       string
	Year        int
	MinPrice    *float64
	MaxPrice    *float64
	LuxuryFloor *float64 // price must be strictly greater than this
	VehicleType string
	FeatureTags []string
	SUVBrands   []string // makes assumed to be SUVs when no body-style signal exists
}

// featureProbes maps a requested feature tag to the substrings that count as
// a match on a record's feature strings. This is the record-side vocabulary;
// the query-side vocabulary lives in the taxonomy package.
var featureProbes = map[string][]string{
	"family":     {"7 seat", "spacious", "large"},
	"turbo":      {"turbo", "performance"},
	"hybrid":     {"hybrid", "eco"},
	"electric":   {"electric", "ev"},
	"safety":     {"safety", "airbag"},
	"comfort":    {"comfort", "leather", "spacious"},
	"technology": {"carplay", "touchscreen", "tech"},
	"4wd":        {"4wd", "awd", "4x4"},
	"sunroof":    {"sunroof", "panoramic"},
	"leather":    {"leather"},
	"navigation": {"navigation", "gps"},
	"parking":    {"camera", "parking"},
}

// sedanModels are model names treated as sedans even when the record does
// not carry an explicit body-style string.
var sedanModels = map[string]bool{
	"camry": true, "accord": true, "altima": true, "civic": true, "corolla": true,
}

// Matches reports whether a vehicle satisfies every clause of the filter.
func (f Filter) Matches(v Vehicle) bool {
	if f.Brand != "" && !strings.EqualFold(v.Make, f.Brand) {
		return false
	}
	if f.Model != "" && !strings.Contains(strings.ToLower(v.Model), strings.ToLower(f.Model)) {
		return false
	}
	if f.Year != 0 && v.Year != f.Year {
		return false
	}
	if f.MinPrice != nil && v.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && v.Price > *f.MaxPrice {
		return false
	}
	if f.LuxuryFloor != nil && v.Price <= *f.LuxuryFloor {
		return false
	}
	if f.VehicleType != "" && !f.matchesVehicleType(v) {
		return false
	}
	if len(f.FeatureTags) > 0 && !f.matchesAnyFeature(v) {
		return false
	}
	return true
}

func (f Filter) matchesVehicleType(v Vehicle) bool {
	model := strings.ToLower(v.Model)
	switch f.VehicleType {
	case "suv":
		if strings.Contains(model, "suv") {
			return true
		}
		make := strings.ToLower(v.Make)
		for _, b := range f.SUVBrands {
			if make == strings.ToLower(b) {
				return true
			}
		}
		return featureContainsAny(v.Features, "suv", "4wd", "awd")
	case "sedan":
		return strings.Contains(model, "sedan") || strings.Contains(model, "saloon") || sedanModels[model]
	case "truck":
		return strings.Contains(model, "truck") || strings.Contains(model, "pickup") || strings.Contains(model, "f-150")
	default:
		return true
	}
}

// matchesAnyFeature implements the OR across requested feature tags. Tags
// without a record-side probe (e.g. luxury, which is a price clause) are
// skipped entirely rather than treated as failing.
func (f Filter) matchesAnyFeature(v Vehicle) bool {
	sawProbe := false
	for _, tag := range f.FeatureTags {
		probes, ok := featureProbes[tag]
		if !ok {
			continue
		}
		sawProbe = true
		if featureContainsAny(v.Features, probes...) {
			return true
		}
	}
	return !sawProbe
}

func featureContainsAny(features []string, probes ...string) bool {
	for _, feat := range features {
		lower := strings.ToLower(feat)
		for _, p := range probes {
			if strings.Contains(lower, p) {
				return true
			}
		}
	}
	return false
}
