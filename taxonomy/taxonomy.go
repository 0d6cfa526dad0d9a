// Package taxonomy holds the declarative keyword tables the assistant is
// driven by: coarse conversational intents, vehicle feature tags, brand
// aliases, the model vocabulary and body-style buckets. The tables are plain
// data so they can be overridden from configuration and exercised by
// table-driven tests; no matching logic lives here.
package taxonomy

// IntentSpec binds a conversational intent to its trigger keywords and a
// priority weight. Lower priority numbers mark more specific intents; the
// reasoning engine divides raw keyword hit counts by the priority, so a
// priority-1 intent outranks a priority-2 intent with the same hit count.
type IntentSpec struct {
	Name     string   `koanf:"name" yaml:"name"`
	Keywords []string `koanf:"keywords" yaml:"keywords"`
	Priority int      `koanf:"priority" yaml:"priority"`
}

// Intent names recognized by the reasoning engine. The set is closed; adding
// an intent requires a matching action mapping in the agent package.
const (
	IntentTestDriveBooking    = "test_drive_booking"
	IntentCheckAvailability   = "check_availability"
	IntentRescheduleBooking   = "reschedule_booking"
	IntentCancelBooking       = "cancel_booking"
	IntentVehicleSearch       = "vehicle_search"
	IntentAppointment         = "appointment"
	IntentBudgetQuery         = "budget_query"
	IntentFeaturesQuery       = "features_query"
	IntentComparison          = "comparison"
	IntentGeneralInfo         = "general_info"
	IntentSentimentExpression = "sentiment_expression"
	IntentGeneralQuery        = "general_query"
)

// Taxonomy aggregates every keyword table plus the tunable business-policy
// knobs that the original system hard-coded (luxury price floor, SUV brand
// heuristic). Callers should treat a Taxonomy as immutable after Load.
type Taxonomy struct {
	Intents      []IntentSpec        `koanf:"intents" yaml:"intents"`
	Features     map[string][]string `koanf:"features" yaml:"features"`
	Brands       map[string][]string `koanf:"brands" yaml:"brands"`
	Models       []string            `koanf:"models" yaml:"models"`
	VehicleTypes []VehicleTypeSpec   `koanf:"vehicle_types" yaml:"vehicle_types"`

	// SUVBrands lists makes assumed to carry SUVs when a query asks for an
	// SUV without naming a body style keyword on the record side. Policy,
	// not physics; kept configurable.
	SUVBrands []string `koanf:"suv_brands" yaml:"suv_brands"`

	// LuxuryPriceFloor is the implicit minimum price applied when the
	// "luxury" feature tag is requested without an explicit price bound.
	LuxuryPriceFloor float64 `koanf:"luxury_price_floor" yaml:"luxury_price_floor"`
}

// VehicleTypeSpec maps a body-style bucket to its trigger keywords. Buckets
// are tried in slice order and the first hit wins, so ordering encodes the
// SUV → sedan → truck precedence.
type VehicleTypeSpec struct {
	Name     string   `koanf:"name" yaml:"name"`
	Keywords []string `koanf:"keywords" yaml:"keywords"`
}

// Default returns the built-in taxonomy used when no override is configured.
func Default() *Taxonomy {
	return &Taxonomy{
		Intents: []IntentSpec{
			{
				Name: IntentTestDriveBooking,
				Keywords: []string{
					"book test drive", "schedule test drive", "test drive",
					"book a drive", "want to test", "try the car", "test the vehicle",
					"book drive", "reserve test drive",
				},
				Priority: 1,
			},
			{
				Name: IntentCheckAvailability,
				Keywords: []string{
					"available slots", "availability", "free slots", "when available",
					"available times", "check slots", "show availability", "open slots",
				},
				Priority: 1,
			},
			{
				Name: IntentRescheduleBooking,
				Keywords: []string{
					"reschedule", "change date", "change time", "move booking",
					"different date", "different time", "postpone", "change appointment",
				},
				Priority: 1,
			},
			{
				Name: IntentCancelBooking,
				Keywords: []string{
					"cancel", "cancel booking", "cancel test drive", "dont want",
					"cancel appointment", "remove booking", "delete booking",
				},
				Priority: 1,
			},
			{
				Name: IntentVehicleSearch,
				// The generic nouns "car" and "vehicle" are deliberately
				// absent: they appear in nearly every utterance and would
				// drown out the low-priority intents (sentiment, info).
				Keywords: []string{
					"search", "find", "show", "looking", "want", "need",
					"suv", "sedan", "luxury", "electric",
				},
				Priority: 2,
			},
			{
				Name:     IntentAppointment,
				Keywords: []string{"appointment", "book", "schedule", "visit", "meeting", "slot"},
				Priority: 2,
			},
			{
				Name: IntentBudgetQuery,
				Keywords: []string{
					"budget", "price", "cost", "afford", "expensive", "cheap",
					"aed", "under", "within", "maximum",
				},
				Priority: 2,
			},
			{
				Name: IntentFeaturesQuery,
				Keywords: []string{
					"feature", "specification", "detail", "option", "include",
					"equipped", "comes with", "has",
				},
				Priority: 2,
			},
			{
				Name:     IntentComparison,
				Keywords: []string{"compare", "versus", "vs", "difference", "better", "which one", "or"},
				Priority: 2,
			},
			{
				Name: IntentGeneralInfo,
				Keywords: []string{
					"warranty", "financing", "trade-in", "insurance", "delivery",
					"service", "maintenance", "loan",
				},
				Priority: 3,
			},
			{
				Name: IntentSentimentExpression,
				Keywords: []string{
					"love", "hate", "feel", "think", "disappointed", "happy",
					"excited", "frustrated", "amazing", "terrible",
				},
				Priority: 3,
			},
		},
		Features: map[string][]string{
			"family":     {"family", "families", "7 seat", "seven seat", "8 seat", "spacious", "large"},
			"turbo":      {"turbo", "turbocharged", "powerful", "performance"},
			"hybrid":     {"hybrid", "eco", "fuel efficient", "economy"},
			"electric":   {"electric", "ev", "battery", "plug-in"},
			"luxury":     {"luxury", "premium", "high-end", "expensive"},
			"safety":     {"safety", "safe", "airbags", "collision", "lane assist"},
			"comfort":    {"comfort", "comfortable", "leg space", "legroom", "spacious interior"},
			"technology": {"tech", "technology", "smart", "carplay", "android auto", "touchscreen"},
			"4wd":        {"4wd", "4x4", "awd", "all-wheel", "off-road"},
			"sunroof":    {"sunroof", "panoramic", "moonroof"},
			"leather":    {"leather", "leather seats"},
			"navigation": {"navigation", "gps", "maps"},
			"parking":    {"parking sensors", "parking camera", "360 camera", "reverse camera"},
		},
		Brands: map[string][]string{
			"Toyota":     {"toyota"},
			"Honda":      {"honda"},
			"Nissan":     {"nissan"},
			"Ford":       {"ford"},
			"Bmw":        {"bmw"},
			"Mercedes":   {"mercedes", "benz", "mercedes-benz"},
			"Audi":       {"audi"},
			"Lexus":      {"lexus"},
			"Tesla":      {"tesla"},
			"Hyundai":    {"hyundai"},
			"Kia":        {"kia"},
			"Byd":        {"byd"},
			"Mazda":      {"mazda"},
			"Chevrolet":  {"chevrolet", "chevy"},
			"Volkswagen": {"volkswagen", "vw"},
			"Porsche":    {"porsche"},
			"Land Rover": {"land rover", "range rover"},
			"Jaguar":     {"jaguar"},
		},
		Models: []string{
			"camry", "corolla", "land cruiser", "prado", "accord", "civic",
			"altima", "x5", "x3", "gle", "glc", "a4", "a6", "q5", "q7", "rav4",
			"highlander", "pilot", "crv", "cr-v", "pathfinder", "rogue",
			"mustang", "f-150", "explorer", "escape", "bronco",
		},
		VehicleTypes: []VehicleTypeSpec{
			{Name: "suv", Keywords: []string{"suv", "sport utility", "crossover", "4x4", "off-road"}},
			{Name: "sedan", Keywords: []string{"sedan", "saloon"}},
			{Name: "truck", Keywords: []string{"truck", "pickup", "pick-up"}},
		},
		SUVBrands:        []string{"toyota", "nissan", "ford"},
		LuxuryPriceFloor: 200000,
	}
}

// FeatureNames returns the known feature tags in no particular order.
func (t *Taxonomy) FeatureNames() []string {
	names := make([]string, 0, len(t.Features))
	for name := range t.Features {
		names = append(names, name)
	}
	return names
}

// Intent returns the spec for a named intent, or nil if unknown.
func (t *Taxonomy) Intent(name string) *IntentSpec {
	for i := range t.Intents {
		if t.Intents[i].Name == name {
			return &t.Intents[i]
		}
	}
	return nil
}
