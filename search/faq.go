package search

import "strings"

// faqEntry is a canned dealership answer matched by keyword before any
// inventory lookup happens.
type faqEntry struct {
	Answer   string
	Category string
	Keywords []string
}

func buildFAQKnowledge() []faqEntry {
	return []faqEntry{
		{
			Answer: "All our vehicles come with a comprehensive 3-year/100,000 km warranty, " +
				"whichever comes first. This includes 24/7 roadside assistance and free scheduled " +
				"maintenance for the first year.",
			Category: "warranty",
			Keywords: []string{"warranty", "guarantee", "coverage", "protection"},
		},
		{
			Answer: "We offer flexible financing options with competitive rates. You can get " +
				"approved with as low as 0% down payment and choose terms from 12 to 60 months. " +
				"We work with major banks in UAE.",
			Category: "financing",
			Keywords: []string{"financing", "loan", "payment", "installment", "bank", "finance"},
		},
		{
			Answer:   "Yes! We accept trade-ins and offer competitive valuations. The trade-in value can be used as down payment.",
			Category: "trade-in",
			Keywords: []string{"trade-in", "trade", "exchange", "old car", "sell"},
		},
	}
}

// checkFAQ returns an FAQ result when the query hits a knowledge entry,
// or nil when the query should proceed to inventory search.
func (o *Orchestrator) checkFAQ(rawQuery string) *Result {
	lower := strings.ToLower(rawQuery)
	for _, entry := range o.faq {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return &Result{
					Message:    entry.Answer,
					SearchType: TypeFAQ,
					Category:   entry.Category,
				}
			}
		}
	}
	return nil
}
