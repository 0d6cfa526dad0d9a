package agent

import (
	"github.com/dealerdesk/showroom/search"
	"github.com/dealerdesk/showroom/sentiment"
)

// Observation statuses and quality grades.
const (
	ObsSuccess  = "success"
	ObsAwaiting = "awaiting_user_input"
	ObsFailed   = "failed"

	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityAdequate  = "adequate"
	QualityPoor      = "poor"
	QualityPending   = "pending"
	QualityError     = "error"
)

// Observation grades the outcome of one action. Derived deterministically
// from the ActionResult; carrying extra fields depending on the action.
type Observation struct {
	Status           string `json:"status"`
	Quality          string `json:"quality"`
	ResultCount      int    `json:"result_count,omitempty"`
	NeedsRefinement  bool   `json:"needs_refinement"`
	Suggestion       string `json:"suggestion,omitempty"`
	Sentiment        string `json:"sentiment,omitempty"`
	Error            string `json:"error,omitempty"`
	ActionSuccessful bool   `json:"action_successful"`
}

// Observe is a pure function from ActionResult to Observation.
//
// Search outcomes grade on result count: five or more is excellent, one to
// four good, zero poor with refinement suggested. Sentiment and booking
// outcomes are always good. Message-only payloads are adequate.
func Observe(res ActionResult) Observation {
	switch res.Status {
	case StatusRequiresInfo:
		return Observation{
			Status:           ObsAwaiting,
			Quality:          QualityPending,
			ActionSuccessful: true,
		}
	case StatusError:
		errMsg := res.Error
		if errMsg == "" {
			errMsg = "Unknown error"
		}
		return Observation{
			Status:          ObsFailed,
			Quality:         QualityError,
			NeedsRefinement: true,
			Error:           errMsg,
		}
	}

	switch data := res.Data.(type) {
	case search.Result:
		if data.SearchType == search.TypeFAQ || data.SearchType == search.TypeGeneralHelp {
			return Observation{
				Status:           ObsSuccess,
				Quality:          QualityAdequate,
				ActionSuccessful: true,
			}
		}
		n := len(data.Vehicles)
		if n == 0 {
			return Observation{
				Status:           ObsSuccess,
				Quality:          QualityPoor,
				ResultCount:      0,
				NeedsRefinement:  true,
				Suggestion:       "Try broader search terms or adjust your filters",
				ActionSuccessful: false,
			}
		}
		quality := QualityGood
		if n >= 5 {
			quality = QualityExcellent
		}
		return Observation{
			Status:           ObsSuccess,
			Quality:          quality,
			ResultCount:      n,
			ActionSuccessful: true,
		}

	case sentiment.Result:
		return Observation{
			Status:           ObsSuccess,
			Quality:          QualityGood,
			Sentiment:        data.Label,
			ActionSuccessful: true,
		}
	}

	if res.Action.IsBooking() {
		return Observation{
			Status:           ObsSuccess,
			Quality:          QualityGood,
			ActionSuccessful: true,
		}
	}

	return Observation{
		Status:           ObsSuccess,
		Quality:          QualityAdequate,
		ActionSuccessful: true,
	}
}
