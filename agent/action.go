package agent

import "github.com/dealerdesk/showroom/taxonomy"

// Action identifies what the agent decided to do for a turn. The set is
// closed; every action maps to exactly one dispatch branch.
type Action string

const (
	ActionTestDriveBooking  Action = "test_drive_booking"
	ActionCheckAvailability Action = "check_availability"
	ActionRescheduleBooking Action = "reschedule_booking"
	ActionCancelBooking     Action = "cancel_booking"
	ActionVehicleSearch     Action = "vehicle_search"
	ActionManageAppointment Action = "manage_appointment"
	ActionBudgetSearch      Action = "budget_search"
	ActionFeatureSearch     Action = "feature_search"
	ActionCompareVehicles   Action = "compare_vehicles"
	ActionAnalyzeSentiment  Action = "analyze_sentiment"
	ActionProvideInfo       Action = "provide_info"
	ActionGeneralQuery      Action = "general_query"
	ActionError             Action = "error"
)

// IsBooking reports whether the action belongs to the test drive family,
// which the response layer delegates entirely to the booking UI.
func (a Action) IsBooking() bool {
	switch a {
	case ActionTestDriveBooking, ActionCheckAvailability, ActionRescheduleBooking, ActionCancelBooking:
		return true
	}
	return false
}

// IsSearch reports whether the action runs the retrieval pipeline.
func (a Action) IsSearch() bool {
	switch a {
	case ActionVehicleSearch, ActionBudgetSearch, ActionFeatureSearch, ActionCompareVehicles:
		return true
	}
	return false
}

// plan pairs the action selected for an intent with the thought recorded in
// the reasoning trace.
type plan struct {
	action  Action
	thought string
}

// intentPlans is the fixed intent-to-action table.
var intentPlans = map[string]plan{
	taxonomy.IntentTestDriveBooking: {
		ActionTestDriveBooking,
		"User wants to book a test drive - need to check availability and collect details",
	},
	taxonomy.IntentCheckAvailability: {
		ActionCheckAvailability,
		"User wants to see available test drive slots",
	},
	taxonomy.IntentRescheduleBooking: {
		ActionRescheduleBooking,
		"User wants to reschedule an existing test drive booking",
	},
	taxonomy.IntentCancelBooking: {
		ActionCancelBooking,
		"User wants to cancel a test drive booking",
	},
	taxonomy.IntentVehicleSearch: {
		ActionVehicleSearch,
		"User wants to search for vehicles based on specific criteria",
	},
	taxonomy.IntentAppointment: {
		ActionManageAppointment,
		"User wants to book, reschedule, or check appointments",
	},
	taxonomy.IntentBudgetQuery: {
		ActionBudgetSearch,
		"User is asking about vehicle pricing and budget options",
	},
	taxonomy.IntentFeaturesQuery: {
		ActionFeatureSearch,
		"User wants to know about vehicle features and specifications",
	},
	taxonomy.IntentComparison: {
		ActionCompareVehicles,
		"User wants to compare different vehicles",
	},
	taxonomy.IntentSentimentExpression: {
		ActionAnalyzeSentiment,
		"User is expressing feelings or opinions",
	},
	taxonomy.IntentGeneralInfo: {
		ActionProvideInfo,
		"User needs general information (warranty, financing, trade-in, etc.)",
	},
}

// planFor resolves an intent name to its plan, falling back to the general
// query plan for unknown intents.
func planFor(intentName string) plan {
	if p, ok := intentPlans[intentName]; ok {
		return p
	}
	return plan{ActionGeneralQuery, "User needs general assistance"}
}
