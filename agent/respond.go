package agent

import (
	"fmt"
	"strings"

	"github.com/dealerdesk/showroom/search"
	"github.com/dealerdesk/showroom/sentiment"
)

const defaultResponse = `I'm your automotive assistant! 🚗

I can help you with:
- 🔍 **Search vehicles** - Find your perfect car
- 📅 **Book test drives** - Schedule your experience
- 💰 **Check pricing** - Get budget options
- ℹ️ **Get information** - Warranty, financing, trade-in
- 😊 **Answer questions** - I'm here to help!

What would you like to know?`

// Respond selects and renders the reply template for one turn, keyed by the
// action and the observation status. Booking-family actions return an empty
// string on purpose; the caller renders the booking UI itself.
func Respond(res ActionResult, obs Observation, utterance string) string {
	if res.Action.IsBooking() {
		return ""
	}

	if res.Action.IsSearch() || res.Action == ActionProvideInfo || res.Action == ActionGeneralQuery {
		if sr, ok := res.Data.(search.Result); ok {
			return renderSearch(sr, obs, utterance)
		}
	}

	if res.Action == ActionAnalyzeSentiment {
		if s, ok := res.Data.(sentiment.Result); ok {
			return renderSentiment(s)
		}
	}

	if res.Action == ActionManageAppointment && obs.Status == ObsAwaiting {
		if m, ok := res.Data.(map[string]string); ok && m["message"] != "" {
			return m["message"]
		}
		return "I can help you book an appointment. Please provide your details."
	}

	if obs.Status == ObsFailed {
		return fmt.Sprintf("⚠️ I encountered an issue: %s\n\n"+
			"Could you please rephrase your request or try a different query?", obs.Error)
	}

	if m, ok := res.Data.(map[string]string); ok && m["message"] != "" {
		return m["message"]
	}
	return defaultResponse
}

// renderSearch shows the first three vehicles with up to three features and
// a count of the remainder. Zero results render the refinement suggestion;
// FAQ, help and degraded results pass their message through unchanged.
func renderSearch(sr search.Result, obs Observation, utterance string) string {
	switch sr.SearchType {
	case search.TypeFAQ, search.TypeGeneralHelp, search.TypeError:
		return sr.Message
	}

	if len(sr.Vehicles) == 0 {
		suggestion := obs.Suggestion
		if suggestion == "" {
			suggestion = "Try different search terms"
		}
		return fmt.Sprintf("❌ I couldn't find vehicles matching: '%s'\n\n"+
			"💡 **Suggestion:** %s\n\nTry:\n"+
			"• Broader terms (e.g., 'SUV' instead of specific model)\n"+
			"• Adjust price range\n• Check spelling", utterance, suggestion)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Great! I found %d vehicle(s) matching your search:\n\n", len(sr.Vehicles))
	for i, v := range sr.Vehicles {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "%d. **%d %s %s** - AED %s\n", i+1, v.Year, v.Make, v.Model, formatPrice(v.Price))
		if len(v.Features) > 0 {
			shown := v.Features
			if len(shown) > 3 {
				shown = shown[:3]
			}
			fmt.Fprintf(&b, "   • Features: %s\n", strings.Join(shown, ", "))
		}
		if v.Stock > 0 {
			fmt.Fprintf(&b, "   • Stock: %d units available ✅\n", v.Stock)
		} else {
			b.WriteString("   • Stock: Out of stock ❌\n")
		}
		b.WriteString("\n")
	}
	if len(sr.Vehicles) > 3 {
		fmt.Fprintf(&b, "_...and %d more options available_\n", len(sr.Vehicles)-3)
	}
	return strings.TrimSpace(b.String())
}

func renderSentiment(s sentiment.Result) string {
	label := strings.ToLower(s.Label)
	switch s.Label {
	case sentiment.LabelPositive:
		return fmt.Sprintf("I can see you're feeling %s! %s That's wonderful! "+
			"How can I help make your car buying experience even better?", label, s.Emoji)
	case sentiment.LabelNegative:
		return fmt.Sprintf("I understand you're feeling %s %s. I'm here to help "+
			"address any concerns. What can I do to assist you?", label, s.Emoji)
	default:
		return fmt.Sprintf("Thank you for sharing your thoughts %s. How can I help you today?", s.Emoji)
	}
}

// formatPrice renders a price with thousands separators, dropping a zero
// fraction. 85000 -> "85,000".
func formatPrice(p float64) string {
	s := fmt.Sprintf("%.0f", p)
	if p != float64(int64(p)) {
		s = fmt.Sprintf("%.2f", p)
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
