package agent

import "time"

// feedbackCap bounds the feedback log; the oldest entries drop first.
const feedbackCap = 100

// Interaction is one completed turn in the conversation history.
type Interaction struct {
	Utterance   string          `json:"utterance"`
	Reasoning   ReasoningRecord `json:"reasoning"`
	Observation Observation     `json:"observation"`
	Response    string          `json:"response"`
	Timestamp   time.Time       `json:"timestamp"`
	Success     bool            `json:"success"`
}

// ActionMemory tracks running performance aggregates for one action kind.
// SuccessRate and AvgConfidence are maintained incrementally so an update
// stays O(1) regardless of history length.
type ActionMemory struct {
	Count         int     `json:"count"`
	Successes     int     `json:"successes"`
	Failures      int     `json:"failures"`
	SuccessRate   float64 `json:"success_rate"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// FeedbackEntry is one row of the capped feedback log.
type FeedbackEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Action     Action    `json:"action"`
	Success    bool      `json:"success"`
	Quality    string    `json:"quality"`
	Confidence float64   `json:"confidence"`
}

// UserContext summarizes recent history for the reason phase.
type UserContext struct {
	RecentActions    []Action `json:"recent_actions"`
	RecentIntents    []string `json:"recent_intents"`
	InteractionCount int      `json:"interaction_count"`
}

// Session owns one conversation's history, long-term action memory and
// feedback log. A session must not be shared across concurrent turns; the
// session store serializes access per conversation.
type Session struct {
	ID       string                   `json:"id"`
	History  []Interaction            `json:"history"`
	Memory   map[Action]*ActionMemory `json:"memory"`
	Feedback []FeedbackEntry          `json:"feedback"`
}

// NewSession creates an empty session.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Memory: map[Action]*ActionMemory{},
	}
}

// Context summarizes the last five interactions.
func (s *Session) Context() UserContext {
	recent := s.History
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	ctx := UserContext{InteractionCount: len(s.History)}
	for _, h := range recent {
		ctx.RecentActions = append(ctx.RecentActions, h.Reasoning.Action)
		ctx.RecentIntents = append(ctx.RecentIntents, h.Reasoning.Intent.Type)
	}
	return ctx
}

// Learn appends the interaction and updates the action memory for the turn.
// AvgConfidence uses the incremental mean so it equals the mean recomputed
// from scratch within floating point tolerance.
func (s *Session) Learn(utterance string, rec ReasoningRecord, obs Observation, response string) {
	s.History = append(s.History, Interaction{
		Utterance:   utterance,
		Reasoning:   rec,
		Observation: obs,
		Response:    response,
		Timestamp:   time.Now(),
		Success:     obs.ActionSuccessful,
	})

	mem, ok := s.Memory[rec.Action]
	if !ok {
		mem = &ActionMemory{}
		s.Memory[rec.Action] = mem
	}
	mem.Count++
	if obs.ActionSuccessful {
		mem.Successes++
	} else {
		mem.Failures++
	}
	mem.SuccessRate = float64(mem.Successes) / float64(mem.Count)
	mem.AvgConfidence = (mem.AvgConfidence*float64(mem.Count-1) + rec.Confidence) / float64(mem.Count)

	s.Feedback = append(s.Feedback, FeedbackEntry{
		Timestamp:  time.Now(),
		Action:     rec.Action,
		Success:    obs.ActionSuccessful,
		Quality:    obs.Quality,
		Confidence: rec.Confidence,
	})
	if len(s.Feedback) > feedbackCap {
		s.Feedback = s.Feedback[len(s.Feedback)-feedbackCap:]
	}
}

// Reset clears the conversation history, keeping long-term action memory.
func (s *Session) Reset() {
	s.History = nil
}

// FullReset clears everything including action memory and feedback.
func (s *Session) FullReset() {
	s.History = nil
	s.Memory = map[Action]*ActionMemory{}
	s.Feedback = nil
}

// ActionStats is the per-action slice of an analytics snapshot.
type ActionStats struct {
	Count         int     `json:"count"`
	SuccessRate   float64 `json:"success_rate"`
	AvgConfidence float64 `json:"avg_confidence"`
	Failures      int     `json:"failures"`
}

// Analytics is a read-only snapshot of session performance.
type Analytics struct {
	TotalInteractions int                    `json:"total_interactions"`
	OverallSuccess    float64                `json:"overall_success_rate"`
	RecentSuccess     float64                `json:"recent_success_rate"`
	AvgConfidence     float64                `json:"average_confidence"`
	ActionStatistics  map[Action]ActionStats `json:"action_statistics"`
	FeedbackLogSize   int                    `json:"feedback_log_size"`
	MemorySize        int                    `json:"memory_size"`
}

// Snapshot computes the analytics export. Recent success covers the last
// ten interactions.
func (s *Session) Snapshot() Analytics {
	total := len(s.History)
	a := Analytics{
		TotalInteractions: total,
		ActionStatistics:  map[Action]ActionStats{},
		FeedbackLogSize:   len(s.Feedback),
		MemorySize:        len(s.Memory),
	}
	if total == 0 {
		return a
	}

	successes := 0
	confSum := 0.0
	for _, h := range s.History {
		if h.Success {
			successes++
		}
		confSum += h.Reasoning.Confidence
	}
	a.OverallSuccess = float64(successes) / float64(total)
	a.AvgConfidence = confSum / float64(total)

	recent := s.History
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	recentSuccesses := 0
	for _, h := range recent {
		if h.Success {
			recentSuccesses++
		}
	}
	a.RecentSuccess = float64(recentSuccesses) / float64(len(recent))

	for action, mem := range s.Memory {
		a.ActionStatistics[action] = ActionStats{
			Count:         mem.Count,
			SuccessRate:   mem.SuccessRate,
			AvgConfidence: mem.AvgConfidence,
			Failures:      mem.Failures,
		}
	}
	return a
}
