package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dealerdesk/showroom/booking"
	"github.com/dealerdesk/showroom/session"
	"github.com/dealerdesk/showroom/tool"
)

// chatRequest is the POST /api/chat payload. A missing session id starts a
// new conversation.
type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID  string  `json:"session_id"`
	Response   string  `json:"response"`
	Action     string  `json:"action"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Quality    string  `json:"quality"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = session.NewID()
	}

	turn := s.showroom.Process(r.Context(), req.SessionID, req.Message)
	writeJSON(w, http.StatusOK, chatResponse{
		SessionID:  req.SessionID,
		Response:   turn.Response,
		Action:     string(turn.Reasoning.Action),
		Intent:     turn.Intent.Type,
		Confidence: turn.Confidence,
		Quality:    turn.Observation.Quality,
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	writeJSON(w, http.StatusOK, s.showroom.Analytics(sessionID))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	s.showroom.Reset(sessionID)
	writeJSON(w, http.StatusOK, map[string]string{"session_id": sessionID, "status": "reset"})
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	b, err := s.showroom.Booking().Book(r.Context(), req)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	slots, err := s.showroom.Booking().Availability(r.Context(), days)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"slots": slots})
}

type rescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (s *Server) handleReschedule(w http.ResponseWriter, r *http.Request) {
	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	b, err := s.showroom.Booking().Reschedule(r.Context(), chi.URLParam(r, "bookingID"), req.Date, req.Time)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	reason := r.URL.Query().Get("reason")
	if err := s.showroom.Booking().Cancel(r.Context(), chi.URLParam(r, "bookingID"), reason); err != nil {
		writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": booking.StatusCancelled})
}

// writeBookingError maps tool error codes onto HTTP statuses.
func writeBookingError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var te *tool.ToolError
	if errors.As(err, &te) {
		switch te.Code {
		case tool.CodeBadInput:
			status = http.StatusBadRequest
		case tool.CodeNotFound:
			status = http.StatusNotFound
		case tool.CodeSlotFull:
			status = http.StatusConflict
		}
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
