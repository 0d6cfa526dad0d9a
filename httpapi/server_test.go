package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/showroom"
	"github.com/dealerdesk/showroom/agent"
	"github.com/dealerdesk/showroom/booking"
)

func newTestServer() *Server {
	return New(showroom.New())
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestServer().Handler(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatAssignsSessionAndAnswers(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat",
		chatRequest{Message: "Show me Toyota Camry under 100k"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, string(agent.ActionVehicleSearch), resp.Action)
	assert.Contains(t, resp.Response, "Toyota")
}

func TestChatValidation(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat", chatRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{oops"))
	rec2 := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestChatThenAnalytics(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat",
		chatRequest{SessionID: "abc", Message: "show me suv"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/analytics/abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var a agent.Analytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, 1, a.TotalInteractions)
}

func TestSessionReset(t *testing.T) {
	srv := newTestServer()

	doJSON(t, srv.Handler(), http.MethodPost, "/api/chat",
		chatRequest{SessionID: "abc", Message: "show me suv"})
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/sessions/abc/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/analytics/abc", nil)
	var a agent.Analytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Zero(t, a.TotalInteractions)
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer()
	h := srv.Handler()
	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	rec := doJSON(t, h, http.MethodPost, "/api/bookings/", booking.Request{
		CustomerName:  "Ahmed",
		CustomerEmail: "ahmed@example.com",
		VehicleID:     "V001",
		Date:          date,
		Time:          "12:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var b booking.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	require.NotEmpty(t, b.ID)

	rec = doJSON(t, h, http.MethodPut, "/api/bookings/"+b.ID,
		rescheduleRequest{Date: date, Time: "16:00"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/bookings/"+b.ID+"?reason=busy", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingValidationMapsTo400(t *testing.T) {
	rec := doJSON(t, newTestServer().Handler(), http.MethodPost, "/api/bookings/", booking.Request{
		CustomerName: "Ahmed",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingRescheduleUnknownMapsTo404(t *testing.T) {
	rec := doJSON(t, newTestServer().Handler(), http.MethodPut, "/api/bookings/TD-missing",
		rescheduleRequest{Date: "2031-05-05", Time: "10:00"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSlots(t *testing.T) {
	rec := doJSON(t, newTestServer().Handler(), http.MethodGet, "/api/bookings/slots?days=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Slots []booking.Slot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Slots, 2)
}
