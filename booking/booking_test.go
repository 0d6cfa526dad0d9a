package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		CustomerName:  "Ahmed",
		CustomerEmail: "ahmed@example.com",
		VehicleID:     "V001",
		Date:          time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		Time:          "14:00",
	}
}

func TestBook(t *testing.T) {
	s := NewInMemoryScheduler(3)

	b, err := s.Book(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "ahmed@example.com", b.CustomerEmail)
}

func TestBookValidation(t *testing.T) {
	s := NewInMemoryScheduler(3)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing name", func(r *Request) { r.CustomerName = " " }},
		{"bad email", func(r *Request) { r.CustomerEmail = "nope" }},
		{"missing vehicle", func(r *Request) { r.VehicleID = "" }},
		{"bad date", func(r *Request) { r.Date = "tomorrow" }},
		{"off-grid time", func(r *Request) { r.Time = "03:13" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := s.Book(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestBookSlotCapacity(t *testing.T) {
	s := NewInMemoryScheduler(2)
	ctx := context.Background()

	_, err := s.Book(ctx, validRequest())
	require.NoError(t, err)
	_, err = s.Book(ctx, validRequest())
	require.NoError(t, err)

	_, err = s.Book(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestRescheduleAndCancel(t *testing.T) {
	s := NewInMemoryScheduler(3)
	ctx := context.Background()

	b, err := s.Book(ctx, validRequest())
	require.NoError(t, err)

	newDate := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	moved, err := s.Reschedule(ctx, b.ID, newDate, "16:00")
	require.NoError(t, err)
	assert.Equal(t, StatusRescheduled, moved.Status)
	assert.Equal(t, newDate, moved.Date)
	assert.Equal(t, "16:00", moved.Time)

	require.NoError(t, s.Cancel(ctx, b.ID, "changed my mind"))

	// A cancelled booking cannot be rescheduled.
	_, err = s.Reschedule(ctx, b.ID, newDate, "18:00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelUnknownBooking(t *testing.T) {
	s := NewInMemoryScheduler(3)
	assert.ErrorIs(t, s.Cancel(context.Background(), "TD-missing", ""), ErrNotFound)
}

func TestAvailableSlots(t *testing.T) {
	s := NewInMemoryScheduler(1)
	ctx := context.Background()

	slots, err := s.AvailableSlots(ctx, 3)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.Equal(t, dailyTimes, slot.Times)
	}

	// Fill one slot completely; it disappears from availability.
	req := validRequest()
	req.Date = slots[0].Date
	req.Time = slots[0].Times[0]
	_, err = s.Book(ctx, req)
	require.NoError(t, err)

	slots, err = s.AvailableSlots(ctx, 3)
	require.NoError(t, err)
	assert.NotContains(t, slots[0].Times, req.Time)
}

func TestBookingsFor(t *testing.T) {
	s := NewInMemoryScheduler(3)
	ctx := context.Background()

	b1, err := s.Book(ctx, validRequest())
	require.NoError(t, err)
	req := validRequest()
	req.Time = "10:00"
	_, err = s.Book(ctx, req)
	require.NoError(t, err)

	require.NoError(t, s.Cancel(ctx, b1.ID, ""))

	// Cancelled bookings drop out; lookup is case-insensitive on email.
	got, err := s.BookingsFor(ctx, "AHMED@example.com")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
