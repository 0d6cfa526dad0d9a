// Package booking models the test-drive scheduling collaborator. The agent
// consumes it as an opaque tool; this package supplies the contract plus an
// in-memory scheduler suitable for demos and tests. Durable backends only
// need to satisfy the Scheduler interface.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle states.
const (
	StatusConfirmed   = "confirmed"
	StatusRescheduled = "rescheduled"
	StatusCancelled   = "cancelled"
	StatusCompleted   = "completed"
)

var (
	// ErrNotFound is returned for an unknown booking id.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotFull is returned when a requested slot has no remaining capacity.
	ErrSlotFull = errors.New("slot fully booked")
	// ErrInvalidRequest is returned for malformed booking requests.
	ErrInvalidRequest = errors.New("invalid booking request")
)

// Request carries the details needed to book a test drive.
type Request struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	VehicleID     string `json:"vehicle_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
	Location      string `json:"location,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Booking is a confirmed test drive appointment.
type Booking struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	VehicleID     string    `json:"vehicle_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Location      string    `json:"location,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CancelReason  string    `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Slot lists the open times for one date.
type Slot struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// Scheduler is the booking subsystem contract the agent dispatches to.
type Scheduler interface {
	Book(ctx context.Context, req Request) (Booking, error)
	Reschedule(ctx context.Context, bookingID, newDate, newTime string) (Booking, error)
	Cancel(ctx context.Context, bookingID, reason string) error
	AvailableSlots(ctx context.Context, days int) ([]Slot, error)
	BookingsFor(ctx context.Context, email string) ([]Booking, error)
}

// dailyTimes are the showroom's fixed test drive start times.
var dailyTimes = []string{"10:00", "12:00", "14:00", "16:00", "18:00"}

// InMemoryScheduler keeps bookings in process memory. Safe for concurrent
// use; each slot holds up to capacity bookings.
type InMemoryScheduler struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
	capacity int
	now      func() time.Time
}

// NewInMemoryScheduler constructs a scheduler with the given per-slot
// capacity (values < 1 fall back to 3).
func NewInMemoryScheduler(capacity int) *InMemoryScheduler {
	if capacity < 1 {
		capacity = 3
	}
	return &InMemoryScheduler{
		bookings: map[string]*Booking{},
		capacity: capacity,
		now:      time.Now,
	}
}

// Book validates the request, checks slot capacity and stores the booking.
func (s *InMemoryScheduler) Book(_ context.Context, req Request) (Booking, error) {
	if err := validate(req); err != nil {
		return Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotCountLocked(req.Date, req.Time) >= s.capacity {
		return Booking{}, fmt.Errorf("%w: %s %s", ErrSlotFull, req.Date, req.Time)
	}

	b := &Booking{
		ID:            "TD-" + uuid.NewString()[:8],
		CustomerName:  req.CustomerName,
		CustomerEmail: strings.ToLower(req.CustomerEmail),
		CustomerPhone: req.CustomerPhone,
		VehicleID:     req.VehicleID,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Notes:         req.Notes,
		Status:        StatusConfirmed,
		CreatedAt:     s.now(),
	}
	s.bookings[b.ID] = b
	return *b, nil
}

// Reschedule moves an existing booking to a new slot.
func (s *InMemoryScheduler) Reschedule(_ context.Context, bookingID, newDate, newTime string) (Booking, error) {
	if !validDate(newDate) || !validTime(newTime) {
		return Booking{}, fmt.Errorf("%w: bad date or time", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok || b.Status == StatusCancelled {
		return Booking{}, fmt.Errorf("%w: %s", ErrNotFound, bookingID)
	}
	if s.slotCountLocked(newDate, newTime) >= s.capacity {
		return Booking{}, fmt.Errorf("%w: %s %s", ErrSlotFull, newDate, newTime)
	}

	b.Date = newDate
	b.Time = newTime
	b.Status = StatusRescheduled
	return *b, nil
}

// Cancel marks a booking cancelled, keeping it for history.
func (s *InMemoryScheduler) Cancel(_ context.Context, bookingID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, bookingID)
	}
	b.Status = StatusCancelled
	b.CancelReason = reason
	return nil
}

// AvailableSlots returns the open times for the next `days` days starting
// tomorrow.
func (s *InMemoryScheduler) AvailableSlots(_ context.Context, days int) ([]Slot, error) {
	if days < 1 {
		days = 7
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := make([]Slot, 0, days)
	for d := 1; d <= days; d++ {
		date := s.now().AddDate(0, 0, d).Format("2006-01-02")
		var open []string
		for _, t := range dailyTimes {
			if s.slotCountLocked(date, t) < s.capacity {
				open = append(open, t)
			}
		}
		if len(open) > 0 {
			slots = append(slots, Slot{Date: date, Times: open})
		}
	}
	return slots, nil
}

// BookingsFor returns all non-cancelled bookings for a customer email.
func (s *InMemoryScheduler) BookingsFor(_ context.Context, email string) ([]Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	var out []Booking
	for _, b := range s.bookings {
		if b.CustomerEmail == email && b.Status != StatusCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *InMemoryScheduler) slotCountLocked(date, t string) int {
	n := 0
	for _, b := range s.bookings {
		if b.Date == date && b.Time == t && b.Status != StatusCancelled {
			n++
		}
	}
	return n
}

func validate(req Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name required", ErrInvalidRequest)
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: valid email required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.VehicleID) == "" {
		return fmt.Errorf("%w: vehicle id required", ErrInvalidRequest)
	}
	if !validDate(req.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
	}
	if !validTime(req.Time) {
		return fmt.Errorf("%w: time must be one of %s", ErrInvalidRequest, strings.Join(dailyTimes, ", "))
	}
	return nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func validTime(t string) bool {
	for _, dt := range dailyTimes {
		if t == dt {
			return true
		}
	}
	return false
}
