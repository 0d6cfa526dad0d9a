package tool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dealerdesk/showroom/booking"
)

// BookingRequest is the structured payload the booking tool accepts, either
// as JSON via Call or directly through the typed methods.
type BookingRequest struct {
	Operation string `json:"operation"` // book, reschedule, cancel, availability
	booking.Request
	BookingID string `json:"booking_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Days      int    `json:"days,omitempty"`
}

// Booking exposes a booking.Scheduler as an agent tool.
type Booking struct {
	scheduler booking.Scheduler
}

// NewBooking binds a scheduler.
func NewBooking(scheduler booking.Scheduler) *Booking {
	return &Booking{scheduler: scheduler}
}

func (t *Booking) Name() string { return NameBooking }

func (t *Booking) Description() string {
	return "Books, reschedules and cancels test drive appointments."
}

// Call decodes a JSON BookingRequest and routes it to the scheduler.
func (t *Booking) Call(ctx context.Context, input string) (any, error) {
	var req BookingRequest
	if err := json.Unmarshal([]byte(input), &req); err != nil {
		return nil, NewToolError(NameBooking, "invalid booking payload: "+err.Error(), CodeBadInput)
	}

	switch req.Operation {
	case "book", "":
		return t.Book(ctx, req.Request)
	case "reschedule":
		return t.Reschedule(ctx, req.BookingID, req.Date, req.Time)
	case "cancel":
		if err := t.Cancel(ctx, req.BookingID, req.Reason); err != nil {
			return nil, err
		}
		return map[string]string{"booking_id": req.BookingID, "status": booking.StatusCancelled}, nil
	case "availability":
		return t.Availability(ctx, req.Days)
	default:
		return nil, NewToolError(NameBooking, "unknown operation "+req.Operation, CodeBadInput)
	}
}

// Book schedules a new test drive.
func (t *Booking) Book(ctx context.Context, req booking.Request) (booking.Booking, error) {
	b, err := t.scheduler.Book(ctx, req)
	if err != nil {
		return booking.Booking{}, wrapBookingErr(err)
	}
	return b, nil
}

// Reschedule moves an existing booking.
func (t *Booking) Reschedule(ctx context.Context, bookingID, date, tm string) (booking.Booking, error) {
	b, err := t.scheduler.Reschedule(ctx, bookingID, date, tm)
	if err != nil {
		return booking.Booking{}, wrapBookingErr(err)
	}
	return b, nil
}

// Cancel cancels a booking.
func (t *Booking) Cancel(ctx context.Context, bookingID, reason string) error {
	if err := t.scheduler.Cancel(ctx, bookingID, reason); err != nil {
		return wrapBookingErr(err)
	}
	return nil
}

// Availability lists open slots for the coming days.
func (t *Booking) Availability(ctx context.Context, days int) ([]booking.Slot, error) {
	slots, err := t.scheduler.AvailableSlots(ctx, days)
	if err != nil {
		return nil, wrapBookingErr(err)
	}
	return slots, nil
}

func wrapBookingErr(err error) *ToolError {
	code := CodeInternal
	switch {
	case errors.Is(err, booking.ErrNotFound):
		code = CodeNotFound
	case errors.Is(err, booking.ErrSlotFull):
		code = CodeSlotFull
	case errors.Is(err, booking.ErrInvalidRequest):
		code = CodeBadInput
	}
	return NewToolError(NameBooking, err.Error(), code)
}
