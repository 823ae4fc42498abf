package queries

import (
	"context"
	"time"

	"ovenbook/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByOvenID(ctx context.Context, ovenID uuid.UUID) ([]*BookingView, error)
	FindUpcoming(ctx context.Context, from time.Time) ([]*AdminBookingView, error)
}

type BookingQueries interface {
	ListByOven(ctx context.Context, ovenID uuid.UUID) ([]*BookingView, error)
	ListUpcoming(ctx context.Context) ([]*AdminBookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk}
}

// ListByOven returns every booking for the oven, past ones included; the
// calendar client decides what to show.
func (q *bookingQueriesImpl) ListByOven(ctx context.Context, ovenID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindByOvenID(ctx, ovenID)
}

// ListUpcoming is the admin view: bookings starting at or after now,
// ascending by start, joined with owner and oven display data.
func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context) ([]*AdminBookingView, error) {
	return q.store.FindUpcoming(ctx, q.clock.Now())
}
