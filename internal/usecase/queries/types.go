package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type OvenView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
}

// BookingView feeds the per-oven calendar; clients do their own time
// filtering for display.
type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminBookingView joins owner and oven display data for the
// cross-resource upcoming-bookings screen.
type AdminBookingView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	OvenName  string    `json:"ovenName"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
