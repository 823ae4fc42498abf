package shared

import (
	"time"

	"github.com/google/uuid"
)

type OvenSnapshot struct {
	ID     uuid.UUID
	Name   string
	Status string
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	IsActive bool
}

// BookingSnapshot is the minimal command-side read of a stored booking.
type BookingSnapshot struct {
	ID        uuid.UUID
	OvenID    uuid.UUID
	UserID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Title     string
	CreatedAt time.Time
}
