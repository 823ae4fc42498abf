package shared

import (
	"context"
	"time"

	"ovenbook/internal/domain/booking"
	"ovenbook/internal/domain/oven"
	"ovenbook/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Serializable transaction for conflict-sensitive writes, with
	// retry on serialization failures. The overlap check and the write must
	// share this snapshot so two concurrent attempts on the same oven
	// cannot both commit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single-statement operations using implicit transactions.
	// Cancellation runs here; deleting a booking cannot create an overlap.
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Pool-backed reads for checks that deliberately run
	// outside any transaction (e.g. the advisory quota pre-check).
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Ovens() OvenRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	OvenByID(ctx context.Context, id uuid.UUID) (*OvenSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	CountActiveBookings(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	// HasOverlap evaluates the half-open intersection test against the
	// oven's bookings: exists [s,e) with e > start AND s < end. The exclude
	// ID removes the booking being updated from the candidate set.
	HasOverlap(ctx context.Context, ovenID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, bk *booking.Booking, createdAt time.Time) (uuid.UUID, error)
	// UpdateWindow overwrites start/end/title only; oven, owner and
	// created_at are immutable by contract.
	UpdateWindow(ctx context.Context, id uuid.UUID, start, end time.Time, title string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OvenRepository interface {
	Create(ctx context.Context, ov *oven.Oven) (uuid.UUID, error)
	SetStatus(ctx context.Context, id uuid.UUID, status oven.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
