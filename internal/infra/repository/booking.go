package repository

import (
	"context"
	"time"

	"ovenbook/internal/domain/booking"
	"ovenbook/internal/infra"
	"ovenbook/internal/infra/db"
	"ovenbook/internal/pkg/pgconv"
	"ovenbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingSQL = `
INSERT INTO bookings (id, oven_id, user_id, start_time, end_time, title, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, bk *booking.Booking, createdAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createBookingSQL,
		bk.ID(),
		bk.OvenID(),
		bk.UserID(),
		bk.Window().Start(),
		bk.Window().End(),
		bk.Title(),
		createdAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const updateBookingWindowSQL = `
UPDATE bookings
SET start_time = $2, end_time = $3, title = $4
WHERE id = $1`

// UpdateWindow deliberately leaves oven_id, user_id and created_at out of
// the SET list; those columns never change after insert.
func (r *BookingRepository) UpdateWindow(ctx context.Context, id uuid.UUID, start, end time.Time, title string) error {
	tag, err := r.db.Exec(ctx, updateBookingWindowSQL, id, start, end, title)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

const findBookingByIDSQL = `
SELECT id, oven_id, user_id, start_time, end_time, title, created_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&snap.ID,
		&snap.OvenID,
		&snap.UserID,
		&snap.StartTime,
		&snap.EndTime,
		&snap.Title,
		&snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &snap, nil
}

const countActiveBookingsSQL = `
SELECT COUNT(*)
FROM bookings
WHERE user_id = $1 AND end_time >= $2`

// CountActiveByUser counts bookings whose window has not ended yet; these
// are the ones charged against the per-user quota.
func (r *BookingRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, countActiveBookingsSQL, userID, now).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}

	return count, nil
}

const hasOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE oven_id = $1
      AND end_time > $2
      AND start_time < $3
      AND ($4::uuid IS NULL OR id <> $4)
)`

// HasOverlap runs the half-open intersection test [start,end) against the
// oven's bookings. Must be called inside the same transaction as the
// subsequent write to be meaningful.
func (r *BookingRepository) HasOverlap(ctx context.Context, ovenID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (bool, error) {
	var conflict bool
	err := r.db.QueryRow(ctx, hasOverlapSQL, ovenID, start, end, pgconv.UUIDPtrToPgtype(exclude)).Scan(&conflict)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}

	return conflict, nil
}
