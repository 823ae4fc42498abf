package readstore

import (
	"context"
	"time"

	"ovenbook/internal/infra"
	"ovenbook/internal/infra/db"
	"ovenbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingsByOvenSQL = `
SELECT id, title, start_time, end_time, user_id, created_at
FROM bookings
WHERE oven_id = $1
ORDER BY start_time`

func (r *BookingReadStore) FindByOvenID(ctx context.Context, ovenID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, findBookingsByOvenSQL, ovenID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for oven", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		var view queries.BookingView
		if err := rows.Scan(&view.ID, &view.Title, &view.Start, &view.End, &view.UserID, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

const findUpcomingBookingsSQL = `
SELECT b.id, b.title, b.start_time, b.end_time, b.user_id,
       COALESCE(u.name, 'Unknown User'),
       COALESCE(u.email, 'N/A'),
       COALESCE(o.name, 'Unknown Oven')
FROM bookings b
LEFT JOIN users u ON u.id = b.user_id
LEFT JOIN ovens o ON o.id = b.oven_id
WHERE b.start_time >= $1
ORDER BY b.start_time ASC`

// FindUpcoming backs the admin overview: future bookings with the owner and
// oven display data joined in.
func (r *BookingReadStore) FindUpcoming(ctx context.Context, from time.Time) ([]*queries.AdminBookingView, error) {
	rows, err := r.db.Query(ctx, findUpcomingBookingsSQL, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	defer rows.Close()

	var result []*queries.AdminBookingView
	for rows.Next() {
		var view queries.AdminBookingView
		if err := rows.Scan(
			&view.ID,
			&view.Title,
			&view.Start,
			&view.End,
			&view.UserID,
			&view.UserName,
			&view.UserEmail,
			&view.OvenName,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan upcoming booking row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate upcoming booking rows", err)
	}

	return result, nil
}
