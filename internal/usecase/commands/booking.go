package commands

import (
	"context"
	"errors"

	"ovenbook/internal/domain/booking"
	"ovenbook/internal/domain/oven"
	"ovenbook/internal/infra"
	"ovenbook/internal/pkg/clock"
	"ovenbook/internal/pkg/config"
	"ovenbook/internal/pkg/errs"
	"ovenbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOvenNotFound       = errs.New("oven not found")
	ErrOvenUnavailable    = errs.New("oven under maintenance")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrBookingConflict    = errs.New("booking conflict")
	ErrInvalidWindow      = errs.New("invalid time window")
	ErrDurationTooLong    = errs.New("booking duration too long")
	ErrQuotaExceeded      = errs.New("active booking quota exceeded")
	ErrNotAuthorized      = errs.New("not authorized to modify booking")
	ErrGracePeriodExpired = errs.New("grace period expired")
)

type BookingCommands interface {
	Create(ctx context.Context, ovenID uuid.UUID, window booking.TimeWindow, title string, actor uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, bookingID, ovenID uuid.UUID, window booking.TimeWindow, title string, actor uuid.UUID, isAdmin bool) error
	Cancel(ctx context.Context, bookingID, actor uuid.UUID, isAdmin bool) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy config.BookingConfig
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, policy config.BookingConfig) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

// Create books an oven for a half-open window.
//
// The quota check runs outside the transaction on purpose: it is advisory,
// and two concurrent creates from the same caller can both pass it and
// transiently exceed the quota. That race is accepted behavior, not a bug.
// The oven-status check, the overlap check and the insert share one
// serializable transaction so concurrent overlapping creates on the same
// oven cannot both commit.
func (b *bookingCommandsImpl) Create(
	ctx context.Context,
	ovenID uuid.UUID,
	window booking.TimeWindow,
	title string,
	actor uuid.UUID,
) (uuid.UUID, error) {
	if err := window.ValidateMaxDuration(b.policy.MaxDuration); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDurationTooLong)
	}

	now := b.clock.Now()

	active, err := b.uow.CommandReads().CountActiveBookings(ctx, actor, now)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "quota pre-check failed")
	}
	if active >= b.policy.MaxActive {
		return uuid.Nil, ErrQuotaExceeded
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ovenSnap, err := tx.Reads().OvenByID(ctx, ovenID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOvenNotFound
			}
			return errs.Wrap(err, "failed to load oven")
		}
		if ovenSnap.Status != oven.StatusActive.String() {
			return ErrOvenUnavailable
		}

		conflict, err := tx.Reads().HasOverlap(ctx, ovenID, window.Start(), window.End(), nil)
		if err != nil {
			return errs.Wrap(err, "overlap check failed")
		}
		if conflict {
			return ErrBookingConflict
		}

		ownerName := b.resolveOwnerName(ctx, tx, actor)

		entity, err := booking.NewBooking(ovenID, actor, window, booking.AnnotateTitle(title, ownerName), b.policy.MaxDuration)
		if err != nil {
			return errs.Mark(err, ErrInvalidWindow)
		}

		bookingID, err = tx.Bookings().Create(ctx, entity, now)
		if err != nil {
			return errs.Wrap(err, "failed to insert booking")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return bookingID, nil
}

// Update overwrites the window and title of an existing booking. The oven
// reference, owner and creation instant are immutable; the requested oven ID
// only scopes the overlap re-check (it always matches the stored one for
// well-behaved clients).
func (b *bookingCommandsImpl) Update(
	ctx context.Context,
	bookingID, ovenID uuid.UUID,
	window booking.TimeWindow,
	title string,
	actor uuid.UUID,
	isAdmin bool,
) error {
	if err := window.ValidateMaxDuration(b.policy.MaxDuration); err != nil {
		return errs.Mark(err, ErrDurationTooLong)
	}

	now := b.clock.Now()

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Wrap(err, "failed to load booking")
		}

		entity := reconstruct(snap)
		if err := entity.AuthorizeChange(actor, isAdmin, now, b.policy.EditGracePeriod); err != nil {
			return markAuthzError(err)
		}

		conflict, err := tx.Reads().HasOverlap(ctx, ovenID, window.Start(), window.End(), &bookingID)
		if err != nil {
			return errs.Wrap(err, "overlap check failed")
		}
		if conflict {
			return ErrBookingConflict
		}

		ownerName := b.resolveOwnerName(ctx, tx, snap.UserID)

		if err := tx.Bookings().UpdateWindow(ctx, bookingID, window.Start(), window.End(), booking.AnnotateTitle(title, ownerName)); err != nil {
			return errs.Wrap(err, "failed to update booking")
		}
		return nil
	})
}

// Cancel deletes a booking outright. No transaction with other operations is
// needed: removing a row cannot create an overlap.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, actor uuid.UUID, isAdmin bool) error {
	now := b.clock.Now()

	snap, err := b.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Wrap(err, "failed to load booking")
	}

	entity := reconstruct(snap)
	if err := entity.AuthorizeChange(actor, isAdmin, now, b.policy.EditGracePeriod); err != nil {
		return markAuthzError(err)
	}

	return b.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, bookingID); err != nil {
			return errs.Wrap(err, "failed to delete booking")
		}
		return nil
	})
}

func (b *bookingCommandsImpl) resolveOwnerName(ctx context.Context, tx shared.Tx, userID uuid.UUID) string {
	userSnap, err := tx.Reads().UserByID(ctx, userID)
	if err != nil || userSnap == nil {
		return "Unknown User"
	}
	return userSnap.Name
}

func reconstruct(snap *shared.BookingSnapshot) *booking.Booking {
	window, _ := booking.NewTimeWindow(snap.StartTime, snap.EndTime)
	return booking.ReconstructBooking(snap.ID, snap.OvenID, snap.UserID, window, snap.Title, snap.CreatedAt)
}

func markAuthzError(err error) error {
	switch {
	case errors.Is(err, booking.ErrNotOwner):
		return errs.Mark(err, ErrNotAuthorized)
	case errors.Is(err, booking.ErrGracePeriodExpired):
		return errs.Mark(err, ErrGracePeriodExpired)
	default:
		return err
	}
}
