package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotOwner           = errors.New("caller is neither the owner nor an admin")
	ErrGracePeriodExpired = errors.New("edit grace period has expired")
)

// Booking reserves an oven for a half-open time window. The owner and the
// creation instant are fixed at creation; only the window and title may
// change afterwards, and only while the grace period allows it (admins
// bypass the grace period entirely).
type Booking struct {
	id        uuid.UUID
	ovenID    uuid.UUID
	userID    uuid.UUID
	window    TimeWindow
	title     string
	createdAt time.Time
}

func NewBooking(ovenID, userID uuid.UUID, window TimeWindow, title string, maxDuration time.Duration) (*Booking, error) {
	if err := window.ValidateMaxDuration(maxDuration); err != nil {
		return nil, err
	}

	return &Booking{
		id:     uuid.New(),
		ovenID: ovenID,
		userID: userID,
		window: window,
		title:  title,
	}, nil
}

func ReconstructBooking(id, ovenID, userID uuid.UUID, window TimeWindow, title string, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		ovenID:    ovenID,
		userID:    userID,
		window:    window,
		title:     title,
		createdAt: createdAt,
	}
}

// AuthorizeChange enforces the edit/cancel rules: owners may change their
// booking while now-createdAt is within the grace period, admins always may,
// everyone else never may. Ownership trumps nothing: a non-owner non-admin
// is rejected regardless of the grace period.
func (b *Booking) AuthorizeChange(actor uuid.UUID, isAdmin bool, now time.Time, grace time.Duration) error {
	if b.userID != actor && !isAdmin {
		return ErrNotOwner
	}

	if b.userID == actor && !isAdmin {
		if now.Sub(b.createdAt) > grace {
			return ErrGracePeriodExpired
		}
	}

	return nil
}

// IsActiveAt reports whether the booking still counts against the owner's
// active-booking quota: a booking is active until its window has ended.
func (b *Booking) IsActiveAt(now time.Time) bool {
	return !b.window.End().Before(now)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) OvenID() uuid.UUID    { return b.ovenID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Window() TimeWindow   { return b.window }
func (b *Booking) Title() string        { return b.title }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// AnnotateTitle composes the stored label from the caller-supplied title and
// the resolved owner display name.
func AnnotateTitle(title, ownerName string) string {
	if ownerName == "" {
		ownerName = "Unknown User"
	}
	return fmt.Sprintf("%s (by %s)", title, ownerName)
}
