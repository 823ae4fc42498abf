package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// BookingWatcher replays a per-oven booking list as a lazy sequence of
// snapshots: re-query on a fixed interval, push only when the list changed,
// stop when the caller's context ends. This is the pull-based stand-in for a
// live store subscription.
type BookingWatcher struct {
	store    BookingReadStore
	interval time.Duration
}

func NewBookingWatcher(store BookingReadStore, interval time.Duration) *BookingWatcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &BookingWatcher{
		store:    store,
		interval: interval,
	}
}

// Watch emits the current list immediately, then polls. The channel is
// closed when ctx is done; cancellation is the only way a watch ends.
func (w *BookingWatcher) Watch(ctx context.Context, ovenID uuid.UUID) <-chan []*BookingView {
	out := make(chan []*BookingView, 1)

	go func() {
		defer close(out)

		var last []*BookingView
		sent := false
		emit := func() {
			snapshot, err := w.store.FindByOvenID(ctx, ovenID)
			if err != nil {
				if ctx.Err() == nil {
					slog.Warn("booking watch query failed", "oven_id", ovenID, "error", err.Error())
				}
				return
			}
			if sent && bookingListsEqual(last, snapshot) {
				return
			}
			last = snapshot
			sent = true
			select {
			case out <- snapshot:
			case <-ctx.Done():
			}
		}

		emit()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				emit()
			}
		}
	}()

	return out
}

func bookingListsEqual(a, b []*BookingView) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if *a[i] != *b[i] {
			return false
		}
	}
	return true
}
