//go:build unit

package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ovenbook/internal/usecase/queries"
	queriesmock "ovenbook/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func receiveWithin(t *testing.T, ch <-chan []*queries.BookingView, d time.Duration) []*queries.BookingView {
	t.Helper()
	select {
	case got, ok := <-ch:
		require.True(t, ok, "channel closed before a snapshot arrived")
		return got
	case <-time.After(d):
		t.Fatal("timed out waiting for a snapshot")
		return nil
	}
}

func TestWatcherEmitsInitialSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockBookingReadStore(ctrl)
	ovenID := uuid.New()

	// Empty list still counts as the first snapshot
	store.EXPECT().FindByOvenID(gomock.Any(), ovenID).Return([]*queries.BookingView{}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := queries.NewBookingWatcher(store, 10*time.Millisecond)
	ch := w.Watch(ctx, ovenID)

	got := receiveWithin(t, ch, time.Second)
	assert.Empty(t, got)
}

func TestWatcherSkipsUnchangedListsAndEmitsChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockBookingReadStore(ctrl)
	ovenID := uuid.New()

	first := []*queries.BookingView{
		{ID: uuid.New(), Title: "Anneal run (by Dana)", UserID: uuid.New()},
	}

	var mu sync.Mutex
	current := first
	store.EXPECT().FindByOvenID(gomock.Any(), ovenID).
		DoAndReturn(func(context.Context, uuid.UUID) ([]*queries.BookingView, error) {
			mu.Lock()
			defer mu.Unlock()
			return current, nil
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := queries.NewBookingWatcher(store, 10*time.Millisecond)
	ch := w.Watch(ctx, ovenID)

	got := receiveWithin(t, ch, time.Second)
	if diff := cmp.Diff(first, got); diff != "" {
		t.Errorf("initial snapshot mismatch (-want +got):\n%s", diff)
	}

	// A second booking appears; the next snapshot must reflect it
	mu.Lock()
	updated := append(append([]*queries.BookingView{}, first...), &queries.BookingView{
		ID: uuid.New(), Title: "Reheat (by Sam)", UserID: uuid.New(),
	})
	current = updated
	mu.Unlock()

	got = receiveWithin(t, ch, time.Second)
	if diff := cmp.Diff(updated, got); diff != "" {
		t.Errorf("updated snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestWatcherClosesOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockBookingReadStore(ctrl)
	ovenID := uuid.New()
	store.EXPECT().FindByOvenID(gomock.Any(), ovenID).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	w := queries.NewBookingWatcher(store, 10*time.Millisecond)
	ch := w.Watch(ctx, ovenID)

	receiveWithin(t, ch, time.Second)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// One in-flight snapshot may still be buffered; the close must follow
			_, ok = <-ch
			assert.False(t, ok)
		}
	case <-time.After(time.Second):
		t.Fatal("channel was not closed after cancellation")
	}
}
