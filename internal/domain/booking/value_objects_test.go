//go:build unit

package booking_test

import (
	"testing"
	"time"

	"ovenbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func window(t *testing.T, startOffset, endOffset time.Duration) booking.TimeWindow {
	t.Helper()
	w, err := booking.NewTimeWindow(base.Add(startOffset), base.Add(endOffset))
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		w, err := booking.NewTimeWindow(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, w.Start())
		assert.Equal(t, base.Add(time.Hour), w.End())
		assert.Equal(t, time.Hour, w.Duration())
	})

	t.Run("start equal to end is rejected", func(t *testing.T) {
		_, err := booking.NewTimeWindow(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeWindow)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := booking.NewTimeWindow(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeWindow)
	})
}

func TestTimeWindowOverlaps(t *testing.T) {
	// Reference window [10:00, 11:00)
	ref := window(t, 0, time.Hour)

	cases := []struct {
		name    string
		other   booking.TimeWindow
		overlap bool
	}{
		{name: "identical window", other: window(t, 0, time.Hour), overlap: true},
		{name: "partial overlap at end", other: window(t, 30*time.Minute, 90*time.Minute), overlap: true},
		{name: "partial overlap at start", other: window(t, -30*time.Minute, 30*time.Minute), overlap: true},
		{name: "fully contained", other: window(t, 15*time.Minute, 45*time.Minute), overlap: true},
		{name: "fully containing", other: window(t, -time.Hour, 2*time.Hour), overlap: true},
		{name: "touching at end is not a conflict", other: window(t, time.Hour, 2*time.Hour), overlap: false},
		{name: "touching at start is not a conflict", other: window(t, -time.Hour, 0), overlap: false},
		{name: "disjoint after", other: window(t, 2*time.Hour, 3*time.Hour), overlap: false},
		{name: "disjoint before", other: window(t, -3*time.Hour, -2*time.Hour), overlap: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, ref.Overlaps(tc.other))
			// Intersection is symmetric
			assert.Equal(t, tc.overlap, tc.other.Overlaps(ref))
		})
	}
}

func TestValidateMaxDuration(t *testing.T) {
	t.Run("within the limit", func(t *testing.T) {
		w := window(t, 0, 168*time.Hour)
		assert.NoError(t, w.ValidateMaxDuration(168*time.Hour))
	})

	t.Run("over the limit", func(t *testing.T) {
		w := window(t, 0, 168*time.Hour+time.Minute)
		assert.ErrorIs(t, w.ValidateMaxDuration(168*time.Hour), booking.ErrDurationTooLong)
	})

	t.Run("zero limit disables the check", func(t *testing.T) {
		w := window(t, 0, 10000*time.Hour)
		assert.NoError(t, w.ValidateMaxDuration(0))
	})
}
