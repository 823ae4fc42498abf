//go:build unit

package oven_test

import (
	"strings"
	"testing"
	"time"

	"ovenbook/internal/domain/oven"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOven(t *testing.T) {
	t.Run("new ovens start active", func(t *testing.T) {
		o, err := oven.NewOven("Kiln A")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, "Kiln A", o.Name())
		assert.Equal(t, oven.StatusActive, o.Status())
		assert.True(t, o.IsBookable())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		o, err := oven.NewOven("  Kiln A  ")
		require.NoError(t, err)
		assert.Equal(t, "Kiln A", o.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := oven.NewOven("   ")
		assert.ErrorIs(t, err, oven.ErrEmptyOvenName)
	})

	t.Run("name over 255 chars rejected", func(t *testing.T) {
		_, err := oven.NewOven(strings.Repeat("x", 256))
		assert.ErrorIs(t, err, oven.ErrOvenNameTooLong)
	})
}

func TestStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []string{"active", "maintenance"} {
			status, err := oven.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := oven.NewStatus("broken")
		assert.ErrorIs(t, err, oven.ErrInvalidStatus)
	})
}

func TestIsBookable(t *testing.T) {
	now := time.Now()
	active := oven.ReconstructOven(uuid.New(), "Kiln A", oven.StatusActive, now, now)
	maintenance := oven.ReconstructOven(uuid.New(), "Kiln B", oven.StatusMaintenance, now, now)

	assert.True(t, active.IsBookable())
	assert.False(t, maintenance.IsBookable())
}
