//go:build unit

package rental_test

import (
	"testing"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	period := mustPeriod(t, "2026-01-10T10:00:00Z", "2026-01-12T10:00:00Z")
	customerID := uuid.New()
	employeeID := uuid.New()

	r := rental.NewRental("AB-123-CD", customerID, employeeID, period, now)

	assert.Equal(t, int64(0), r.ID())
	assert.Equal(t, "AB-123-CD", r.Plate())
	assert.Equal(t, customerID, r.CustomerID())
	assert.Equal(t, employeeID, r.EmployeeID())
	assert.Equal(t, rental.StatusReserved, r.Status())
	assert.True(t, r.IsReserved())
	assert.Equal(t, now, r.CreatedAt())
	assert.Equal(t, now, r.UpdatedAt())
}

func TestRentalCancelBy(t *testing.T) {
	beforeStart := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	t.Run("owner cancels before start", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.CancelBy(b.CustomerID, beforeStart))
		assert.Equal(t, rental.StatusCancelled, r.Status())
		assert.Equal(t, beforeStart, r.UpdatedAt())
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.CancelBy(uuid.New(), beforeStart)
		require.ErrorIs(t, err, rental.ErrNotOwner)
		assert.Equal(t, rental.StatusReserved, r.Status())
	})

	t.Run("employee handling the rental is still not the owner", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, r.CancelBy(b.EmployeeID, beforeStart), rental.ErrNotOwner)
	})

	t.Run("cancellation at start instant is too late", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.CancelBy(b.CustomerID, r.Period().Start())
		require.ErrorIs(t, err, rental.ErrAlreadyStarted)
		assert.Equal(t, rental.StatusReserved, r.Status())
	})

	t.Run("cancellation after start is too late", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, r.CancelBy(b.CustomerID, r.Period().Start().Add(time.Hour)), rental.ErrAlreadyStarted)
	})

	t.Run("non-reserved states are not cancellable", func(t *testing.T) {
		for _, status := range []rental.Status{rental.StatusActive, rental.StatusFinished, rental.StatusCancelled} {
			b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.Status = status })
			r, err := b.BuildDomain()
			require.NoError(t, err)

			require.ErrorIs(t, r.CancelBy(b.CustomerID, beforeStart), rental.ErrNotCancellable, "status %s", status)
			assert.Equal(t, status, r.Status())
		}
	})

	t.Run("ownership is checked before state", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.Status = rental.StatusActive })
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, r.CancelBy(uuid.New(), beforeStart), rental.ErrNotOwner)
	})
}

func TestRentalLifecycleTransitions(t *testing.T) {
	now := time.Date(2026, 1, 8, 10, 0, 0, 0, time.UTC)

	t.Run("reserved to active to finished", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Activate(now))
		assert.Equal(t, rental.StatusActive, r.Status())

		require.NoError(t, r.Finish(now.Add(48*time.Hour)))
		assert.Equal(t, rental.StatusFinished, r.Status())
	})

	t.Run("cancelled rental cannot be activated", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.Status = rental.StatusCancelled })
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, r.Activate(now), rental.ErrNotActivatable)
	})

	t.Run("reserved rental cannot be finished directly", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, r.Finish(now), rental.ErrNotFinishable)
	})

	t.Run("finished and cancelled are terminal", func(t *testing.T) {
		for _, status := range []rental.Status{rental.StatusFinished, rental.StatusCancelled} {
			for _, next := range []rental.Status{rental.StatusReserved, rental.StatusActive, rental.StatusFinished, rental.StatusCancelled} {
				assert.False(t, status.CanTransitionTo(next), "%s -> %s", status, next)
			}
		}
	})
}
