//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/usecase/commands"
	sharedmock "fleetrent/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLifecycleCommands_Progress(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	newFixture := func(t *testing.T) (*stubTx, commands.LifecycleCommands) {
		ctrl := gomock.NewController(t)
		tx := &stubTx{
			rentals:  sharedmock.NewMockRentalRepository(ctrl),
			vehicles: sharedmock.NewMockVehicleRepository(ctrl),
			persons:  sharedmock.NewMockPersonRepository(ctrl),
		}
		return tx, commands.NewLifecycleCommands(&stubUoW{tx: tx}, clock.NewMockClock(now))
	}

	t.Run("activates and finishes due rentals", func(t *testing.T) {
		tx, cmds := newFixture(t)

		tx.rentals.EXPECT().ActivateDue(ctx, nil, now).Return([]string{"AA-111-AA", "BB-222-BB"}, nil)
		tx.vehicles.EXPECT().UpdateStatus(ctx, nil, "AA-111-AA", vehicle.StatusOccupied, now).Return(nil)
		tx.vehicles.EXPECT().UpdateStatus(ctx, nil, "BB-222-BB", vehicle.StatusOccupied, now).Return(nil)
		tx.rentals.EXPECT().FinishDue(ctx, nil, now).Return([]string{"CC-333-CC"}, nil)
		tx.vehicles.EXPECT().UpdateStatus(ctx, nil, "CC-333-CC", vehicle.StatusFree, now).Return(nil)

		require.NoError(t, cmds.Progress(ctx))
	})

	t.Run("nothing due", func(t *testing.T) {
		tx, cmds := newFixture(t)

		tx.rentals.EXPECT().ActivateDue(ctx, nil, now).Return(nil, nil)
		tx.rentals.EXPECT().FinishDue(ctx, nil, now).Return(nil, nil)

		require.NoError(t, cmds.Progress(ctx))
	})

	t.Run("activation scan failure aborts the pass", func(t *testing.T) {
		tx, cmds := newFixture(t)

		tx.rentals.EXPECT().ActivateDue(ctx, nil, now).Return(nil, errors.New("connection reset"))

		require.ErrorIs(t, cmds.Progress(ctx), commands.ErrDatabaseOperationFailed)
	})
}
