//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domvehicle "fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/usecase/commands"
	sharedmock "fleetrent/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVehicleCommands(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	newFixture := func(t *testing.T) (*stubTx, commands.VehicleCommands) {
		ctrl := gomock.NewController(t)
		tx := &stubTx{
			rentals:  sharedmock.NewMockRentalRepository(ctrl),
			vehicles: sharedmock.NewMockVehicleRepository(ctrl),
			persons:  sharedmock.NewMockPersonRepository(ctrl),
		}
		return tx, commands.NewVehicleCommands(&stubUoW{tx: tx}, clock.NewMockClock(now))
	}

	t.Run("register normalizes the plate", func(t *testing.T) {
		tx, cmds := newFixture(t)

		tx.vehicles.EXPECT().Create(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, v *domvehicle.Vehicle) error {
				assert.Equal(t, "AB-123-CD", v.Plate())
				assert.Equal(t, domvehicle.StatusFree, v.Status())
				return nil
			})

		plate, err := cmds.Register(ctx, "ab-123-cd", "Toyota", "Corolla", "silver")
		require.NoError(t, err)
		assert.Equal(t, "AB-123-CD", plate)
	})

	t.Run("register rejects a bad plate before storage", func(t *testing.T) {
		_, cmds := newFixture(t)

		_, err := cmds.Register(ctx, "??", "Toyota", "Corolla", "silver")
		require.ErrorIs(t, err, commands.ErrVehicleValidation)
	})

	t.Run("register maps duplicate plates", func(t *testing.T) {
		tx, cmds := newFixture(t)

		tx.vehicles.EXPECT().Create(ctx, nil, gomock.Any()).
			Return(infra.WrapRepoErr(infra.KindDuplicateKey, "duplicate key", nil))

		_, err := cmds.Register(ctx, "AB-123-CD", "Toyota", "Corolla", "silver")
		require.ErrorIs(t, err, commands.ErrDuplicatePlate)
	})

	t.Run("set status locks then updates", func(t *testing.T) {
		tx, cmds := newFixture(t)

		gomock.InOrder(
			tx.vehicles.EXPECT().LockByPlate(ctx, nil, "AB-123-CD").Return(nil),
			tx.vehicles.EXPECT().UpdateStatus(ctx, nil, "AB-123-CD", domvehicle.StatusMaintenance, now).Return(nil),
		)

		require.NoError(t, cmds.SetStatus(ctx, "AB-123-CD", "maintenance"))
	})

	t.Run("set status rejects unknown state without storage access", func(t *testing.T) {
		_, cmds := newFixture(t)

		require.ErrorIs(t, cmds.SetStatus(ctx, "AB-123-CD", "scrapped"), commands.ErrInvalidVehicleStatus)
	})

	t.Run("set status on unknown vehicle", func(t *testing.T) {
		tx, cmds := newFixture(t)

		tx.vehicles.EXPECT().LockByPlate(ctx, nil, "ZZ-999-ZZ").
			Return(infra.WrapRepoErr(infra.KindNotFound, "vehicle not found", nil))

		require.ErrorIs(t, cmds.SetStatus(ctx, "ZZ-999-ZZ", "free"), commands.ErrVehicleNotFound)
	})
}
