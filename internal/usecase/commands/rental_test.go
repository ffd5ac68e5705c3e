//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/config"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/shared"
	"fleetrent/tests/common/builder"
	sharedmock "fleetrent/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubTx hands the gomock repositories to the code under test; the stub unit
// of work runs the transaction function directly, without a database.
type stubTx struct {
	rentals  *sharedmock.MockRentalRepository
	vehicles *sharedmock.MockVehicleRepository
	persons  *sharedmock.MockPersonRepository
}

func (s *stubTx) Rentals() shared.RentalRepository   { return s.rentals }
func (s *stubTx) Vehicles() shared.VehicleRepository { return s.vehicles }
func (s *stubTx) Persons() shared.PersonRepository   { return s.persons }
func (s *stubTx) DB() db.DBTX                        { return nil }

type stubUoW struct {
	tx *stubTx
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *stubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type rentalFixture struct {
	ctrl  *gomock.Controller
	tx    *stubTx
	clock *clock.MockClock
	cmds  commands.RentalCommands
}

func newRentalFixture(t *testing.T, now time.Time) *rentalFixture {
	ctrl := gomock.NewController(t)
	tx := &stubTx{
		rentals:  sharedmock.NewMockRentalRepository(ctrl),
		vehicles: sharedmock.NewMockVehicleRepository(ctrl),
		persons:  sharedmock.NewMockPersonRepository(ctrl),
	}
	clk := clock.NewMockClock(now)
	cfg := config.NewTestConfig()
	return &rentalFixture{
		ctrl:  ctrl,
		tx:    tx,
		clock: clk,
		cmds:  commands.NewRentalCommands(&stubUoW{tx: tx}, clk, cfg),
	}
}

func TestRentalCommands_Book(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, 7)
	end := now.AddDate(0, 0, 9)
	customerID := uuid.New()
	employeeID := uuid.New()
	const plate = "AB-123-CD"

	t.Run("books a free vehicle", func(t *testing.T) {
		f := newRentalFixture(t, now)

		f.tx.vehicles.EXPECT().LockByPlate(ctx, nil, plate).Return(nil)
		f.tx.rentals.EXPECT().HasConflict(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, scan shared.ConflictScan) (bool, error) {
				assert.Equal(t, plate, scan.Plate)
				assert.Equal(t, 3*24*time.Hour, scan.Buffer)
				assert.False(t, scan.BlockOnCancelled)
				return false, nil
			})
		f.tx.rentals.EXPECT().Create(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, r *rental.Rental) (int64, error) {
				assert.Equal(t, customerID, r.CustomerID())
				assert.Equal(t, rental.StatusReserved, r.Status())
				return 7, nil
			})
		f.tx.vehicles.EXPECT().UpdateStatus(ctx, nil, plate, vehicle.StatusReserved, now).Return(nil)

		id, err := f.cmds.Book(ctx, plate, customerID, employeeID, start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("rejects inverted period before touching storage", func(t *testing.T) {
		f := newRentalFixture(t, now)

		_, err := f.cmds.Book(ctx, plate, customerID, employeeID, end, start)
		require.ErrorIs(t, err, commands.ErrInvalidPeriod)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		f := newRentalFixture(t, now)

		f.tx.vehicles.EXPECT().LockByPlate(ctx, nil, plate).
			Return(infra.WrapRepoErr(infra.KindNotFound, "vehicle not found", nil))

		_, err := f.cmds.Book(ctx, plate, customerID, employeeID, start, end)
		require.ErrorIs(t, err, commands.ErrVehicleNotFound)
	})

	t.Run("conflicting interval is rejected without an insert", func(t *testing.T) {
		f := newRentalFixture(t, now)

		f.tx.vehicles.EXPECT().LockByPlate(ctx, nil, plate).Return(nil)
		f.tx.rentals.EXPECT().HasConflict(ctx, nil, gomock.Any()).Return(true, nil)

		_, err := f.cmds.Book(ctx, plate, customerID, employeeID, start, end)
		require.ErrorIs(t, err, commands.ErrBookingConflict)
		assert.Contains(t, err.Error(), plate)
	})

	t.Run("unknown customer surfaces as person not found", func(t *testing.T) {
		f := newRentalFixture(t, now)

		f.tx.vehicles.EXPECT().LockByPlate(ctx, nil, plate).Return(nil)
		f.tx.rentals.EXPECT().HasConflict(ctx, nil, gomock.Any()).Return(false, nil)
		f.tx.rentals.EXPECT().Create(ctx, nil, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr(infra.KindForeignKeyViolated, "fk violated", nil))

		_, err := f.cmds.Book(ctx, plate, customerID, employeeID, start, end)
		require.ErrorIs(t, err, commands.ErrPersonNotFound)
	})

	t.Run("conflict scan failure", func(t *testing.T) {
		f := newRentalFixture(t, now)

		f.tx.vehicles.EXPECT().LockByPlate(ctx, nil, plate).Return(nil)
		f.tx.rentals.EXPECT().HasConflict(ctx, nil, gomock.Any()).
			Return(false, errors.New("connection reset"))

		_, err := f.cmds.Book(ctx, plate, customerID, employeeID, start, end)
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestRentalCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	t.Run("owner cancels and the vehicle is freed", func(t *testing.T) {
		f := newRentalFixture(t, now)
		b := builder.NewRentalBuilder()
		entity, err := b.BuildDomain()
		require.NoError(t, err)

		f.tx.rentals.EXPECT().FindByIDForUpdate(ctx, nil, b.ID).Return(entity, nil)
		f.tx.rentals.EXPECT().UpdateStatus(ctx, nil, entity).
			DoAndReturn(func(_ context.Context, _ db.DBTX, r *rental.Rental) error {
				assert.Equal(t, rental.StatusCancelled, r.Status())
				return nil
			})
		f.tx.vehicles.EXPECT().UpdateStatus(ctx, nil, b.Plate, vehicle.StatusFree, now).Return(nil)

		require.NoError(t, f.cmds.Cancel(ctx, b.ID, b.CustomerID))
	})

	t.Run("missing rental", func(t *testing.T) {
		f := newRentalFixture(t, now)

		f.tx.rentals.EXPECT().FindByIDForUpdate(ctx, nil, int64(99)).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "rental not found", nil))

		require.ErrorIs(t, f.cmds.Cancel(ctx, 99, uuid.New()), commands.ErrRentalNotFound)
	})

	t.Run("non-owner", func(t *testing.T) {
		f := newRentalFixture(t, now)
		b := builder.NewRentalBuilder()
		entity, err := b.BuildDomain()
		require.NoError(t, err)

		f.tx.rentals.EXPECT().FindByIDForUpdate(ctx, nil, b.ID).Return(entity, nil)

		require.ErrorIs(t, f.cmds.Cancel(ctx, b.ID, uuid.New()), commands.ErrNotRentalOwner)
	})

	t.Run("start already reached per the stored clock", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		f := newRentalFixture(t, b.StartTime.Add(time.Minute))
		entity, err := b.BuildDomain()
		require.NoError(t, err)

		f.tx.rentals.EXPECT().FindByIDForUpdate(ctx, nil, b.ID).Return(entity, nil)

		require.ErrorIs(t, f.cmds.Cancel(ctx, b.ID, b.CustomerID), commands.ErrRentalAlreadyStarted)
	})

	t.Run("active rental is no longer cancellable", func(t *testing.T) {
		f := newRentalFixture(t, now)
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.Status = rental.StatusActive })
		entity, err := b.BuildDomain()
		require.NoError(t, err)

		f.tx.rentals.EXPECT().FindByIDForUpdate(ctx, nil, b.ID).Return(entity, nil)

		require.ErrorIs(t, f.cmds.Cancel(ctx, b.ID, b.CustomerID), commands.ErrRentalNotCancellable)
	})
}
