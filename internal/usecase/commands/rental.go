package commands

import (
	"context"
	"errors"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/config"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound         = errs.New("vehicle not found")
	ErrRentalNotFound          = errs.New("rental not found")
	ErrPersonNotFound          = errs.New("person not found")
	ErrInvalidPeriod           = errs.New("invalid rental period")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrNotRentalOwner          = errs.New("actor lacks permission to cancel this rental")
	ErrRentalAlreadyStarted    = errs.New("rental has already started")
	ErrRentalNotCancellable    = errs.New("rental is no longer cancellable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type RentalCommands interface {
	// Book runs the atomic booking protocol: conflict check and insert are one
	// transaction serialized per vehicle, so at most one of any set of
	// concurrent conflicting attempts commits.
	Book(ctx context.Context, plate string, customerID, employeeID uuid.UUID, start, end time.Time) (int64, error)
	// Cancel applies the ownership and timing gate, then cancels the rental
	// and frees the vehicle's display status in the same transaction.
	Cancel(ctx context.Context, rentalID int64, actorID uuid.UUID) error
}

type rentalCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	booking config.BookingConfig
}

func NewRentalCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) RentalCommands {
	return &rentalCommandsImpl{
		uow:     uow,
		clock:   clk,
		booking: cfg.Booking,
	}
}

func (c *rentalCommandsImpl) Book(
	ctx context.Context,
	plate string,
	customerID, employeeID uuid.UUID,
	start, end time.Time,
) (int64, error) {
	period, err := rental.NewPeriod(start, end)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidPeriod)
	}

	var rentalID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Per-vehicle lock: bookings for the same plate serialize here,
		// bookings for different plates proceed independently.
		if lockErr := tx.Vehicles().LockByPlate(ctx, tx.DB(), plate); lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		conflict, scanErr := tx.Rentals().HasConflict(ctx, tx.DB(), shared.ConflictScan{
			Plate:            plate,
			Period:           period,
			Buffer:           c.booking.Buffer(),
			BlockOnCancelled: c.booking.BlockOnCancelled,
		})
		if scanErr != nil {
			return errs.Mark(scanErr, ErrDatabaseOperationFailed)
		}
		if conflict {
			return errs.Mark(
				errs.Newf("vehicle %s is not available for %s (buffer %s)", plate, period, c.booking.Buffer()),
				ErrBookingConflict,
			)
		}

		now := c.clock.Now()
		entity := rental.NewRental(plate, customerID, employeeID, period, now)

		id, createErr := tx.Rentals().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return ErrPersonNotFound
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		rentalID = id

		// Display status only; conflict detection never reads it.
		if statusErr := tx.Vehicles().UpdateStatus(ctx, tx.DB(), plate, vehicle.StatusReserved, now); statusErr != nil {
			return errs.Mark(statusErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return rentalID, nil
}

func (c *rentalCommandsImpl) Cancel(ctx context.Context, rentalID int64, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Rentals().FindByIDForUpdate(ctx, tx.DB(), rentalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRentalNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := c.clock.Now()
		if gateErr := entity.CancelBy(actorID, now); gateErr != nil {
			switch {
			case errors.Is(gateErr, rental.ErrNotOwner):
				return errs.Mark(gateErr, ErrNotRentalOwner)
			case errors.Is(gateErr, rental.ErrAlreadyStarted):
				return errs.Mark(gateErr, ErrRentalAlreadyStarted)
			default:
				return errs.Mark(
					errs.Newf("rental %d is %s", rentalID, entity.Status()),
					ErrRentalNotCancellable,
				)
			}
		}

		if err := tx.Rentals().UpdateStatus(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Same transaction as the rental write: the vehicle never stays
		// blocked by a cancelled rental.
		if err := tx.Vehicles().UpdateStatus(ctx, tx.DB(), entity.Plate(), vehicle.StatusFree, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
