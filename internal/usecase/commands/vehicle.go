package commands

import (
	"context"

	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/usecase/shared"
)

var (
	ErrDuplicatePlate       = errs.New("vehicle with this plate already exists")
	ErrVehicleValidation    = errs.New("vehicle validation failed")
	ErrInvalidVehicleStatus = errs.New("invalid vehicle status")
)

type VehicleCommands interface {
	Register(ctx context.Context, plate, brand, model, color string) (string, error)
	// SetStatus updates the display state shown on the fleet board. It has no
	// effect on conflict detection.
	SetStatus(ctx context.Context, plate string, status string) error
}

type vehicleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVehicleCommands(uow shared.UnitOfWork, clk clock.Clock) VehicleCommands {
	return &vehicleCommandsImpl{uow: uow, clock: clk}
}

func (c *vehicleCommandsImpl) Register(ctx context.Context, plate, brand, model, color string) (string, error) {
	entity, err := vehicle.NewVehicle(plate, brand, model, color, c.clock.Now())
	if err != nil {
		return "", errs.Mark(err, ErrVehicleValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Vehicles().Create(ctx, tx.DB(), entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrDuplicatePlate
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return entity.Plate(), nil
}

func (c *vehicleCommandsImpl) SetStatus(ctx context.Context, plate string, status string) error {
	next := vehicle.Status(status)
	if !next.IsValid() {
		return ErrInvalidVehicleStatus
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vehicles().LockByPlate(ctx, tx.DB(), plate); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Vehicles().UpdateStatus(ctx, tx.DB(), plate, next, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
