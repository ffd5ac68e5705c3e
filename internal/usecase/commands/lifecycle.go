package commands

import (
	"context"
	"log/slog"

	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/usecase/shared"
)

// LifecycleCommands advances rentals along the clock: reserved rentals whose
// start has passed become active, active rentals whose end has passed become
// finished. The cancellation gate does not depend on this job having run.
type LifecycleCommands interface {
	Progress(ctx context.Context) error
}

type lifecycleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLifecycleCommands(uow shared.UnitOfWork, clk clock.Clock) LifecycleCommands {
	return &lifecycleCommandsImpl{uow: uow, clock: clk}
}

func (c *lifecycleCommandsImpl) Progress(ctx context.Context) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		activated, err := tx.Rentals().ActivateDue(ctx, tx.DB(), now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, plate := range activated {
			if err := tx.Vehicles().UpdateStatus(ctx, tx.DB(), plate, vehicle.StatusOccupied, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		finished, err := tx.Rentals().FinishDue(ctx, tx.DB(), now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, plate := range finished {
			if err := tx.Vehicles().UpdateStatus(ctx, tx.DB(), plate, vehicle.StatusFree, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if len(activated) > 0 || len(finished) > 0 {
			slog.Info("rental lifecycle progressed",
				"activated", len(activated),
				"finished", len(finished))
		}
		return nil
	})
}
