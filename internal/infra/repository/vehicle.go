package repository

import (
	"context"
	"errors"
	"time"

	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type VehicleRepository struct{}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{}
}

func (r *VehicleRepository) Create(ctx context.Context, dbtx db.DBTX, entity *vehicle.Vehicle) error {
	const query = `
		INSERT INTO vehicles (plate, brand, model, color, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := dbtx.Exec(ctx, query,
		entity.Plate(),
		entity.Brand(),
		entity.Model(),
		entity.Color(),
		entity.Status().String(),
		entity.CreatedAt(),
		entity.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to create vehicle", err)
	}

	return nil
}

// LockByPlate takes a row lock on the vehicle, serializing every booking
// transaction for this plate until commit. Bookings on other plates are
// unaffected.
func (r *VehicleRepository) LockByPlate(ctx context.Context, dbtx db.DBTX, plate string) error {
	const query = `SELECT plate FROM vehicles WHERE plate = $1 FOR UPDATE`

	var locked string
	err := dbtx.QueryRow(ctx, query, plate).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr(infra.KindNotFound, "vehicle not found", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to lock vehicle", err)
	}

	return nil
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, plate string, status vehicle.Status, now time.Time) error {
	const query = `UPDATE vehicles SET status = $2, updated_at = $3 WHERE plate = $1`

	tag, err := dbtx.Exec(ctx, query, plate, status.String(), now)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update vehicle status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "vehicle not found", nil)
	}

	return nil
}
