package readstore

import (
	"context"
	"errors"

	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

func (r *VehicleReadStore) FindByPlate(ctx context.Context, plate string) (*queries.VehicleView, error) {
	const query = `
		SELECT plate, brand, model, color, status, created_at, updated_at
		FROM vehicles
		WHERE plate = $1`

	var view queries.VehicleView
	err := r.db.QueryRow(ctx, query, plate).Scan(
		&view.Plate, &view.Brand, &view.Model, &view.Color,
		&view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "vehicle not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find vehicle by plate", err)
	}

	return &view, nil
}

func (r *VehicleReadStore) FindAll(ctx context.Context) ([]*queries.VehicleView, error) {
	const query = `
		SELECT plate, brand, model, color, status, created_at, updated_at
		FROM vehicles
		ORDER BY plate`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list vehicles", err)
	}
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		var view queries.VehicleView
		if err := rows.Scan(
			&view.Plate, &view.Brand, &view.Model, &view.Color,
			&view.Status, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan vehicle row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate vehicle rows", err)
	}

	return views, nil
}
