package readstore

import (
	"context"
	"errors"
	"time"

	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(dbtx db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: dbtx}
}

// FreePlates lists every vehicle with no rental row inside the buffered
// window. The vehicle display status column is not consulted: reservation
// rows are the only source of truth for availability. Ordered by plate so the
// result is stable for identical input state.
func (r *RentalReadStore) FreePlates(
	ctx context.Context,
	dbtx db.DBTX,
	start, end time.Time,
	buffer time.Duration,
	blockOnCancelled bool,
) ([]string, error) {
	const query = `
		SELECT v.plate
		FROM vehicles v
		WHERE NOT EXISTS (
			SELECT 1
			FROM rentals r
			WHERE r.vehicle_plate = v.plate
			  AND r.start_time < $2
			  AND r.end_time > $1
			  AND (r.status <> 'cancelled' OR $3)
		)
		ORDER BY v.plate`

	rows, err := dbtx.Query(ctx, query, start.Add(-buffer), end.Add(buffer), blockOnCancelled)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query availability", err)
	}
	defer rows.Close()

	var plates []string
	for rows.Next() {
		var plate string
		if err := rows.Scan(&plate); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan availability row", err)
		}
		plates = append(plates, plate)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate availability rows", err)
	}

	return plates, nil
}

func (r *RentalReadStore) FindByID(ctx context.Context, id int64) (*queries.RentalView, error) {
	const query = `
		SELECT id, vehicle_plate, customer_id, employee_id, start_time, end_time, status, created_at, updated_at
		FROM rentals
		WHERE id = $1`

	var view queries.RentalView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Plate, &view.CustomerID, &view.EmployeeID,
		&view.StartTime, &view.EndTime, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "rental not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find rental by ID", err)
	}

	return &view, nil
}

func (r *RentalReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.RentalListItem, error) {
	const query = `
		SELECT id, vehicle_plate, start_time, end_time, status
		FROM rentals
		WHERE customer_id = $1
		ORDER BY start_time DESC, id DESC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find rentals by customer", err)
	}
	defer rows.Close()

	var items []*queries.RentalListItem
	for rows.Next() {
		var item queries.RentalListItem
		if err := rows.Scan(&item.ID, &item.Plate, &item.StartTime, &item.EndTime, &item.Status); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan rental row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate rental rows", err)
	}

	return items, nil
}
