package repository

import (
	"context"
	"errors"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RentalRepository struct{}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{}
}

func (r *RentalRepository) Create(ctx context.Context, dbtx db.DBTX, entity *rental.Rental) (int64, error) {
	const query = `
		INSERT INTO rentals (vehicle_plate, customer_id, employee_id, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		entity.Plate(),
		entity.CustomerID(),
		entity.EmployeeID(),
		entity.Period().Start(),
		entity.Period().End(),
		entity.Status().String(),
		entity.CreatedAt(),
		entity.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create rental", err)
	}

	return id, nil
}

func (r *RentalRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id int64) (*rental.Rental, error) {
	const query = `
		SELECT id, vehicle_plate, customer_id, employee_id, start_time, end_time, status, created_at, updated_at
		FROM rentals
		WHERE id = $1
		FOR UPDATE`

	var (
		rentalID               int64
		plate                  string
		customerID, employeeID uuid.UUID
		startTime, endTime     time.Time
		status                 string
		createdAt, updatedAt   time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&rentalID, &plate, &customerID, &employeeID,
		&startTime, &endTime, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "rental not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load rental for update", err)
	}

	period, err := rental.NewPeriod(startTime, endTime)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored rental period is invalid", err)
	}

	return rental.ReconstructRental(
		rentalID, plate, customerID, employeeID,
		period, rental.Status(status), createdAt, updatedAt,
	), nil
}

func (r *RentalRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, entity *rental.Rental) error {
	const query = `UPDATE rentals SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, entity.ID(), entity.Status().String(), entity.UpdatedAt())
	if err != nil {
		return wrapWriteErr("failed to update rental status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "rental not found", nil)
	}

	return nil
}

// HasConflict evaluates the buffered overlap rule in SQL: an existing rental
// occupies [start_time - buffer, end_time + buffer), so the candidate
// conflicts when start_time < candidateEnd + buffer and
// end_time > candidateStart - buffer. A gap of exactly the buffer passes.
func (r *RentalRepository) HasConflict(ctx context.Context, dbtx db.DBTX, scan shared.ConflictScan) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM rentals
			WHERE vehicle_plate = $1
			  AND start_time < $2
			  AND end_time > $3
			  AND (status <> 'cancelled' OR $4)
		)`

	candEndPlusBuffer := scan.Period.End().Add(scan.Buffer)
	candStartMinusBuffer := scan.Period.Start().Add(-scan.Buffer)

	var conflict bool
	err := dbtx.QueryRow(ctx, query,
		scan.Plate, candEndPlusBuffer, candStartMinusBuffer, scan.BlockOnCancelled,
	).Scan(&conflict)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan for rental conflicts", err)
	}

	return conflict, nil
}

func (r *RentalRepository) ActivateDue(ctx context.Context, dbtx db.DBTX, now time.Time) ([]string, error) {
	const query = `
		UPDATE rentals
		SET status = 'active', updated_at = $1
		WHERE status = 'reserved' AND start_time <= $1
		RETURNING vehicle_plate`

	return collectPlates(ctx, dbtx, query, now, "failed to activate due rentals")
}

func (r *RentalRepository) FinishDue(ctx context.Context, dbtx db.DBTX, now time.Time) ([]string, error) {
	const query = `
		UPDATE rentals
		SET status = 'finished', updated_at = $1
		WHERE status = 'active' AND end_time <= $1
		RETURNING vehicle_plate`

	return collectPlates(ctx, dbtx, query, now, "failed to finish due rentals")
}

func collectPlates(ctx context.Context, dbtx db.DBTX, query string, now time.Time, errMsg string) ([]string, error) {
	rows, err := dbtx.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, errMsg, err)
	}
	defer rows.Close()

	var plates []string
	for rows.Next() {
		var plate string
		if err := rows.Scan(&plate); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, errMsg, err)
		}
		plates = append(plates, plate)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, errMsg, err)
	}

	return plates, nil
}
