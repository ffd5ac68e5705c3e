package shared

import (
	"context"
	"time"

	"fleetrent/internal/domain/person"
	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/vehicle"
	"fleetrent/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-write transaction with bounded retry on lock aborts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: snapshot transaction for multi-row consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single statements using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Rentals() RentalRepository
	Vehicles() VehicleRepository
	Persons() PersonRepository
	DB() db.DBTX
}

// ConflictScan parameterizes the buffered overlap check run inside the booking
// transaction.
type ConflictScan struct {
	Plate            string
	Period           rental.Period
	Buffer           time.Duration
	BlockOnCancelled bool
}

type RentalRepository interface {
	Create(ctx context.Context, db db.DBTX, r *rental.Rental) (int64, error)
	// FindByIDForUpdate loads the rental row under a row lock, serializing
	// concurrent cancellations of the same rental.
	FindByIDForUpdate(ctx context.Context, db db.DBTX, id int64) (*rental.Rental, error)
	UpdateStatus(ctx context.Context, db db.DBTX, r *rental.Rental) error
	// HasConflict reports whether any rental row for the plate overlaps the
	// buffered candidate interval.
	HasConflict(ctx context.Context, db db.DBTX, scan ConflictScan) (bool, error)
	// ActivateDue and FinishDue advance every rental whose start/end has been
	// reached, returning the plates whose display status should follow.
	ActivateDue(ctx context.Context, db db.DBTX, now time.Time) ([]string, error)
	FinishDue(ctx context.Context, db db.DBTX, now time.Time) ([]string, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, db db.DBTX, v *vehicle.Vehicle) error
	// LockByPlate takes the per-vehicle write lock that serializes booking
	// transactions for the same plate.
	LockByPlate(ctx context.Context, db db.DBTX, plate string) error
	UpdateStatus(ctx context.Context, db db.DBTX, plate string, status vehicle.Status, now time.Time) error
}

type PersonRepository interface {
	Create(ctx context.Context, db db.DBTX, p *person.Person) (uuid.UUID, error)
}
