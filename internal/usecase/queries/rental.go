package queries

import (
	"context"
	"time"

	"fleetrent/internal/infra/db"
	"fleetrent/internal/pkg/config"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RentalView struct {
	ID         int64     `json:"id"`
	Plate      string    `json:"plate"`
	CustomerID uuid.UUID `json:"customer_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RentalListItem struct {
	ID        int64     `json:"id"`
	Plate     string    `json:"plate"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type RentalQueries interface {
	// Availability returns the plates with no rental row conflicting with the
	// requested interval under the buffer policy. Vehicle display status is
	// deliberately ignored: only rental rows are the source of truth.
	Availability(ctx context.Context, start, end time.Time) ([]string, error)
	GetByID(ctx context.Context, id int64) (*RentalView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RentalListItem, error)
}

type RentalReadStore interface {
	FreePlates(ctx context.Context, dbtx db.DBTX, start, end time.Time, buffer time.Duration, blockOnCancelled bool) ([]string, error)
	FindByID(ctx context.Context, id int64) (*RentalView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*RentalListItem, error)
}

type rentalQueriesImpl struct {
	uow     shared.UnitOfWork
	store   RentalReadStore
	booking config.BookingConfig
}

func NewRentalQueries(uow shared.UnitOfWork, store RentalReadStore, cfg config.Config) RentalQueries {
	return &rentalQueriesImpl{
		uow:     uow,
		store:   store,
		booking: cfg.Booking,
	}
}

func (q *rentalQueriesImpl) Availability(ctx context.Context, start, end time.Time) ([]string, error) {
	var plates []string
	// Read-only transaction so the scan reflects one consistent snapshot.
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var scanErr error
		plates, scanErr = q.store.FreePlates(ctx, dbtx, start, end, q.booking.Buffer(), q.booking.BlockOnCancelled)
		return scanErr
	})
	if err != nil {
		return nil, err
	}
	return plates, nil
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id int64) (*RentalView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *rentalQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RentalListItem, error) {
	return q.store.FindByCustomerID(ctx, customerID)
}
