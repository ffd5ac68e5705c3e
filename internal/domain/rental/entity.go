package rental

import (
	"time"

	"fleetrent/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOwner       = errs.New("actor lacks permission to cancel this rental")
	ErrAlreadyStarted = errs.New("rental has already started, cancellation no longer permitted")
	ErrNotCancellable = errs.New("rental is not in a cancellable state")
	ErrNotActivatable = errs.New("rental cannot be activated from its current state")
	ErrNotFinishable  = errs.New("rental cannot be finished from its current state")
)

// Rental is a booked interval on one vehicle, owned by one customer and
// handled by one employee. The id is assigned by storage on insert.
type Rental struct {
	id         int64
	plate      string
	customerID uuid.UUID
	employeeID uuid.UUID
	period     Period
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewRental builds a rental in state reserved, ready for the booking
// transaction to persist. The caller guarantees plate, customer and employee
// reference existing rows.
func NewRental(plate string, customerID, employeeID uuid.UUID, period Period, now time.Time) *Rental {
	return &Rental{
		plate:      plate,
		customerID: customerID,
		employeeID: employeeID,
		period:     period,
		status:     StatusReserved,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructRental(
	id int64,
	plate string,
	customerID, employeeID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:         id,
		plate:      plate,
		customerID: customerID,
		employeeID: employeeID,
		period:     period,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// CancelBy applies the cancellation gate: only the owning customer may cancel,
// and only while the rental is still reserved and its start has not been
// reached. The stored status is authoritative, the clock guard covers the
// window where the progression job has not caught up yet.
func (r *Rental) CancelBy(actor uuid.UUID, now time.Time) error {
	if actor != r.customerID {
		return ErrNotOwner
	}
	if r.status != StatusReserved {
		return ErrNotCancellable
	}
	if !now.Before(r.period.Start()) {
		return ErrAlreadyStarted
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// Activate moves a reserved rental whose start has been reached to active.
func (r *Rental) Activate(now time.Time) error {
	if !r.status.CanTransitionTo(StatusActive) {
		return ErrNotActivatable
	}
	r.status = StatusActive
	r.updatedAt = now
	return nil
}

// Finish moves an active rental whose end has been reached to finished.
func (r *Rental) Finish(now time.Time) error {
	if !r.status.CanTransitionTo(StatusFinished) {
		return ErrNotFinishable
	}
	r.status = StatusFinished
	r.updatedAt = now
	return nil
}

func (r *Rental) IsReserved() bool {
	return r.status == StatusReserved
}

func (r *Rental) ID() int64             { return r.id }
func (r *Rental) Plate() string         { return r.plate }
func (r *Rental) CustomerID() uuid.UUID { return r.customerID }
func (r *Rental) EmployeeID() uuid.UUID { return r.employeeID }
func (r *Rental) Period() Period        { return r.period }
func (r *Rental) Status() Status        { return r.status }
func (r *Rental) CreatedAt() time.Time  { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time  { return r.updatedAt }
