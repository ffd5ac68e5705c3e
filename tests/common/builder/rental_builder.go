//go:build unit || integration

package builder

import (
	"time"

	domrental "fleetrent/internal/domain/rental"
	reqdto "fleetrent/internal/handler/dto/request"
	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	ID         int64
	Plate      string
	CustomerID uuid.UUID
	EmployeeID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Status     domrental.Status
	CreatedAt  time.Time
}

func NewRentalBuilder() *RentalBuilder {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		ID:         1,
		Plate:      "AB-123-CD",
		CustomerID: uuid.New(),
		EmployeeID: uuid.New(),
		StartTime:  now.AddDate(0, 0, 7),
		EndTime:    now.AddDate(0, 0, 9),
		Status:     domrental.StatusReserved,
		CreatedAt:  now,
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

func (r *RentalBuilder) BuildDomain() (*domrental.Rental, error) {
	period, err := domrental.NewPeriod(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return domrental.ReconstructRental(
		r.ID, r.Plate, r.CustomerID, r.EmployeeID, period, r.Status, r.CreatedAt, r.CreatedAt,
	), nil
}

func (r *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		Plate:      r.Plate,
		EmployeeID: r.EmployeeID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

func (r *RentalBuilder) BuildView() *queries.RentalView {
	return &queries.RentalView{
		ID:         r.ID,
		Plate:      r.Plate,
		CustomerID: r.CustomerID,
		EmployeeID: r.EmployeeID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.CreatedAt,
	}
}

func (r *RentalBuilder) BuildListItem() *queries.RentalListItem {
	return &queries.RentalListItem{
		ID:        r.ID,
		Plate:     r.Plate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    string(r.Status),
	}
}
