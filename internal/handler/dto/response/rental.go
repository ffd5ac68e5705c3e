package response

import (
	"time"

	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RentalResponse struct {
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

type RentalListResponse struct {
	ID        int64     `json:"id"`
	Plate     string    `json:"plate"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type AvailabilityResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Plates    []string  `json:"plates"`
}

func FromRentalView(rm *queries.RentalView) *RentalResponse {
	var resp RentalResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRentalListItem(rm *queries.RentalListItem) *RentalListResponse {
	var resp RentalListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func NewAvailabilityResponse(start, end time.Time, plates []string) *AvailabilityResponse {
	if plates == nil {
		plates = []string{}
	}
	return &AvailabilityResponse{StartTime: start, EndTime: end, Plates: plates}
}
