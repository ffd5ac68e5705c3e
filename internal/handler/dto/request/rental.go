package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	Plate      string    `json:"plate" binding:"required"`
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
}
