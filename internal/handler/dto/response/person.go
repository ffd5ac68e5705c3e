package response

import (
	"time"

	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PersonResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPersonView(pm *queries.PersonView) *PersonResponse {
	var resp PersonResponse
	_ = copier.Copy(&resp, pm)
	return &resp
}
