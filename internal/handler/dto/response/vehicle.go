package response

import (
	"time"

	"fleetrent/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	Plate     string    `json:"plate"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Color     string    `json:"color"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVehicleView(vm *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, vm)
	return &resp
}

func FromVehicleViews(vms []*queries.VehicleView) []*VehicleResponse {
	resps := make([]*VehicleResponse, 0, len(vms))
	for _, vm := range vms {
		resps = append(resps, FromVehicleView(vm))
	}
	return resps
}
