//go:build unit || integration

package builder

import (
	"time"

	domvehicle "fleetrent/internal/domain/vehicle"
	reqdto "fleetrent/internal/handler/dto/request"
	"fleetrent/internal/usecase/queries"
)

type VehicleBuilder struct {
	Plate     string
	Brand     string
	Model     string
	Color     string
	Status    domvehicle.Status
	CreatedAt time.Time
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Plate:     "AB-123-CD",
		Brand:     "Toyota",
		Model:     "Corolla",
		Color:     "silver",
		Status:    domvehicle.StatusFree,
		CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (v *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(v)
	return v
}

func (v *VehicleBuilder) BuildDomain() (*domvehicle.Vehicle, error) {
	return domvehicle.NewVehicle(v.Plate, v.Brand, v.Model, v.Color, v.CreatedAt)
}

func (v *VehicleBuilder) BuildCreateRequestDTO() reqdto.CreateVehicleRequest {
	return reqdto.CreateVehicleRequest{
		Plate: v.Plate,
		Brand: v.Brand,
		Model: v.Model,
		Color: v.Color,
	}
}

func (v *VehicleBuilder) BuildView() *queries.VehicleView {
	return &queries.VehicleView{
		Plate:     v.Plate,
		Brand:     v.Brand,
		Model:     v.Model,
		Color:     v.Color,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.CreatedAt,
	}
}
