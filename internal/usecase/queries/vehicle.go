package queries

import (
	"context"
	"time"
)

type VehicleView struct {
	Plate     string    `json:"plate"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Color     string    `json:"color"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VehicleQueries interface {
	GetByPlate(ctx context.Context, plate string) (*VehicleView, error)
	List(ctx context.Context) ([]*VehicleView, error)
}

type VehicleReadStore interface {
	FindByPlate(ctx context.Context, plate string) (*VehicleView, error)
	FindAll(ctx context.Context) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) GetByPlate(ctx context.Context, plate string) (*VehicleView, error) {
	return q.store.FindByPlate(ctx, plate)
}

func (q *vehicleQueriesImpl) List(ctx context.Context) ([]*VehicleView, error) {
	return q.store.FindAll(ctx)
}
