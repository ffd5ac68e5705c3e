package request

type CreateVehicleRequest struct {
	Plate string `json:"plate" binding:"required"`
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type UpdateVehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
