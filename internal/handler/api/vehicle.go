package api

import (
	"errors"
	"net/http"

	reqdto "fleetrent/internal/handler/dto/request"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/handler/httperr"
	"fleetrent/internal/infra"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary Register vehicle
// @Description Add a vehicle to the fleet
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVehicleRequest true "Vehicle request"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	var req reqdto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	plate, err := h.cmds.Register(c.Request.Context(), req.Plate, req.Brand, req.Model, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVehicleValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Vehicle validation failed", nil)
		case errors.Is(err, commands.ErrDuplicatePlate):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByPlate(c.Request.Context(), plate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load vehicle", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVehicleView(view))
}

// @Summary List vehicles
// @Description List the whole fleet with display status
// @Tags vehicles
// @Produce json
// @Success 200 {array} resdto.VehicleResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

// @Summary Get vehicle
// @Description Get one vehicle by plate
// @Tags vehicles
// @Produce json
// @Param plate path string true "License plate"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 404 {object} map[string]string
// @Router /vehicles/{plate} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	view, err := h.q.GetByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Update vehicle status
// @Description Set the display status shown on the fleet board
// @Tags vehicles
// @Accept json
// @Security BearerAuth
// @Param plate path string true "License plate"
// @Param request body reqdto.UpdateVehicleStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{plate}/status [patch]
func (h *VehicleHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateVehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.SetStatus(c.Request.Context(), c.Param("plate"), req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidVehicleStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle status", nil)
		case errors.Is(err, commands.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
