package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "fleetrent/internal/handler/dto/request"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/handler/httperr"
	"fleetrent/internal/handler/middleware"
	"fleetrent/internal/infra"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Query availability
// @Description List plates free for the requested interval, buffer included
// @Tags rentals
// @Produce json
// @Param start query string true "Interval start (RFC3339)"
// @Param end query string true "Interval end (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *RentalHandler) Availability(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "start must be RFC3339", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "end must be RFC3339", nil)
		return
	}
	if !start.Before(end) {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "start must precede end", nil)
		return
	}

	plates, err := h.q.Availability(c.Request.Context(), start, end)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability scan failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(start, end, plates))
}

// @Summary Book a vehicle
// @Description Create a rental if the vehicle is free for the period
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) Book(c *gin.Context) {
	customerID, ok := middleware.GetPersonID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rentalID, err := h.cmds.Book(c.Request.Context(), req.Plate, customerID, req.EmployeeID, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental period", nil)
		case errors.Is(err, commands.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errors.Is(err, commands.ErrPersonNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Person not found", nil)
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle is not available for this period", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), rentalID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rental", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRentalView(view))
}

// @Summary Get rental
// @Description Get a rental by ID (owner or staff)
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	id, err := parseRentalID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental ID", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rental not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	// Customers may only read their own rentals; staff see everything.
	actorID, _ := middleware.GetPersonID(c)
	role, _ := middleware.GetPersonRole(c)
	if !role.IsStaff() && view.CustomerID != actorID {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Access denied", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary List own rentals
// @Description List rentals booked by the authenticated customer
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalListResponse
// @Failure 401 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	customerID, ok := middleware.GetPersonID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := make([]*resdto.RentalListResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromRentalListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel rental
// @Description Cancel an upcoming rental owned by the caller
// @Tags rentals
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(c *gin.Context) {
	id, err := parseRentalID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental ID", nil)
		return
	}

	actorID, ok := middleware.GetPersonID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRentalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rental not found", nil)
		case errors.Is(err, commands.ErrNotRentalOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the booking customer may cancel", nil)
		case errors.Is(err, commands.ErrRentalAlreadyStarted):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Rental has already started", nil)
		case errors.Is(err, commands.ErrRentalNotCancellable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Rental is no longer cancellable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseRentalID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
