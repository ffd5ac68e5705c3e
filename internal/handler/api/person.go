package api

import (
	"errors"
	"net/http"

	reqdto "fleetrent/internal/handler/dto/request"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/handler/httperr"
	"fleetrent/internal/usecase/commands"
	"fleetrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	cmds commands.PersonCommands
	q    queries.PersonQueries
}

func NewPersonHandler(cmds commands.PersonCommands, q queries.PersonQueries) *PersonHandler {
	return &PersonHandler{cmds: cmds, q: q}
}

// @Summary Register person
// @Description Register a customer, employee or admin
// @Tags persons
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterPersonRequest true "Person request"
// @Success 201 {object} resdto.PersonResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /persons [post]
func (h *PersonHandler) Register(c *gin.Context) {
	var req reqdto.RegisterPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), commands.RegisterPersonInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		LicenseNumber: req.LicenseNumber,
		BadgeNumber:   req.BadgeNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPasswordTooWeak):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Password does not meet requirements", nil)
		case errors.Is(err, commands.ErrPersonValidation):
			// The wrapped violation list rides along as detail.
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Person validation failed", err.Error())
		case errors.Is(err, commands.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load person", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPersonView(view))
}
