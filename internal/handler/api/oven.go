package api

import (
	"net/http"

	"ovenbook/internal/handler/dto/request"
	"ovenbook/internal/handler/dto/response"
	"ovenbook/internal/handler/httperr"
	"ovenbook/internal/infra"
	"ovenbook/internal/usecase/commands"
	"ovenbook/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OvenHandler struct {
	ovenCommands commands.OvenCommands
	ovenQueries  queries.OvenQueries
}

func NewOvenHandler(ovenCommands commands.OvenCommands, ovenQueries queries.OvenQueries) *OvenHandler {
	return &OvenHandler{
		ovenCommands: ovenCommands,
		ovenQueries:  ovenQueries,
	}
}

// List godoc
// @Summary List all ovens
// @Tags ovens
// @Produce json
// @Success 200 {object} response.DataResponse
// @Router /ovens [get]
func (h *OvenHandler) List(c *gin.Context) {
	ovens, err := h.ovenQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch ovens")
		return
	}

	c.JSON(http.StatusOK, response.Data(ovens))
}

// Create godoc
// @Summary Register a new oven
// @Tags ovens
// @Accept json
// @Produce json
// @Param request body request.CreateOvenRequest true "Oven payload"
// @Success 201 {object} response.IDResponse
// @Router /ovens [post]
func (h *OvenHandler) Create(c *gin.Context) {
	var req request.CreateOvenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Oven name is required")
		return
	}

	id, err := h.ovenCommands.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidOvenName) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Oven name is required")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create oven")
		return
	}

	c.JSON(http.StatusCreated, response.ID(id))
}

// SetStatus godoc
// @Summary Update an oven's operational status
// @Tags ovens
// @Accept json
// @Produce json
// @Param request body request.UpdateOvenRequest true "Status payload"
// @Success 200 {object} response.MessageResponse
// @Router /ovens [put]
func (h *OvenHandler) SetStatus(c *gin.Context) {
	var req request.UpdateOvenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Oven ID and a valid status are required")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid oven ID")
		return
	}

	if err := h.ovenCommands.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidOvenStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Status must be either active or maintenance")
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "The selected oven does not exist.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update oven status")
		}
		return
	}

	c.JSON(http.StatusOK, response.Message("Oven status updated"))
}
