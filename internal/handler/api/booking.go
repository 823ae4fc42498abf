package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"ovenbook/internal/domain/booking"
	"ovenbook/internal/handler/dto/request"
	"ovenbook/internal/handler/dto/response"
	"ovenbook/internal/handler/httperr"
	"ovenbook/internal/handler/middleware"
	"ovenbook/internal/pkg/config"
	"ovenbook/internal/pkg/errs"
	"ovenbook/internal/usecase/commands"
	"ovenbook/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingOvenID = errs.New("missing oven ID")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	watcher         *queries.BookingWatcher
	policy          config.BookingConfig
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	watcher *queries.BookingWatcher,
	policy config.BookingConfig,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		watcher:         watcher,
		policy:          policy,
	}
}

// List godoc
// @Summary List bookings for an oven, or all upcoming bookings (admin scope)
// @Tags bookings
// @Produce json
// @Param ovenId query string false "Oven ID"
// @Param scope query string false "Set to admin for the cross-oven upcoming view"
// @Success 200 {object} response.DataResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	if c.Query("scope") == "admin" {
		role, ok := middleware.CurrentUserRole(c)
		if !ok || !role.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errs.New("admin scope requested by non-admin"), "User is not an admin")
			return
		}

		bookings, err := h.bookingQueries.ListUpcoming(c.Request.Context())
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings")
			return
		}
		c.JSON(http.StatusOK, response.Data(bookings))
		return
	}

	ovenID, ok := h.requireOvenID(c, c.Query("ovenId"))
	if !ok {
		return
	}

	bookings, err := h.bookingQueries.ListByOven(c.Request.Context(), ovenID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, response.Data(bookings))
}

// Create godoc
// @Summary Book an oven for a time window
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response.IDMessageResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	ovenID, ok := h.requireOvenID(c, req.OvenID)
	if !ok {
		return
	}

	actor, ok := middleware.CurrentUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing identity"), "Authentication required")
		return
	}

	window, err := booking.NewTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time.")
		return
	}

	id, err := h.bookingCommands.Create(c.Request.Context(), ovenID, window, req.Title, actor)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.IDMessage(id, "Booking successful"))
}

// Update godoc
// @Summary Change a booking's time window and title
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request.UpdateBookingRequest true "Booking payload"
// @Success 200 {object} response.MessageResponse
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	var req request.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	ovenID, ok := h.requireOvenID(c, req.OvenID)
	if !ok {
		return
	}

	actor, ok := middleware.CurrentUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing identity"), "Authentication required")
		return
	}
	role, _ := middleware.CurrentUserRole(c)

	window, err := booking.NewTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time.")
		return
	}

	if err := h.bookingCommands.Update(c.Request.Context(), bookingID, ovenID, window, req.Title, actor, role.IsAdmin()); err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message("Booking updated"))
}

// Cancel godoc
// @Summary Cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.CancelBookingRequest true "Cancellation payload"
// @Success 200 {object} response.MessageResponse
// @Router /bookings/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req request.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking ID is required")
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	actor, ok := middleware.CurrentUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing identity"), "Authentication required")
		return
	}
	role, _ := middleware.CurrentUserRole(c)

	if err := h.bookingCommands.Cancel(c.Request.Context(), bookingID, actor, role.IsAdmin()); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found.")
		case errors.Is(err, commands.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "You are not authorized to cancel this booking.")
		case errors.Is(err, commands.ErrGracePeriodExpired):
			httperr.AbortWithError(c, http.StatusForbidden, err,
				fmt.Sprintf("The %s grace period for cancellation has passed.", graceLabel(h.policy.EditGracePeriod)))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel booking")
		}
		return
	}

	c.JSON(http.StatusOK, response.Message("Booking cancelled"))
}

// Watch godoc
// @Summary Stream booking list snapshots for an oven as server-sent events
// @Tags bookings
// @Produce text/event-stream
// @Param ovenId query string true "Oven ID"
// @Router /bookings/watch [get]
func (h *BookingHandler) Watch(c *gin.Context) {
	ovenID, ok := h.requireOvenID(c, c.Query("ovenId"))
	if !ok {
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	updates := h.watcher.Watch(c.Request.Context(), ovenID)

	c.Stream(func(_ io.Writer) bool {
		snapshot, open := <-updates
		if !open {
			return false
		}
		c.SSEvent("bookings", snapshot)
		return true
	})
}

func (h *BookingHandler) requireOvenID(c *gin.Context, raw string) (uuid.UUID, bool) {
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingOvenID, "Oven ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Oven ID is required")
		return uuid.Nil, false
	}
	return id, true
}

// abortWithBookingError translates create/update failures. The booking
// messages quote the configured policy values, not hardcoded defaults.
func (h *BookingHandler) abortWithBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDurationTooLong):
		days := int(h.policy.MaxDuration.Hours() / 24)
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			fmt.Sprintf("Booking cannot exceed %d days.", days))
	case errors.Is(err, commands.ErrQuotaExceeded):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			fmt.Sprintf("You have reached your limit of %d active bookings.", h.policy.MaxActive))
	case errors.Is(err, commands.ErrOvenNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "The selected oven does not exist.")
	case errors.Is(err, commands.ErrOvenUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "This oven is currently under maintenance and cannot be booked.")
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "This time slot conflicts with an existing booking.")
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found.")
	case errors.Is(err, commands.ErrNotAuthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You are not authorized to edit this booking.")
	case errors.Is(err, commands.ErrGracePeriodExpired):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			fmt.Sprintf("You can no longer edit this booking. The %s grace period has passed.", graceLabel(h.policy.EditGracePeriod)))
	case errors.Is(err, commands.ErrInvalidWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time.")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func graceLabel(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		return fmt.Sprintf("%d-hour", int(d.Hours()))
	}
	return fmt.Sprintf("%d-minute", int(d.Minutes()))
}
