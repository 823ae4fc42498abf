//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"ovenbook/internal/domain/user"
	"ovenbook/internal/handler/api"
	"ovenbook/internal/handler/middleware"
	"ovenbook/internal/pkg/config"
	"ovenbook/internal/usecase/commands"
	"ovenbook/internal/usecase/queries"
	"ovenbook/tests/common/httptest"
	commandsmock "ovenbook/tests/mock/commands"
	queriesmock "ovenbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	userID uuid.UUID
	role   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.ctrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.ctrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.ctrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, nil, config.NewTestConfig().Booking)

	s.userID = uuid.New()
	s.role = user.RoleMember

	// Stand-in for RequireAuth: injects the suite's identity
	identity := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, s.userID)
		c.Set(middleware.ContextUserRole, s.role)
	}

	s.router.GET("/bookings", identity, s.handler.List)
	s.router.POST("/bookings", identity, s.handler.Create)
	s.router.PUT("/bookings/:id", identity, s.handler.Update)
	s.router.POST("/bookings/cancel", identity, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func createBody(ovenID uuid.UUID) map[string]any {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return map[string]any{
		"ovenId":    ovenID.String(),
		"startTime": start.Format(time.RFC3339),
		"endTime":   start.Add(2 * time.Hour).Format(time.RFC3339),
		"title":     "Anneal run",
	}
}

func (s *BookingHandlerTestSuite) TestList() {
	ovenID := uuid.New()

	s.Run("success: bookings for an oven", func() {
		s.mockQueries.EXPECT().ListByOven(gomock.Any(), ovenID).
			Return([]*queries.BookingView{{ID: uuid.New(), Title: "Anneal run (by Dana)"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?ovenId="+ovenID.String(), nil, "")

		var resp struct {
			Success bool                   `json:"success"`
			Data    []*queries.BookingView `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Success)
		s.Len(resp.Data, 1)
	})

	s.Run("error: missing ovenId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Oven ID is required")
	})

	s.Run("error: admin scope as member", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?scope=admin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "User is not an admin")
	})

	s.Run("success: admin scope as admin", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleMember }()

		s.mockQueries.EXPECT().ListUpcoming(gomock.Any()).
			Return([]*queries.AdminBookingView{{ID: uuid.New(), UserName: "Dana", OvenName: "Kiln A"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?scope=admin", nil, "")

		var resp struct {
			Success bool                        `json:"success"`
			Data    []*queries.AdminBookingView `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Data, 1)
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	ovenID := uuid.New()
	body := createBody(ovenID)

	type errCase struct {
		name       string
		commandErr error
		expectCode int
		expectMsg  string
	}

	s.Run("success", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), ovenID, gomock.Any(), "Anneal run", s.userID).
			Return(newID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")

		var resp struct {
			Success bool      `json:"success"`
			Message string    `json:"message"`
			ID      uuid.UUID `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.True(resp.Success)
		s.Equal("Booking successful", resp.Message)
		s.Equal(newID, resp.ID)
	})

	s.Run("error: missing ovenId", func() {
		noOven := createBody(ovenID)
		noOven["ovenId"] = ""
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", noOven, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Oven ID is required")
	})

	s.Run("error: end before start", func() {
		inverted := createBody(ovenID)
		inverted["startTime"], inverted["endTime"] = inverted["endTime"], inverted["startTime"]
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", inverted, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End time must be after start time.")
	})

	cases := []errCase{
		{
			name:       "duration too long",
			commandErr: commands.ErrDurationTooLong,
			expectCode: http.StatusBadRequest,
			expectMsg:  "Booking cannot exceed 7 days.",
		},
		{
			name:       "quota exceeded",
			commandErr: commands.ErrQuotaExceeded,
			expectCode: http.StatusForbidden,
			expectMsg:  "You have reached your limit of 2 active bookings.",
		},
		{
			name:       "oven not found",
			commandErr: commands.ErrOvenNotFound,
			expectCode: http.StatusBadRequest,
			expectMsg:  "The selected oven does not exist.",
		},
		{
			name:       "oven under maintenance",
			commandErr: commands.ErrOvenUnavailable,
			expectCode: http.StatusBadRequest,
			expectMsg:  "This oven is currently under maintenance and cannot be booked.",
		},
		{
			name:       "time slot conflict",
			commandErr: commands.ErrBookingConflict,
			expectCode: http.StatusBadRequest,
			expectMsg:  "This time slot conflicts with an existing booking.",
		},
	}

	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), ovenID, gomock.Any(), "Anneal run", s.userID).
				Return(uuid.Nil, tc.commandErr)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	ovenID := uuid.New()
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s", bookingID)
	body := createBody(ovenID)

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), bookingID, ovenID, gomock.Any(), "Anneal run", s.userID, false).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var resp struct {
			Success bool `json:"success"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Success)
	})

	s.Run("error: invalid booking ID in path", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/not-a-uuid", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: not the owner", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), bookingID, ovenID, gomock.Any(), "Anneal run", s.userID, false).
			Return(commands.ErrNotAuthorized)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You are not authorized to edit this booking.")
	})

	s.Run("error: grace period passed", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), bookingID, ovenID, gomock.Any(), "Anneal run", s.userID, false).
			Return(commands.ErrGracePeriodExpired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden,
			"You can no longer edit this booking. The 1-hour grace period has passed.")
	})

	s.Run("error: booking missing", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), bookingID, ovenID, gomock.Any(), "Anneal run", s.userID, false).
			Return(commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found.")
	})

	s.Run("admin flag is forwarded", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleMember }()

		s.mockCommands.EXPECT().
			Update(gomock.Any(), bookingID, ovenID, gomock.Any(), "Anneal run", s.userID, true).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	body := map[string]any{"bookingId": bookingID.String()}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, false).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel", body, "")

		var resp struct {
			Success bool `json:"success"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Success)
	})

	s.Run("error: missing bookingId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booking ID is required")
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, false).
			Return(commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found.")
	})

	s.Run("error: grace period passed", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, false).
			Return(commands.ErrGracePeriodExpired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cancel", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden,
			"The 1-hour grace period for cancellation has passed.")
	})
}
