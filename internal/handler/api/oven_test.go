//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ovenbook/internal/handler/api"
	"ovenbook/internal/infra"
	"ovenbook/internal/usecase/queries"
	"ovenbook/tests/common/httptest"
	commandsmock "ovenbook/tests/mock/commands"
	queriesmock "ovenbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OvenHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockCommands *commandsmock.MockOvenCommands
	mockQueries  *queriesmock.MockOvenQueries
	handler      *api.OvenHandler
}

func (s *OvenHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.ctrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOvenCommands(s.ctrl)
	s.mockQueries = queriesmock.NewMockOvenQueries(s.ctrl)
	s.handler = api.NewOvenHandler(s.mockCommands, s.mockQueries)

	// Admin gating lives in the router; these tests exercise the handlers
	s.router.GET("/ovens", s.handler.List)
	s.router.POST("/ovens", s.handler.Create)
	s.router.PUT("/ovens", s.handler.SetStatus)
}

func (s *OvenHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOvenHandlerSuite(t *testing.T) {
	suite.Run(t, new(OvenHandlerTestSuite))
}

func notFoundRepoErr() error {
	return infra.WrapRepoErr("not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func (s *OvenHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().List(gomock.Any()).
		Return([]*queries.OvenView{
			{ID: uuid.New(), Name: "Kiln A", Status: "active"},
			{ID: uuid.New(), Name: "Kiln B", Status: "maintenance"},
		}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ovens", nil, "")

	var resp struct {
		Success bool                `json:"success"`
		Data    []*queries.OvenView `json:"data"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.True(resp.Success)
	s.Len(resp.Data, 2)
}

func (s *OvenHandlerTestSuite) TestCreate() {
	s.Run("success", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), "Kiln A").Return(newID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/ovens", map[string]any{"name": "Kiln A"}, "")

		var resp struct {
			Success bool      `json:"success"`
			ID      uuid.UUID `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("error: missing name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/ovens", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Oven name is required")
	})
}

func (s *OvenHandlerTestSuite) TestSetStatus() {
	ovenID := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), ovenID, "maintenance").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/ovens",
			map[string]any{"id": ovenID.String(), "status": "maintenance"}, "")

		var resp struct {
			Success bool `json:"success"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Success)
	})

	s.Run("error: invalid status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/ovens",
			map[string]any{"id": ovenID.String(), "status": "broken"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown oven", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), ovenID, "active").
			Return(notFoundRepoErr())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/ovens",
			map[string]any{"id": ovenID.String(), "status": "active"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The selected oven does not exist.")
	})
}
