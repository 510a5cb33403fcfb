package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"problem-selection-backend/internal/api/handlers"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/mocks"
	"problem-selection-backend/internal/service"
	"problem-selection-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProblemHandlerTestSuite defines the test suite for ProblemHandler
type ProblemHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProblemServiceInterface
	handler     *handlers.ProblemHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProblemHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProblemServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProblemHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	problems := suite.httpSuite.Router.Group("/api/v1/problems")
	{
		problems.GET("", suite.handler.ListProblems)
		problems.GET("/:id", suite.handler.GetProblem)
		problems.GET("/:id/availability", suite.handler.GetAvailability)
	}
}

// TearDownTest cleans up after each test
func (suite *ProblemHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProblemHandlerTestSuite) TestListProblems() {
	suite.mockService.EXPECT().
		ListProblems(gomock.Any(), "", "").
		Return(&service.ProblemListResponse{
			Count: 1,
			Problems: []service.ProblemResponse{{
				ProblemID:      "PS001",
				MaxTeams:       2,
				SelectedCount:  1,
				SlotsAvailable: 1,
				IsAvailable:    true,
				Tags:           []string{"AI"},
				SelectedBy:     []service.SelectedByTeam{{TeamID: "TEAM001", TeamName: "Code Warriors"}},
			}},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/problems", nil)

	var response service.ProblemListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(1, response.Count)
	suite.Equal("TEAM001", response.Problems[0].SelectedBy[0].TeamID)
	suite.Contains(recorder.Body.String(), `"slotsAvailable":1`)
}

func (suite *ProblemHandlerTestSuite) TestListProblems_Filters() {
	suite.mockService.EXPECT().
		ListProblems(gomock.Any(), "IoT", "Easy").
		Return(&service.ProblemListResponse{Problems: []service.ProblemResponse{}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/problems?category=IoT&difficulty=Easy", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ProblemHandlerTestSuite) TestListProblems_InvalidFilter() {
	suite.mockService.EXPECT().
		ListProblems(gomock.Any(), "Quantum", "").
		Return(nil, apperrors.NewValidationError("category", "is invalid")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/problems?category=Quantum", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "category")
}

func (suite *ProblemHandlerTestSuite) TestListProblems_InternalError() {
	suite.mockService.EXPECT().
		ListProblems(gomock.Any(), "", "").
		Return(nil, errors.New("db failure")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/problems", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "failed to list problems")
	assert.NotContains(suite.T(), recorder.Body.String(), "db failure")
}

func (suite *ProblemHandlerTestSuite) TestGetProblem() {
	suite.mockService.EXPECT().
		GetProblem(gomock.Any(), "PS003").
		Return(&service.ProblemResponse{ProblemID: "PS003", Title: "Smart Campus"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/problems/PS003", nil)

	var response service.ProblemResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Smart Campus", response.Title)
}

func (suite *ProblemHandlerTestSuite) TestGetProblem_NotFound() {
	suite.mockService.EXPECT().
		GetProblem(gomock.Any(), "PS999").
		Return(nil, apperrors.ErrProblemNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/problems/PS999", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "problem not found")
}

func (suite *ProblemHandlerTestSuite) TestGetAvailability() {
	suite.mockService.EXPECT().
		GetAvailability(gomock.Any(), "PS002").
		Return(&service.AvailabilityResponse{ProblemID: "PS002", IsAvailable: false, SlotsAvailable: 0, MaxTeams: 2, SelectedCount: 2}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/problems/PS002/availability", nil)

	var response service.AvailabilityResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.IsAvailable)
	suite.Equal(0, response.SlotsAvailable)
	suite.Equal(2, response.SelectedCount)
}

func TestProblemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProblemHandlerTestSuite))
}
