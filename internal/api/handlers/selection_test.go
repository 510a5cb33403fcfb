package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"problem-selection-backend/internal/api/handlers"
	"problem-selection-backend/internal/auth"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/mocks"
	"problem-selection-backend/internal/service"
	"problem-selection-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const teamToken = "team001-token"

// SelectionHandlerTestSuite defines the test suite for SelectionHandler
type SelectionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSelectionServiceInterface
	mockAuth    *mocks.MockAuthServiceInterface
	handler     *handlers.SelectionHandler
	httpSuite   *testutils.HTTPTestSuite
	identity    *auth.TeamIdentity
}

// SetupTest sets up the test suite
func (suite *SelectionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSelectionServiceInterface(suite.ctrl)
	suite.mockAuth = mocks.NewMockAuthServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSelectionHandler(suite.mockService)
	suite.identity = &auth.TeamIdentity{ID: uuid.New(), TeamCode: "TEAM001", TeamName: "Code Warriors", IsActive: true}

	suite.mockAuth.EXPECT().ResolveIdentity(gomock.Any(), teamToken).Return(suite.identity, nil).AnyTimes()

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/unauthenticated/selection", suite.handler.SelectProblem)
	v1.POST("/selection", auth.NewAuthMiddleware(suite.mockAuth).RequireAuth(), suite.handler.SelectProblem)
}

// TearDownTest cleans up after each test
func (suite *SelectionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func selectionBody() map[string]string {
	return map[string]string{
		"teamId":    "TEAM001",
		"problemId": "PS001",
	}
}

func (suite *SelectionHandlerTestSuite) TestSelectProblem_Success() {
	selectedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	suite.mockService.EXPECT().
		SelectProblem(gomock.Any(), suite.identity, &service.SelectProblemRequest{TeamID: "TEAM001", ProblemID: "PS001"}).
		Return(&service.SelectionResponse{ProblemID: "PS001", ProblemTitle: "AI-Powered Healthcare Assistant", SelectionTime: selectedAt}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/selection", selectionBody(), testutils.Bearer(teamToken))

	var response service.SelectionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("PS001", response.ProblemID)
	suite.Equal("AI-Powered Healthcare Assistant", response.ProblemTitle)
	suite.True(selectedAt.Equal(response.SelectionTime))
	suite.Empty(recorder.Header().Get("Deprecation"))
}

func (suite *SelectionHandlerTestSuite) TestSelectProblem_InvalidJSON() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/selection", "invalid json", testutils.Bearer(teamToken))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

func (suite *SelectionHandlerTestSuite) TestSelectProblem_NoIdentity() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/unauthenticated/selection", selectionBody())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "no token")
}

func (suite *SelectionHandlerTestSuite) TestSelectProblem_Authentication() {
	suite.mockAuth.EXPECT().ResolveIdentity(gomock.Any(), "expired-token").Return(nil, apperrors.ErrInvalidToken)
	suite.mockAuth.EXPECT().ResolveIdentity(gomock.Any(), "retired-team-token").Return(nil, apperrors.ErrTeamInactive)

	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{Name: "Missing token", Method: http.MethodPost, URL: "/api/v1/selection", Body: selectionBody(), Status: http.StatusUnauthorized, Error: "no token"},
		{Name: "Invalid token", Method: http.MethodPost, URL: "/api/v1/selection", Body: selectionBody(), Headers: testutils.Bearer("expired-token"), Status: http.StatusUnauthorized, Error: "token failed"},
		{Name: "Inactive team", Method: http.MethodPost, URL: "/api/v1/selection", Body: selectionBody(), Headers: testutils.Bearer("retired-team-token"), Status: http.StatusForbidden, Error: "inactive"},
	})
}

func (suite *SelectionHandlerTestSuite) TestSelectProblem_ErrorMapping() {
	failWith := func(err error) func() {
		return func() {
			suite.mockService.EXPECT().
				SelectProblem(gomock.Any(), suite.identity, gomock.Any()).
				Return(nil, err).
				Times(1)
		}
	}
	request := func(tc testutils.HTTPTestCase) testutils.HTTPTestCase {
		tc.Method = http.MethodPost
		tc.URL = "/api/v1/selection"
		tc.Body = selectionBody()
		tc.Headers = testutils.Bearer(teamToken)
		if tc.ResponseHeaders == nil {
			tc.ResponseHeaders = map[string]string{"Retry-After": ""}
		}
		return tc
	}

	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		request(testutils.HTTPTestCase{Name: "Validation", Setup: failWith(apperrors.NewValidationError("problemId", "is required")), Status: http.StatusBadRequest, Error: "problemId"}),
		request(testutils.HTTPTestCase{Name: "Already selected", Setup: failWith(apperrors.ErrAlreadySelected), Status: http.StatusBadRequest, Error: "already selected", Code: "already_selected"}),
		request(testutils.HTTPTestCase{Name: "Capacity exceeded", Setup: failWith(apperrors.ErrCapacityExceeded), Status: http.StatusBadRequest, Error: "no longer available", Code: "capacity_exceeded"}),
		request(testutils.HTTPTestCase{Name: "Identity mismatch", Setup: failWith(apperrors.ErrIdentityMismatch), Status: http.StatusForbidden, Error: "unauthorized action"}),
		request(testutils.HTTPTestCase{Name: "Problem not found", Setup: failWith(apperrors.ErrProblemNotFound), Status: http.StatusNotFound, Error: "problem not found"}),
		request(testutils.HTTPTestCase{Name: "Team not found", Setup: failWith(apperrors.ErrTeamNotFound), Status: http.StatusNotFound, Error: "team not found"}),
		request(testutils.HTTPTestCase{
			Name:            "Transient",
			Setup:           failWith(apperrors.NewTransientStoreError("commit selection", errors.New("deadlock detected"))),
			Status:          http.StatusServiceUnavailable,
			Error:           "retry",
			ResponseHeaders: map[string]string{"Retry-After": "1"},
		}),
		request(testutils.HTTPTestCase{Name: "Unexpected", Setup: failWith(errors.New("pq: connection reset")), Status: http.StatusInternalServerError, Error: "server error during selection"}),
	})
}

func TestSelectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionHandlerTestSuite))
}
