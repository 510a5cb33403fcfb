package routes

import (
	"net/http"
	"testing"

	"problem-selection-backend/internal/api/handlers"
	"problem-selection-backend/internal/auth"
	"problem-selection-backend/internal/mocks"
	"problem-selection-backend/internal/service"
	"problem-selection-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLegacyRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := &auth.TeamIdentity{ID: uuid.New(), TeamCode: "TEAM001", TeamName: "Code Warriors", IsActive: true}
	authService := mocks.NewMockAuthServiceInterface(ctrl)
	authService.EXPECT().ResolveIdentity(gomock.Any(), "token").Return(identity, nil).AnyTimes()

	selections := mocks.NewMockSelectionServiceInterface(ctrl)
	problems := mocks.NewMockProblemServiceInterface(ctrl)
	teams := mocks.NewMockTeamServiceInterface(ctrl)

	httpSuite := testutils.SetupHTTPTest()
	protected := httpSuite.Router.Group("/api/v1", auth.NewAuthMiddleware(authService).RequireAuth())
	registerLegacyRoutes(protected,
		handlers.NewSelectionHandler(selections),
		handlers.NewProblemHandler(problems),
		handlers.NewTeamHandler(teams),
	)

	selections.EXPECT().
		SelectProblem(gomock.Any(), identity, &service.SelectProblemRequest{TeamID: "TEAM001", ProblemID: "PS001"}).
		Return(&service.SelectionResponse{ProblemID: "PS001"}, nil)
	problems.EXPECT().GetAvailability(gomock.Any(), "PS002").
		Return(&service.AvailabilityResponse{ProblemID: "PS002", IsAvailable: true, SlotsAvailable: 1, MaxTeams: 2, SelectedCount: 1}, nil)
	teams.EXPECT().GetTeamDetails(gomock.Any(), identity, "TEAM001").
		Return(&service.TeamResponse{TeamID: "TEAM001"}, nil)
	teams.EXPECT().ListTeams(gomock.Any()).
		Return(&service.TeamListResponse{Teams: []service.TeamSummary{}}, nil)

	testCases := []struct {
		name      string
		method    string
		url       string
		body      interface{}
		successor string
	}{
		{name: "select", method: http.MethodPost, url: "/api/v1/problems/select", body: map[string]string{"teamId": "TEAM001", "problemId": "PS001"}, successor: "/api/v1/selection"},
		{name: "availability", method: http.MethodGet, url: "/api/v1/problems/availability/PS002", successor: "/api/v1/problems/PS002/availability"},
		{name: "team details", method: http.MethodGet, url: "/api/v1/teams/details/TEAM001", successor: "/api/v1/teams/TEAM001"},
		{name: "all teams", method: http.MethodGet, url: "/api/v1/teams/all", successor: "/api/v1/teams"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httpSuite.MakeRequestWithHeaders(tc.method, tc.url, tc.body, testutils.Bearer("token"))

			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
			assert.Equal(t, "true", recorder.Header().Get("Deprecation"))
			assert.Equal(t, "<"+tc.successor+`>; rel="successor-version"`, recorder.Header().Get("Link"))
		})
	}

	t.Run("aliases stay behind authentication", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/all", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "no token")
	})
}
