package service_test

import (
	"context"
	"errors"
	"testing"

	"problem-selection-backend/internal/database/models"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/mocks"
	"problem-selection-backend/internal/repository"
	"problem-selection-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProblemServiceTestSuite defines the test suite for ProblemService
type ProblemServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockProblem *mocks.MockProblemRepositoryInterface
	service     *service.ProblemService
}

// SetupTest sets up the test suite
func (suite *ProblemServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProblem = mocks.NewMockProblemRepositoryInterface(suite.ctrl)
	suite.service = service.NewProblemService(suite.mockProblem)
}

// TearDownTest cleans up after each test
func (suite *ProblemServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func newProblem(code string, maxTeams, selected int, active bool) models.Problem {
	return models.Problem{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		ProblemCode:   code,
		Title:         "Problem " + code,
		Description:   "Description of " + code,
		Category:      models.CategoryAIML,
		Difficulty:    models.DifficultyHard,
		MaxTeams:      maxTeams,
		SelectedCount: selected,
		IsActive:      active,
		Tags:          models.StringList{"AI", "Healthcare"},
	}
}

func (suite *ProblemServiceTestSuite) TestListProblems_WithSelectedBy() {
	ps1 := newProblem("PS001", 2, 1, true)
	ps2 := newProblem("PS002", 2, 0, true)

	suite.mockProblem.EXPECT().ListActive(gomock.Any(), repository.ProblemFilter{}).Return([]models.Problem{ps1, ps2}, nil)
	suite.mockProblem.EXPECT().GetSelectedTeams(gomock.Any(), []uuid.UUID{ps1.ID, ps2.ID}).Return([]repository.SelectedTeam{
		{ProblemID: ps1.ID, TeamID: uuid.New(), TeamCode: "TEAM001", TeamName: "Code Warriors"},
	}, nil)

	resp, err := suite.service.ListProblems(context.Background(), "", "")

	suite.Require().NoError(err)
	suite.Equal(2, resp.Count)
	suite.Equal("PS001", resp.Problems[0].ProblemID)
	suite.Equal(1, resp.Problems[0].SlotsAvailable)
	suite.True(resp.Problems[0].IsAvailable)
	suite.Equal([]service.SelectedByTeam{{TeamID: "TEAM001", TeamName: "Code Warriors"}}, resp.Problems[0].SelectedBy)
	suite.Empty(resp.Problems[1].SelectedBy)
	suite.NotNil(resp.Problems[1].SelectedBy)
	suite.Equal([]string{"AI", "Healthcare"}, resp.Problems[1].Tags)
}

func (suite *ProblemServiceTestSuite) TestListProblems_Filters() {
	filter := repository.ProblemFilter{Category: models.CategoryAIML, Difficulty: models.DifficultyHard}
	suite.mockProblem.EXPECT().ListActive(gomock.Any(), filter).Return([]models.Problem{}, nil)
	suite.mockProblem.EXPECT().GetSelectedTeams(gomock.Any(), []uuid.UUID{}).Return(nil, nil)

	resp, err := suite.service.ListProblems(context.Background(), "AI/ML", "Hard")

	suite.Require().NoError(err)
	suite.Equal(0, resp.Count)
	suite.NotNil(resp.Problems)
}

func (suite *ProblemServiceTestSuite) TestListProblems_InvalidFilter() {
	_, err := suite.service.ListProblems(context.Background(), "Quantum", "")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.ListProblems(context.Background(), "", "Impossible")
	suite.True(apperrors.IsValidation(err))
}

func (suite *ProblemServiceTestSuite) TestListProblems_RepositoryError() {
	suite.mockProblem.EXPECT().ListActive(gomock.Any(), gomock.Any()).Return(nil, errors.New("db failure"))

	_, err := suite.service.ListProblems(context.Background(), "", "")

	suite.Require().Error(err)
	suite.Contains(err.Error(), "failed to list problems")
}

func (suite *ProblemServiceTestSuite) TestGetProblem() {
	ps := newProblem("PS003", 2, 2, true)
	suite.mockProblem.EXPECT().GetByRef(gomock.Any(), "PS003").Return(&ps, nil)
	suite.mockProblem.EXPECT().GetSelectedTeams(gomock.Any(), []uuid.UUID{ps.ID}).Return([]repository.SelectedTeam{
		{ProblemID: ps.ID, TeamCode: "TEAM001", TeamName: "Code Warriors"},
		{ProblemID: ps.ID, TeamCode: "TEAM002", TeamName: "Tech Titans"},
	}, nil)

	resp, err := suite.service.GetProblem(context.Background(), "PS003")

	suite.Require().NoError(err)
	suite.False(resp.IsAvailable)
	suite.Equal(0, resp.SlotsAvailable)
	suite.Len(resp.SelectedBy, 2)
	suite.Equal("TEAM002", resp.SelectedBy[1].TeamID)
}

func (suite *ProblemServiceTestSuite) TestGetProblem_NotFound() {
	suite.mockProblem.EXPECT().GetByRef(gomock.Any(), "PS999").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetProblem(context.Background(), "PS999")

	suite.ErrorIs(err, apperrors.ErrProblemNotFound)
}

func (suite *ProblemServiceTestSuite) TestGetAvailability() {
	testCases := []struct {
		name      string
		problem   models.Problem
		available bool
		slots     int
	}{
		{name: "Open slot", problem: newProblem("PS001", 2, 1, true), available: true, slots: 1},
		{name: "Full", problem: newProblem("PS002", 2, 2, true), available: false, slots: 0},
		{name: "Single slot untouched", problem: newProblem("PS003", 1, 0, true), available: true, slots: 1},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			p := tc.problem
			suite.mockProblem.EXPECT().GetByRef(gomock.Any(), p.ProblemCode).Return(&p, nil)

			resp, err := suite.service.GetAvailability(context.Background(), p.ProblemCode)

			suite.Require().NoError(err)
			suite.Equal(tc.available, resp.IsAvailable)
			suite.Equal(tc.slots, resp.SlotsAvailable)
			suite.Equal(p.MaxTeams, resp.MaxTeams)
			suite.Equal(p.SelectedCount, resp.SelectedCount)
		})
	}
}

func (suite *ProblemServiceTestSuite) TestGetAvailability_InactiveIsNotFound() {
	p := newProblem("PS006", 2, 0, false)
	suite.mockProblem.EXPECT().GetByRef(gomock.Any(), "PS006").Return(&p, nil)

	_, err := suite.service.GetAvailability(context.Background(), "PS006")

	suite.ErrorIs(err, apperrors.ErrProblemNotFound)
}

func TestProblemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProblemServiceTestSuite))
}
