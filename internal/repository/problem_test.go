//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"problem-selection-backend/internal/database/models"
	"problem-selection-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProblemRepositoryTestSuite tests the ProblemRepository
type ProblemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *ProblemRepository
	teams          *TeamRepository
	selections     *SelectionRepository
	teamFactory    *testutils.TeamFactory
	problemFactory *testutils.ProblemFactory
	ctx            context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *ProblemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProblemRepository(suite.baseTestSuite.DB)
	suite.teams = NewTeamRepository(suite.baseTestSuite.DB)
	suite.selections = NewSelectionRepository(suite.baseTestSuite.DB, SelectionOptions{})
	suite.teamFactory = testutils.NewTeamFactory()
	suite.problemFactory = testutils.NewProblemFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProblemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProblemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProblemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a problem with tags
func (suite *ProblemRepositoryTestSuite) TestCreate() {
	problem := suite.problemFactory.Create()
	problem.Tags = models.StringList{"AI", "Healthcare"}

	suite.Require().NoError(suite.repo.Create(suite.ctx, problem))

	found, err := suite.repo.GetByID(suite.ctx, problem.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"AI", "Healthcare"}, []string(found.Tags))
	suite.Equal(0, found.SelectedCount)
	suite.True(found.IsAvailable())
}

// TestCapacityMustBePositive tests the max_teams check constraint
func (suite *ProblemRepositoryTestSuite) TestCapacityMustBePositive() {
	problem := suite.problemFactory.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, problem))

	err := suite.baseTestSuite.DB.Exec("UPDATE problems SET max_teams = 0 WHERE id = ?", problem.ID).Error

	suite.Error(err)
}

// TestGetByRef tests lookup by UUID and by human identifier
func (suite *ProblemRepositoryTestSuite) TestGetByRef() {
	problem := suite.problemFactory.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, problem))

	byCode, err := suite.repo.GetByRef(suite.ctx, problem.ProblemCode)
	suite.Require().NoError(err)
	suite.Equal(problem.ID, byCode.ID)

	byID, err := suite.repo.GetByRef(suite.ctx, problem.ID.String())
	suite.Require().NoError(err)
	suite.Equal(problem.ProblemCode, byID.ProblemCode)

	_, err = suite.repo.GetByRef(suite.ctx, uuid.NewString())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByRef(suite.ctx, "PS-UNKNOWN")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListActive tests that inactive problems are hidden and filters apply
func (suite *ProblemRepositoryTestSuite) TestListActive() {
	web := suite.problemFactory.Create()
	ai := suite.problemFactory.Create()
	ai.Category = models.CategoryAIML
	ai.Difficulty = models.DifficultyHard
	hidden := suite.problemFactory.Inactive()
	for _, p := range []*models.Problem{web, ai, hidden} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, p))
	}

	all, err := suite.repo.ListActive(suite.ctx, ProblemFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 2)
	for _, p := range all {
		suite.NotEqual(hidden.ID, p.ID)
	}

	filtered, err := suite.repo.ListActive(suite.ctx, ProblemFilter{Category: models.CategoryAIML, Difficulty: models.DifficultyHard})
	suite.Require().NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal(ai.ID, filtered[0].ID)

	none, err := suite.repo.ListActive(suite.ctx, ProblemFilter{Difficulty: models.DifficultyEasy})
	suite.Require().NoError(err)
	suite.Empty(none)
}

// TestGetSelectedTeams tests the selectedBy projection in commit order
func (suite *ProblemRepositoryTestSuite) TestGetSelectedTeams() {
	problem := suite.problemFactory.Create()
	other := suite.problemFactory.Create()
	first := suite.teamFactory.Create()
	second := suite.teamFactory.Create()
	third := suite.teamFactory.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, problem))
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))
	for _, team := range []*models.Team{first, second, third} {
		suite.Require().NoError(suite.teams.Create(suite.ctx, team))
	}

	at := time.Now().UTC()
	_, err := suite.selections.Commit(suite.ctx, first.TeamCode, problem.ProblemCode, at)
	suite.Require().NoError(err)
	_, err = suite.selections.Commit(suite.ctx, second.TeamCode, problem.ProblemCode, at.Add(time.Second))
	suite.Require().NoError(err)
	_, err = suite.selections.Commit(suite.ctx, third.TeamCode, other.ProblemCode, at.Add(2*time.Second))
	suite.Require().NoError(err)

	rows, err := suite.repo.GetSelectedTeams(suite.ctx, []uuid.UUID{problem.ID})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(first.TeamCode, rows[0].TeamCode)
	suite.Equal(second.TeamCode, rows[1].TeamCode)
	suite.Equal(problem.ID, rows[0].ProblemID)
	suite.Equal(first.ID, rows[0].TeamID)

	empty, err := suite.repo.GetSelectedTeams(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestSetActive tests retiring a problem
func (suite *ProblemRepositoryTestSuite) TestSetActive() {
	problem := suite.problemFactory.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, problem))

	suite.NoError(suite.repo.SetActive(suite.ctx, problem.ID, false))

	found, err := suite.repo.GetByCode(suite.ctx, problem.ProblemCode)
	suite.Require().NoError(err)
	suite.False(found.IsActive)
	suite.False(found.IsAvailable())
}

// Run the test suite
func TestProblemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProblemRepositoryTestSuite))
}
