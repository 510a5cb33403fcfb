package repository

import (
	"context"
	"time"

	"problem-selection-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByCode(ctx context.Context, code string) (*models.Team, error)
	GetWithSelectedProblem(ctx context.Context, code string) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// ProblemRepositoryInterface defines the interface for problem repository operations
type ProblemRepositoryInterface interface {
	Create(ctx context.Context, problem *models.Problem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Problem, error)
	GetByCode(ctx context.Context, code string) (*models.Problem, error)
	GetByRef(ctx context.Context, ref string) (*models.Problem, error)
	ListActive(ctx context.Context, filter ProblemFilter) ([]models.Problem, error)
	GetSelectedTeams(ctx context.Context, problemIDs []uuid.UUID) ([]SelectedTeam, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// SelectionRepositoryInterface defines the interface for the selection transaction
type SelectionRepositoryInterface interface {
	Commit(ctx context.Context, teamCode, problemRef string, at time.Time) (*SelectionCommit, error)
	GetActiveByTeam(ctx context.Context, teamID uuid.UUID) (*models.Selection, error)
	CountActiveByProblem(ctx context.Context, problemID uuid.UUID) (int64, error)
}
