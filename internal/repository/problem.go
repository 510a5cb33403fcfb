package repository

import (
	"context"

	"problem-selection-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemFilter narrows problem listings
type ProblemFilter struct {
	Category   models.Category
	Difficulty models.Difficulty
}

// SelectedTeam is a team holding an active selection on a problem
type SelectedTeam struct {
	ProblemID uuid.UUID
	TeamID    uuid.UUID
	TeamCode  string
	TeamName  string
}

// ProblemRepository handles database operations for problems
type ProblemRepository struct {
	db *gorm.DB
}

// NewProblemRepository creates a new problem repository
func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

// Create creates a new problem
func (r *ProblemRepository) Create(ctx context.Context, problem *models.Problem) error {
	return r.db.WithContext(ctx).Create(problem).Error
}

// GetByID retrieves a problem by ID, active or not
func (r *ProblemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Problem, error) {
	var problem models.Problem
	err := r.db.WithContext(ctx).First(&problem, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// GetByCode retrieves a problem by its human-assigned identifier, active or not
func (r *ProblemRepository) GetByCode(ctx context.Context, code string) (*models.Problem, error) {
	var problem models.Problem
	err := r.db.WithContext(ctx).First(&problem, "problem_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// GetByRef retrieves a problem by UUID or, failing to parse one, by code
func (r *ProblemRepository) GetByRef(ctx context.Context, ref string) (*models.Problem, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return r.GetByID(ctx, id)
	}
	return r.GetByCode(ctx, ref)
}

// ListActive retrieves active problems ordered by code
func (r *ProblemRepository) ListActive(ctx context.Context, filter ProblemFilter) ([]models.Problem, error) {
	var problems []models.Problem
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	err := query.Order("problem_code").Find(&problems).Error
	return problems, err
}

// GetSelectedTeams returns the teams holding active selections on the given problems,
// in commit order
func (r *ProblemRepository) GetSelectedTeams(ctx context.Context, problemIDs []uuid.UUID) ([]SelectedTeam, error) {
	var rows []SelectedTeam
	if len(problemIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Table("selections AS s").
		Select("s.problem_id, t.id AS team_id, t.team_code, t.team_name").
		Joins("JOIN teams t ON t.id = s.team_id").
		Where("s.status = ? AND s.problem_id IN ?", models.SelectionStatusActive, problemIDs).
		Order("s.selection_time, s.created_at").
		Scan(&rows).Error
	return rows, err
}

// SetActive sets the active flag of a problem
func (r *ProblemRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&models.Problem{}).Where("id = ?", id).Update("is_active", active).Error
}
