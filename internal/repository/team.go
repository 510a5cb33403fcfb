package repository

import (
	"context"

	"problem-selection-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCode retrieves a team by its human-assigned identifier
func (r *TeamRepository) GetByCode(ctx context.Context, code string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "team_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithSelectedProblem retrieves a team by code with its selected problem preloaded
func (r *TeamRepository) GetWithSelectedProblem(ctx context.Context, code string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Preload("SelectedProblem").First(&team, "team_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with their selected problems, ordered by code
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Preload("SelectedProblem").Order("team_code").Find(&teams).Error
	return teams, err
}

// Update updates a team's roster fields. Selection fields are owned by the
// selection transaction and activation by SetActive; neither is written here.
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Model(team).
		Select("team_name", "password_hash", "leader", "contact", "members").
		Updates(team).Error
}

// SetActive sets the active flag of a team
func (r *TeamRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Update("is_active", active).Error
}
