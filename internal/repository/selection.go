package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"problem-selection-backend/internal/database/models"
	apperrors "problem-selection-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SelectionCommit is the state written by one successful selection
type SelectionCommit struct {
	Selection models.Selection
	Team      models.Team
	Problem   models.Problem
}

// SelectionOptions bounds how long a selection transaction may wait on the store
type SelectionOptions struct {
	StatementTimeout time.Duration
	LockTimeout      time.Duration
}

// SelectionRepository owns every write to teams.selected_problem_id,
// problems.selected_count and the selections ledger
type SelectionRepository struct {
	db   *gorm.DB
	opts SelectionOptions
}

// NewSelectionRepository creates a new selection repository
func NewSelectionRepository(db *gorm.DB, opts SelectionOptions) *SelectionRepository {
	return &SelectionRepository{db: db, opts: opts}
}

// Commit binds the team to the problem in a single transaction.
//
// The reads at the top classify the common failures without writing. The writes
// are conditional updates: Postgres re-checks their WHERE clause after taking the
// row lock, so a racing transaction that committed first turns the update into a
// no-op and the attempt aborts with the matching conflict. Rows are locked team
// first, problem second. The partial unique index on selections(team_id) is the
// final guard.
func (r *SelectionRepository) Commit(ctx context.Context, teamCode, problemRef string, at time.Time) (*SelectionCommit, error) {
	var out SelectionCommit

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.applyTimeouts(tx); err != nil {
			return err
		}

		var team models.Team
		if err := tx.Where("team_code = ? AND is_active = ?", teamCode, true).First(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return err
		}
		if team.HasSelection() {
			return apperrors.ErrAlreadySelected
		}

		problem, err := findActiveProblem(tx, problemRef)
		if err != nil {
			return err
		}
		if !problem.IsAvailable() {
			return apperrors.ErrCapacityExceeded
		}

		res := tx.Model(&models.Team{}).
			Where("id = ? AND selected_problem_id IS NULL AND is_active = ?", team.ID, true).
			Updates(map[string]interface{}{
				"selected_problem_id": problem.ID,
				"selection_time":      at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.teamClaimFailure(tx, team.ID)
		}

		res = tx.Model(&models.Problem{}).
			Where("id = ? AND is_active = ? AND selected_count < max_teams", problem.ID, true).
			Update("selected_count", gorm.Expr("selected_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.slotClaimFailure(tx, problem.ID)
		}

		selection := models.Selection{
			TeamID:        team.ID,
			ProblemID:     problem.ID,
			SelectionTime: at,
			Status:        models.SelectionStatusActive,
		}
		if err := tx.Omit(clause.Associations).Create(&selection).Error; err != nil {
			return err
		}

		team.SelectedProblemID = &problem.ID
		team.SelectionTime = &at
		problem.SelectedCount++

		out.Selection = selection
		out.Team = team
		out.Problem = *problem
		return nil
	})
	if err != nil {
		return nil, classifyStoreError(ctx, "commit selection", err)
	}
	return &out, nil
}

// GetActiveByTeam returns the active selection of a team
func (r *SelectionRepository) GetActiveByTeam(ctx context.Context, teamID uuid.UUID) (*models.Selection, error) {
	var selection models.Selection
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, models.SelectionStatusActive).
		First(&selection).Error
	if err != nil {
		return nil, err
	}
	return &selection, nil
}

// CountActiveByProblem counts active selections for a problem straight from the ledger
func (r *SelectionRepository) CountActiveByProblem(ctx context.Context, problemID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Selection{}).
		Where("problem_id = ? AND status = ?", problemID, models.SelectionStatusActive).
		Count(&count).Error
	return count, err
}

func (r *SelectionRepository) applyTimeouts(tx *gorm.DB) error {
	// SET does not take bind parameters
	if r.opts.StatementTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", r.opts.StatementTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	if r.opts.LockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", r.opts.LockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// teamClaimFailure explains why the conditional team update matched no row
func (r *SelectionRepository) teamClaimFailure(tx *gorm.DB, teamID uuid.UUID) error {
	var team models.Team
	if err := tx.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return err
	}
	if !team.IsActive {
		return apperrors.ErrTeamNotFound
	}
	return apperrors.ErrAlreadySelected
}

// slotClaimFailure explains why the conditional slot update matched no row
func (r *SelectionRepository) slotClaimFailure(tx *gorm.DB, problemID uuid.UUID) error {
	var problem models.Problem
	if err := tx.First(&problem, "id = ?", problemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProblemNotFound
		}
		return err
	}
	if !problem.IsActive {
		return apperrors.ErrProblemNotFound
	}
	return apperrors.ErrCapacityExceeded
}

func findActiveProblem(tx *gorm.DB, ref string) (*models.Problem, error) {
	var problem models.Problem
	query := tx.Where("is_active = ?", true)
	if id, err := uuid.Parse(ref); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("problem_code = ?", ref)
	}
	if err := query.First(&problem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemNotFound
		}
		return nil, err
	}
	return &problem, nil
}
