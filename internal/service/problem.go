package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"problem-selection-backend/internal/database/models"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemService provides read access to the problem pool
type ProblemService struct {
	problemRepo repository.ProblemRepositoryInterface
}

// Ensure ProblemService implements ProblemServiceInterface
var _ ProblemServiceInterface = (*ProblemService)(nil)

// NewProblemService creates a new ProblemService
func NewProblemService(problemRepo repository.ProblemRepositoryInterface) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

// SelectedByTeam is a team holding a slot on a problem
type SelectedByTeam struct {
	TeamID   string `json:"teamId" example:"TEAM001"`
	TeamName string `json:"teamName" example:"Code Warriors"`
}

// ProblemResponse represents a problem in API responses
type ProblemResponse struct {
	ID                  uuid.UUID         `json:"id"`
	ProblemID           string            `json:"problemId" example:"PS001"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	DetailedDescription string            `json:"detailedDescription"`
	Category            models.Category   `json:"category" example:"AI/ML"`
	Difficulty          models.Difficulty `json:"difficulty" example:"Hard"`
	MaxTeams            int               `json:"maxTeams" example:"2"`
	SelectedCount       int               `json:"selectedCount" example:"1"`
	SlotsAvailable      int               `json:"slotsAvailable" example:"1"`
	IsAvailable         bool              `json:"isAvailable" example:"true"`
	Tags                []string          `json:"tags"`
	SelectedBy          []SelectedByTeam  `json:"selectedBy"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// ProblemListResponse represents the list of active problems
type ProblemListResponse struct {
	Count    int               `json:"count"`
	Problems []ProblemResponse `json:"problems"`
}

// AvailabilityResponse represents the remaining capacity of a problem
type AvailabilityResponse struct {
	ProblemID      string `json:"problemId" example:"PS001"`
	IsAvailable    bool   `json:"isAvailable" example:"false"`
	SlotsAvailable int    `json:"slotsAvailable" example:"0"`
	MaxTeams       int    `json:"maxTeams" example:"2"`
	SelectedCount  int    `json:"selectedCount" example:"2"`
}

// ListProblems returns active problems, optionally filtered by category and difficulty
func (s *ProblemService) ListProblems(ctx context.Context, category, difficulty string) (*ProblemListResponse, error) {
	filter := repository.ProblemFilter{}
	if category != "" {
		filter.Category = models.Category(category)
		if !filter.Category.IsValid() {
			return nil, apperrors.NewValidationError("category", "is invalid")
		}
	}
	if difficulty != "" {
		filter.Difficulty = models.Difficulty(difficulty)
		if !filter.Difficulty.IsValid() {
			return nil, apperrors.NewValidationError("difficulty", "is invalid")
		}
	}

	problems, err := s.problemRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	ids := make([]uuid.UUID, len(problems))
	for i := range problems {
		ids[i] = problems[i].ID
	}
	selectedBy, err := s.selectedByMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]ProblemResponse, len(problems))
	for i := range problems {
		responses[i] = toProblemResponse(&problems[i], selectedBy[problems[i].ID])
	}

	return &ProblemListResponse{
		Count:    len(responses),
		Problems: responses,
	}, nil
}

// GetProblem returns an active problem by UUID or problem ID
func (s *ProblemService) GetProblem(ctx context.Context, ref string) (*ProblemResponse, error) {
	problem, err := s.getActive(ctx, ref)
	if err != nil {
		return nil, err
	}

	selectedBy, err := s.selectedByMap(ctx, []uuid.UUID{problem.ID})
	if err != nil {
		return nil, err
	}

	resp := toProblemResponse(problem, selectedBy[problem.ID])
	return &resp, nil
}

// GetAvailability returns the remaining capacity of an active problem
func (s *ProblemService) GetAvailability(ctx context.Context, ref string) (*AvailabilityResponse, error) {
	problem, err := s.getActive(ctx, ref)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResponse{
		ProblemID:      problem.ProblemCode,
		IsAvailable:    problem.IsAvailable(),
		SlotsAvailable: problem.SlotsAvailable(),
		MaxTeams:       problem.MaxTeams,
		SelectedCount:  problem.SelectedCount,
	}, nil
}

// getActive loads a problem by reference; inactive problems are reported as not found
func (s *ProblemService) getActive(ctx context.Context, ref string) (*models.Problem, error) {
	if ref == "" {
		return nil, apperrors.NewValidationError("id", "is required")
	}

	problem, err := s.problemRepo.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemNotFound
		}
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if !problem.IsActive {
		return nil, apperrors.ErrProblemNotFound
	}
	return problem, nil
}

func (s *ProblemService) selectedByMap(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]SelectedByTeam, error) {
	rows, err := s.problemRepo.GetSelectedTeams(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load selecting teams: %w", err)
	}

	out := make(map[uuid.UUID][]SelectedByTeam, len(ids))
	for _, row := range rows {
		out[row.ProblemID] = append(out[row.ProblemID], SelectedByTeam{
			TeamID:   row.TeamCode,
			TeamName: row.TeamName,
		})
	}
	return out, nil
}

func toProblemResponse(p *models.Problem, selectedBy []SelectedByTeam) ProblemResponse {
	if selectedBy == nil {
		selectedBy = []SelectedByTeam{}
	}
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ProblemResponse{
		ID:                  p.ID,
		ProblemID:           p.ProblemCode,
		Title:               p.Title,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		Category:            p.Category,
		Difficulty:          p.Difficulty,
		MaxTeams:            p.MaxTeams,
		SelectedCount:       p.SelectedCount,
		SlotsAvailable:      p.SlotsAvailable(),
		IsAvailable:         p.IsAvailable(),
		Tags:                tags,
		SelectedBy:          selectedBy,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
