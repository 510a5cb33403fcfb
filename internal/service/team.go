package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"problem-selection-backend/internal/auth"
	"problem-selection-backend/internal/database/models"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService provides team-related business logic
type TeamService struct {
	teamRepo repository.TeamRepositoryInterface
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepositoryInterface) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// ProblemSummary is the short form of a problem embedded in team responses
type ProblemSummary struct {
	ID         uuid.UUID         `json:"id"`
	ProblemID  string            `json:"problemId" example:"PS001"`
	Title      string            `json:"title"`
	Category   models.Category   `json:"category"`
	Difficulty models.Difficulty `json:"difficulty"`
}

// TeamResponse represents a team's own view of itself
type TeamResponse struct {
	ID              uuid.UUID       `json:"id"`
	TeamID          string          `json:"teamId" example:"TEAM001"`
	TeamName        string          `json:"teamName" example:"Code Warriors"`
	Leader          string          `json:"leader"`
	Contact         string          `json:"contact"`
	Members         []string        `json:"members"`
	IsActive        bool            `json:"isActive"`
	SelectedProblem *ProblemSummary `json:"selectedProblem"`
	SelectionTime   *time.Time      `json:"selectionTime"`
}

// TeamSummary is the public view of a team in listings
type TeamSummary struct {
	TeamID          string          `json:"teamId" example:"TEAM001"`
	TeamName        string          `json:"teamName" example:"Code Warriors"`
	HasSelected     bool            `json:"hasSelected"`
	SelectedProblem *ProblemSummary `json:"selectedProblem"`
}

// TeamListResponse represents the list of all teams
type TeamListResponse struct {
	Count int           `json:"count"`
	Teams []TeamSummary `json:"teams"`
}

// GetTeamDetails returns a team's details. A team may only read its own record.
func (s *TeamService) GetTeamDetails(ctx context.Context, identity *auth.TeamIdentity, teamCode string) (*TeamResponse, error) {
	if teamCode == "" {
		return nil, apperrors.NewValidationError("teamId", "is required")
	}
	if identity == nil || identity.TeamCode != teamCode {
		return nil, apperrors.ErrAccessDenied
	}

	team, err := s.teamRepo.GetWithSelectedProblem(ctx, teamCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team.ID != identity.ID {
		return nil, apperrors.ErrAccessDenied
	}

	members := []string(team.Members)
	if members == nil {
		members = []string{}
	}

	return &TeamResponse{
		ID:              team.ID,
		TeamID:          team.TeamCode,
		TeamName:        team.TeamName,
		Leader:          team.Leader,
		Contact:         team.Contact,
		Members:         members,
		IsActive:        team.IsActive,
		SelectedProblem: toProblemSummary(team.SelectedProblem),
		SelectionTime:   team.SelectionTime,
	}, nil
}

// ListTeams returns every team with its selection, without contact details
func (s *TeamService) ListTeams(ctx context.Context) (*TeamListResponse, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	summaries := make([]TeamSummary, len(teams))
	for i := range teams {
		summaries[i] = TeamSummary{
			TeamID:          teams[i].TeamCode,
			TeamName:        teams[i].TeamName,
			HasSelected:     teams[i].HasSelection(),
			SelectedProblem: toProblemSummary(teams[i].SelectedProblem),
		}
	}

	return &TeamListResponse{
		Count: len(summaries),
		Teams: summaries,
	}, nil
}

func toProblemSummary(p *models.Problem) *ProblemSummary {
	if p == nil {
		return nil
	}
	return &ProblemSummary{
		ID:         p.ID,
		ProblemID:  p.ProblemCode,
		Title:      p.Title,
		Category:   p.Category,
		Difficulty: p.Difficulty,
	}
}
