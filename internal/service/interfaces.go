package service

import (
	"context"

	"problem-selection-backend/internal/auth"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SelectionServiceInterface defines the interface for the selection service
type SelectionServiceInterface interface {
	SelectProblem(ctx context.Context, identity *auth.TeamIdentity, req *SelectProblemRequest) (*SelectionResponse, error)
}

// ProblemServiceInterface defines the interface for problem service
type ProblemServiceInterface interface {
	ListProblems(ctx context.Context, category, difficulty string) (*ProblemListResponse, error)
	GetProblem(ctx context.Context, ref string) (*ProblemResponse, error)
	GetAvailability(ctx context.Context, ref string) (*AvailabilityResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetTeamDetails(ctx context.Context, identity *auth.TeamIdentity, teamCode string) (*TeamResponse, error)
	ListTeams(ctx context.Context) (*TeamListResponse, error)
}
