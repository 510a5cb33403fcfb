package auth

import (
	"context"

	"problem-selection-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/auth_mocks.go -package=mocks

// TeamRepository defines the team lookups needed by the auth service
type TeamRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetWithSelectedProblem(ctx context.Context, code string) (*models.Team, error)
}

// AuthServiceInterface defines the interface for the auth service
type AuthServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ResolveIdentity(ctx context.Context, tokenString string) (*TeamIdentity, error)
}
