package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"problem-selection-backend/internal/database/models"
	apperrors "problem-selection-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService issues and verifies team tokens
type AuthService struct {
	config   *AuthConfig
	teamRepo TeamRepository
	now      func() time.Time
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// AuthClaims represents JWT token claims. Subject carries the team's UUID.
type AuthClaims struct {
	TeamID               string `json:"team_id" example:"TEAM001"`
	TeamName             string `json:"team_name" example:"Code Warriors"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TeamIdentity is the verified caller attached to authenticated requests
type TeamIdentity struct {
	ID       uuid.UUID `json:"id"`
	TeamCode string    `json:"teamId"`
	TeamName string    `json:"teamName"`
	IsActive bool      `json:"isActive"`
}

// LoginRequest represents the login body
type LoginRequest struct {
	TeamID   string `json:"teamId" binding:"required" example:"TEAM001"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TeamProfile is the team view returned on login
type TeamProfile struct {
	TeamID          string          `json:"teamId"`
	TeamName        string          `json:"teamName"`
	Leader          string          `json:"leader"`
	Contact         string          `json:"contact"`
	Members         []string        `json:"members"`
	SelectedProblem *models.Problem `json:"selectedProblem"`
	SelectionTime   *time.Time      `json:"selectionTime"`
}

// LoginResponse represents the response of a successful login
type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"tokenType" example:"Bearer"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Team      TeamProfile `json:"team"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, teamRepo TeamRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		teamRepo: teamRepo,
		now:      time.Now,
	}, nil
}

// Login checks a team's password and issues a token
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req.TeamID == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("", "team ID and password are required")
	}

	team, err := s.teamRepo.GetWithSelectedProblem(ctx, req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if !CheckPassword(team.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !team.IsActive {
		return nil, apperrors.ErrTeamInactive
	}

	token, expiresAt, err := s.GenerateJWT(team)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		Team: TeamProfile{
			TeamID:          team.TeamCode,
			TeamName:        team.TeamName,
			Leader:          team.Leader,
			Contact:         team.Contact,
			Members:         []string(team.Members),
			SelectedProblem: team.SelectedProblem,
			SelectionTime:   team.SelectionTime,
		},
	}, nil
}

// GenerateJWT creates a signed token for the team
func (s *AuthService) GenerateJWT(team *models.Team) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.TokenExpiry)
	claims := &AuthClaims{
		TeamID:   team.TeamCode,
		TeamName: team.TeamName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   team.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ResolveIdentity verifies a bearer token and loads the team it names.
// Tokens for teams that no longer exist or were deactivated are rejected.
func (s *AuthService) ResolveIdentity(ctx context.Context, tokenString string) (*TeamIdentity, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotRegistered
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if !team.IsActive {
		return nil, apperrors.ErrTeamInactive
	}

	return &TeamIdentity{
		ID:       team.ID,
		TeamCode: team.TeamCode,
		TeamName: team.TeamName,
		IsActive: team.IsActive,
	}, nil
}
