package testutils

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"problem-selection-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTeamPassword is the plain-text password behind TeamFactory's hash
const DefaultTeamPassword = "password123"

var (
	codeSeq atomic.Int64

	passwordHashOnce sync.Once
	passwordHash     string
)

// defaultPasswordHash hashes DefaultTeamPassword once, at the cheapest cost
func defaultPasswordHash() string {
	passwordHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultTeamPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		passwordHash = string(hash)
	})
	return passwordHash
}

func nextCode(prefix string) string {
	return fmt.Sprintf("%s%04d", prefix, codeSeq.Add(1))
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates an active test Team with a unique code and no selection
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamCode:     nextCode("TEAM"),
		TeamName:     "Test Team",
		PasswordHash: defaultPasswordHash(),
		Leader:       "John Doe",
		Contact:      "john.doe@test.com",
		Members:      models.StringList{"John Doe", "Jane Smith"},
		IsActive:     true,
	}
}

// WithCode sets a custom team code
func (f *TeamFactory) WithCode(code string) *models.Team {
	team := f.Create()
	team.TeamCode = code
	return team
}

// Inactive creates a team that may not log in or select
func (f *TeamFactory) Inactive() *models.Team {
	team := f.Create()
	team.IsActive = false
	return team
}

// ProblemFactory provides methods to create test Problem data
type ProblemFactory struct{}

// NewProblemFactory creates a new ProblemFactory
func NewProblemFactory() *ProblemFactory {
	return &ProblemFactory{}
}

// Create creates an active test Problem with two open slots
func (f *ProblemFactory) Create() *models.Problem {
	return &models.Problem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProblemCode: nextCode("PS"),
		Title:       "Test Problem",
		Description: "A test problem statement",
		Category:    models.CategoryWebDevelopment,
		Difficulty:  models.DifficultyMedium,
		MaxTeams:    2,
		IsActive:    true,
		Tags:        models.StringList{"Test"},
	}
}

// WithCapacity sets how many teams may select the problem
func (f *ProblemFactory) WithCapacity(maxTeams int) *models.Problem {
	problem := f.Create()
	problem.MaxTeams = maxTeams
	return problem
}

// Inactive creates a problem hidden from listings and closed to selection
func (f *ProblemFactory) Inactive() *models.Problem {
	problem := f.Create()
	problem.IsActive = false
	return problem
}
