package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"problem-selection-backend/internal/auth"
	"problem-selection-backend/internal/config"
	"problem-selection-backend/internal/database"
	"problem-selection-backend/internal/database/models"
	"problem-selection-backend/internal/repository"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	TeamID   string   `yaml:"team_id"`
	TeamName string   `yaml:"team_name"`
	Password string   `yaml:"password"`
	Leader   string   `yaml:"leader"`
	Contact  string   `yaml:"contact"`
	Members  []string `yaml:"members"`
	Inactive bool     `yaml:"inactive,omitempty"`
}

type ProblemData struct {
	ProblemID           string   `yaml:"problem_id"`
	Title               string   `yaml:"title"`
	Description         string   `yaml:"description"`
	DetailedDescription string   `yaml:"detailed_description"`
	Category            string   `yaml:"category"`
	Difficulty          string   `yaml:"difficulty"`
	MaxTeams            int      `yaml:"max_teams,omitempty"`
	Tags                []string `yaml:"tags"`
	Inactive            bool     `yaml:"inactive,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type ProblemsFile struct {
	Problems []ProblemData `yaml:"problems"`
}

const defaultMaxTeams = 2

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding teams and problems YAML files")
	reset := flag.Bool("reset", false, "delete all selections, teams and problems before loading")
	flag.Parse()

	log.Println("Loading initial data from YAML files...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *reset {
		if err := resetData(db); err != nil {
			log.Fatalf("Failed to reset data: %v", err)
		}
		log.Println("Cleared existing selections, teams and problems")
	}

	if err := loadDataFromYAMLFiles(db, *dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including "record not found" during loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func resetData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"selections", "teams", "problems"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	problems, err := loadProblems(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load problems: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	ctx := context.Background()
	problemRepo := repository.NewProblemRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Problems first: teams reference them once they select
	problemCreated := 0
	for _, problemData := range problems {
		created, err := createProblem(ctx, problemRepo, problemData)
		if err != nil {
			return fmt.Errorf("failed to create problem %s: %w", problemData.ProblemID, err)
		}
		if created {
			problemCreated++
		}
	}
	log.Printf("Problems: %d created, %d total", problemCreated, len(problems))

	teamCreated := 0
	for _, teamData := range teams {
		created, err := upsertTeam(ctx, teamRepo, teamData)
		if err != nil {
			return fmt.Errorf("failed to load team %s: %w", teamData.TeamID, err)
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d updated", teamCreated, len(teams)-teamCreated)

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := walkYAML(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allTeams = append(allTeams, file.Teams...)
		return nil
	})

	return allTeams, err
}

func loadProblems(dataDir string) ([]ProblemData, error) {
	var allProblems []ProblemData

	err := walkYAML(dataDir, "problems", func(data []byte) error {
		var file ProblemsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allProblems = append(allProblems, file.Problems...)
		return nil
	})

	return allProblems, err
}

func walkYAML(dataDir, kind string, decode func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := decode(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	})
}

func createProblem(ctx context.Context, problems *repository.ProblemRepository, problemData ProblemData) (bool, error) {
	existing, err := problems.GetByCode(ctx, problemData.ProblemID)
	if err == nil {
		// capacity and counters are left alone; only the active flag follows the file
		if err := problems.SetActive(ctx, existing.ID, !problemData.Inactive); err != nil {
			return false, fmt.Errorf("failed to update problem: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query problem: %w", err)
	}

	category := models.Category(problemData.Category)
	if !category.IsValid() {
		return false, fmt.Errorf("invalid category %q", problemData.Category)
	}
	difficulty := models.Difficulty(problemData.Difficulty)
	if !difficulty.IsValid() {
		return false, fmt.Errorf("invalid difficulty %q", problemData.Difficulty)
	}
	maxTeams := problemData.MaxTeams
	if maxTeams == 0 {
		maxTeams = defaultMaxTeams
	}

	problem := &models.Problem{
		ProblemCode:         problemData.ProblemID,
		Title:               problemData.Title,
		Description:         problemData.Description,
		DetailedDescription: problemData.DetailedDescription,
		Category:            category,
		Difficulty:          difficulty,
		MaxTeams:            maxTeams,
		IsActive:            !problemData.Inactive,
		Tags:                models.StringList(problemData.Tags),
	}
	if err := problems.Create(ctx, problem); err != nil {
		return false, fmt.Errorf("failed to create problem: %w", err)
	}
	return true, nil
}

// upsertTeam creates the team or refreshes the roster of an existing one. A
// selection already made is never touched.
func upsertTeam(ctx context.Context, teams *repository.TeamRepository, teamData TeamData) (bool, error) {
	if teamData.Password == "" {
		return false, errors.New("password is required")
	}
	hash, err := auth.HashPassword(teamData.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	existing, err := teams.GetByCode(ctx, teamData.TeamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query team: %w", err)
	}

	team := &models.Team{
		TeamCode:     teamData.TeamID,
		TeamName:     teamData.TeamName,
		PasswordHash: hash,
		Leader:       teamData.Leader,
		Contact:      teamData.Contact,
		Members:      models.StringList(teamData.Members),
		IsActive:     !teamData.Inactive,
	}
	if existing != nil {
		team.ID = existing.ID
		if err := teams.Update(ctx, team); err != nil {
			return false, fmt.Errorf("failed to update team: %w", err)
		}
		if err := teams.SetActive(ctx, team.ID, team.IsActive); err != nil {
			return false, fmt.Errorf("failed to update team: %w", err)
		}
		return false, nil
	}

	if err := teams.Create(ctx, team); err != nil {
		return false, fmt.Errorf("failed to create team: %w", err)
	}
	return true, nil
}
