package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a registered participant unit that may bind to exactly one problem.
// SelectedProblemID and SelectionTime are set together, once, by the selection
// transaction.
type Team struct {
	BaseModel
	TeamCode          string     `json:"teamId" gorm:"column:team_code;uniqueIndex;not null;size:40" validate:"required,max=40"`
	TeamName          string     `json:"teamName" gorm:"not null;size:120" validate:"required,max=120"`
	PasswordHash      string     `json:"-" gorm:"not null;size:100"`
	Leader            string     `json:"leader" gorm:"not null;size:120" validate:"required,max=120"`
	Contact           string     `json:"contact" gorm:"not null;size:200" validate:"required,max=200"`
	Members           StringList `json:"members" gorm:"type:jsonb;not null;default:'[]'"`
	SelectedProblemID *uuid.UUID `json:"selectedProblemId,omitempty" gorm:"type:uuid;index"`
	SelectionTime     *time.Time `json:"selectionTime,omitempty" gorm:"check:chk_teams_selection_pair,(selected_problem_id IS NULL) = (selection_time IS NULL)"`
	IsActive          bool       `json:"isActive" gorm:"not null"`

	// Relationships
	SelectedProblem *Problem `json:"selectedProblem,omitempty" gorm:"foreignKey:SelectedProblemID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasSelection reports whether the team is already bound to a problem
func (t *Team) HasSelection() bool {
	return t.SelectedProblemID != nil
}
