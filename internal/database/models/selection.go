package models

import (
	"time"

	"github.com/google/uuid"
)

// Selection is the ledger entry binding one team to one problem. At most one
// active entry exists per team (partial unique index on team_id).
type Selection struct {
	BaseModel
	TeamID        uuid.UUID       `json:"teamRef" gorm:"type:uuid;not null;uniqueIndex:ux_selections_team_active,where:status = 'active'"`
	ProblemID     uuid.UUID       `json:"problemRef" gorm:"type:uuid;not null;index"`
	SelectionTime time.Time       `json:"selectionTime" gorm:"not null"`
	Status        SelectionStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Team    Team    `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	Problem Problem `json:"-" gorm:"foreignKey:ProblemID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Selection
func (Selection) TableName() string {
	return "selections"
}
