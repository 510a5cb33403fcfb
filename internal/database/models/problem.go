package models

// Problem is a capacity-limited problem statement. SelectedCount mirrors the
// number of active selections referencing the problem and never exceeds MaxTeams.
type Problem struct {
	BaseModel
	ProblemCode         string     `json:"problemId" gorm:"column:problem_code;uniqueIndex;not null;size:40" validate:"required,max=40"`
	Title               string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description         string     `json:"description" gorm:"type:text;not null" validate:"required"`
	DetailedDescription string     `json:"detailedDescription" gorm:"type:text"`
	Category            Category   `json:"category" gorm:"type:varchar(50);not null" validate:"required"`
	Difficulty          Difficulty `json:"difficulty" gorm:"type:varchar(20);not null" validate:"required"`
	MaxTeams            int        `json:"maxTeams" gorm:"not null;default:2;check:chk_problems_max_teams,max_teams > 0" validate:"gt=0"`
	SelectedCount       int        `json:"selectedCount" gorm:"not null;default:0;check:chk_problems_selected_count,selected_count >= 0 AND selected_count <= max_teams"`
	IsActive            bool       `json:"isActive" gorm:"not null"`
	Tags                StringList `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for Problem
func (Problem) TableName() string {
	return "problems"
}

// SlotsAvailable returns the remaining binding room
func (p *Problem) SlotsAvailable() int {
	slots := p.MaxTeams - p.SelectedCount
	if slots < 0 {
		return 0
	}
	return slots
}

// IsAvailable reports whether the problem is active and has a free slot
func (p *Problem) IsAvailable() bool {
	return p.IsActive && p.SelectedCount < p.MaxTeams
}
