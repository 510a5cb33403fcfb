package models

// Category classifies a problem statement
type Category string

const (
	CategoryWebDevelopment Category = "Web Development"
	CategoryAIML           Category = "AI/ML"
	CategoryMobileApp      Category = "Mobile App"
	CategoryBlockchain     Category = "Blockchain"
	CategoryIoT            Category = "IoT"
	CategoryOther          Category = "Other"
)

// Difficulty rates a problem statement
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// SelectionStatus is the lifecycle state of a selection ledger entry
type SelectionStatus string

const (
	SelectionStatusActive    SelectionStatus = "active"
	SelectionStatusCancelled SelectionStatus = "cancelled"
)

// IsValid checks if the Category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryWebDevelopment, CategoryAIML, CategoryMobileApp, CategoryBlockchain, CategoryIoT, CategoryOther:
		return true
	}
	return false
}

// IsValid checks if the Difficulty is valid
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// IsValid checks if the SelectionStatus is valid
func (s SelectionStatus) IsValid() bool {
	switch s {
	case SelectionStatusActive, SelectionStatusCancelled:
		return true
	}
	return false
}
