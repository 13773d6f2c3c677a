package domain

import "time"

// XPPerLevel is the amount of experience needed to advance one level.
const XPPerLevel = 1000

// UserProfile holds the learner's display name and onboarding answers.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       string    `json:"age,omitempty"`
	Interests []string  `json:"interests,omitempty"`
	Level     string    `json:"level,omitempty"`
	Language  string    `json:"language,omitempty"`
	Onboarded bool      `json:"onboarded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserProfile creates a profile that has not been through onboarding yet
func NewUserProfile(id, name, email string) *UserProfile {
	now := time.Now()
	return &UserProfile{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the profile
func (p *UserProfile) Validate() error {
	if p.ID == "" {
		return NewValidationError("profile id is required")
	}
	if p.Name == "" {
		return NewValidationError("name is required")
	}
	return nil
}

// LearnerStats are the gamification counters of one learner.
type LearnerStats struct {
	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	Streak     int    `json:"streak"`
	LastActive string `json:"last_active,omitempty"` // YYYY-MM-DD
}

// LevelForXP maps experience to a level, starting at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// QuizXP is the experience earned for finishing a quiz with the given score.
func QuizXP(score int) int {
	return 100 + score*50
}
