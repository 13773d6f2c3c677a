package dto

// ProfileRequest holds the onboarding answers saved to a profile.
// @Description Request body for saving onboarding answers
type ProfileRequest struct {
	Name      string   `json:"name" example:"Ada"`
	Age       string   `json:"age,omitempty" example:"25-34"`
	Interests []string `json:"interests,omitempty"`
	Level     string   `json:"level,omitempty" example:"beginner"`
	Language  string   `json:"language,omitempty" example:"en"`
}

// StatsResponse are the learner's gamification counters.
// @Description Learner XP, level and streak
type StatsResponse struct {
	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	Streak     int    `json:"streak"`
	LastActive string `json:"last_active,omitempty"`
	NextLevel  int    `json:"xp_to_next_level"`
}
