package handler

import (
	"github.com/gofiber/fiber/v2"

	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/middleware"
	"lumina/internal/service"
)

// ProfileHandler serves the learner's profile and gamification stats
type ProfileHandler struct {
	profiles service.ProfileService
	progress service.ProgressService
}

func NewProfileHandler(profiles service.ProfileService, progress service.ProgressService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, progress: progress}
}

// GetProfile godoc
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.UserProfile
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	profile, err := h.profiles.GetProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// SaveProfile godoc
// @Summary Save onboarding answers
// @Description Stores the onboarding answers and marks the profile onboarded
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ProfileRequest true "Onboarding answers"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	profile, err := h.profiles.SaveProfile(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetStats godoc
// @Summary Get my XP, level and streak
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /stats [get]
func (h *ProfileHandler) GetStats(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	stats, err := h.progress.GetStats(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.StatsResponse{
		XP:         stats.XP,
		Level:      stats.Level,
		Streak:     stats.Streak,
		LastActive: stats.LastActive,
		NextLevel:  stats.Level*domain.XPPerLevel - stats.XP,
	})
}
