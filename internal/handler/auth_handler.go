package handler

import (
	"github.com/gofiber/fiber/v2"

	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/middleware"
	"lumina/internal/service"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Log in
// @Description Creates the learner profile on first login and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	token, user, err := h.authService.Login(c.UserContext(), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{AccessToken: token, TokenType: "Bearer", User: user})
}

// Logout godoc
// @Summary Log out
// @Description Removes the learner's enrolled courses and profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.UserContext(), userID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}
