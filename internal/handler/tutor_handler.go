package handler

import (
	"github.com/gofiber/fiber/v2"

	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/service"
)

// TutorHandler handles the tutor chat
type TutorHandler struct {
	tutor service.TutorService
}

func NewTutorHandler(tutor service.TutorService) *TutorHandler {
	return &TutorHandler{tutor: tutor}
}

// Greeting godoc
// @Summary Get the tutor greeting
// @Tags tutor
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.TutorGreetingResponse
// @Router /tutor [get]
func (h *TutorHandler) Greeting(c *fiber.Ctx) error {
	return c.JSON(dto.TutorGreetingResponse{Greeting: h.tutor.Greeting()})
}

// Reply godoc
// @Summary Ask the tutor
// @Tags tutor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.TutorRequest true "Message"
// @Success 200 {object} dto.TutorResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /tutor [post]
func (h *TutorHandler) Reply(c *fiber.Ctx) error {
	var req dto.TutorRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	reply, err := h.tutor.Reply(c.UserContext(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(dto.TutorResponse{Reply: reply})
}
