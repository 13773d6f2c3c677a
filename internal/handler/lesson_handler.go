package handler

import (
	"github.com/gofiber/fiber/v2"

	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/middleware"
	"lumina/internal/service"
)

// LessonHandler handles quiz submission and adaptive lessons
type LessonHandler struct {
	lessons service.LessonService
}

func NewLessonHandler(lessons service.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// SubmitQuiz godoc
// @Summary Submit a lesson quiz
// @Description Grades the answers, awards XP and returns the adaptive follow-up lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path string true "Course ID"
// @Param lessonID path string true "Lesson ID"
// @Param request body dto.SubmitQuizRequest true "Answers"
// @Success 200 {object} domain.LessonResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{courseID}/lessons/{lessonID}/submit [post]
func (h *LessonHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	courseID, _ := c.Locals(middleware.ValidatedCourseIDKey).(string)
	lessonID, _ := c.Locals(middleware.ValidatedLessonIDKey).(string)
	result, err := h.lessons.SubmitQuiz(c.UserContext(), userID, courseID, lessonID, req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// AdaptiveLesson godoc
// @Summary Generate an adaptive lesson
// @Description Returns the remedial lesson below a 60% score and the advanced lesson otherwise
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AdaptiveLessonRequest true "Score"
// @Success 200 {object} domain.Lesson
// @Failure 400 {object} middleware.ErrorResponse
// @Router /lessons/adaptive [post]
func (h *LessonHandler) AdaptiveLesson(c *fiber.Ctx) error {
	var req dto.AdaptiveLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	lesson, err := h.lessons.AdaptiveLesson(c.UserContext(), req.LessonID, req.Score, req.TotalQuestions)
	if err != nil {
		return err
	}
	return c.JSON(lesson)
}
