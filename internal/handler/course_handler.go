package handler

import (
	"github.com/gofiber/fiber/v2"

	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/middleware"
	"lumina/internal/service"
)

// CourseHandler handles course generation and enrolled courses
type CourseHandler struct {
	courses service.CourseService
}

func NewCourseHandler(courses service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// GetCatalog godoc
// @Summary List curated subjects and dictionary entries
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /catalog [get]
func (h *CourseHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(h.courses.CatalogSummary())
}

// ClassifyTopic godoc
// @Summary Classify a topic
// @Description Reports the tier and catalog key a topic resolves to
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param topic query string true "Topic"
// @Success 200 {object} dto.ClassificationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /topics/classify [get]
func (h *CourseHandler) ClassifyTopic(c *fiber.Ctx) error {
	topic, _ := c.Locals(middleware.ValidatedTopicKey).(string)
	if topic == "" {
		topic = c.Query("topic")
	}
	cls, err := h.courses.Classify(topic)
	if err != nil {
		return err
	}
	return c.JSON(dto.ClassificationResponse{
		Topic: topic,
		Tier:  int(cls.Tier),
		Level: cls.Tier.String(),
		Key:   cls.Key,
	})
}

// GenerateCourse godoc
// @Summary Generate a course
// @Description Generates a course for the topic and enrolls the learner in it
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.GenerateCourseRequest true "Topic"
// @Success 201 {object} domain.Course
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /courses [post]
func (h *CourseHandler) GenerateCourse(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.GenerateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	course, err := h.courses.GenerateAndEnroll(c.UserContext(), userID, req.Topic)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// ListCourses godoc
// @Summary List enrolled courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.CourseListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	courses, err := h.courses.ListCourses(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.CourseListResponse{Courses: courses, Total: len(courses)})
}

// GetCourse godoc
// @Summary Get an enrolled course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path string true "Course ID"
// @Success 200 {object} domain.Course
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{courseID} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	course, err := h.courses.GetCourse(c.UserContext(), userID, c.Params("courseID"))
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// ClearCourses godoc
// @Summary Remove all enrolled courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /courses [delete]
func (h *CourseHandler) ClearCourses(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	if err := h.courses.ClearCourses(c.UserContext(), userID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Courses cleared"})
}
