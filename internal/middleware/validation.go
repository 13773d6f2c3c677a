package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lumina/internal/domain"
	"lumina/internal/validation"
)

const (
	ValidatedTopicKey    = "validated_topic"
	ValidatedCourseIDKey = "validated_course_id"
	ValidatedLessonIDKey = "validated_lesson_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateTopicQuery validates the topic query parameter and stores it trimmed.
func (vm *ValidationMiddleware) ValidateTopicQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topic, errs := vm.validator.ValidateTopic(c.Query("topic"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedTopicKey, topic)
		return c.Next()
	}
}

// ValidateLessonParams requires non-empty courseID and lessonID path parameters.
func (vm *ValidationMiddleware) ValidateLessonParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors
		courseID := strings.TrimSpace(c.Params("courseID"))
		if courseID == "" {
			errs = append(errs, domain.NewMissingFieldError("course_id"))
		}
		lessonID := strings.TrimSpace(c.Params("lessonID"))
		if lessonID == "" {
			errs = append(errs, domain.NewMissingFieldError("lesson_id"))
		}
		if len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedCourseIDKey, courseID)
		c.Locals(ValidatedLessonIDKey, lessonID)
		return c.Next()
	}
}
