package handler

import (
	"github.com/gofiber/fiber/v2"

	"lumina/internal/middleware"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Course  *CourseHandler
	Lesson  *LessonHandler
	Tutor   *TutorHandler
}

// RegisterRoutes mounts the API under /api. Everything except login and
// the catalog goes through protected.
func RegisterRoutes(app *fiber.App, h Handlers, protected fiber.Handler) {
	vm := middleware.NewValidationMiddleware()
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", protected, h.Auth.Logout)

	api.Get("/catalog", h.Course.GetCatalog)

	api.Get("/profile", protected, h.Profile.GetProfile)
	api.Put("/profile", protected, h.Profile.SaveProfile)
	api.Get("/stats", protected, h.Profile.GetStats)

	api.Get("/topics/classify", protected, vm.ValidateTopicQuery(), h.Course.ClassifyTopic)

	courses := api.Group("/courses", protected)
	courses.Post("/", h.Course.GenerateCourse)
	courses.Get("/", h.Course.ListCourses)
	courses.Delete("/", h.Course.ClearCourses)
	courses.Get("/:courseID", h.Course.GetCourse)
	courses.Post("/:courseID/lessons/:lessonID/submit", vm.ValidateLessonParams(), h.Lesson.SubmitQuiz)

	api.Post("/lessons/adaptive", protected, h.Lesson.AdaptiveLesson)

	api.Get("/tutor", protected, h.Tutor.Greeting)
	api.Post("/tutor", protected, h.Tutor.Reply)
}
