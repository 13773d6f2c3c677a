package service

import (
	"lumina/internal/catalog"
	"lumina/internal/domain"
	"lumina/internal/generator"
)

// CourseEngine is the part of the course generator the services depend on.
type CourseEngine interface {
	Classify(topic string) domain.Classification
	GenerateCourseAsync(topic string) <-chan *domain.Course
}

// LessonEngine produces adaptive follow-up lessons.
type LessonEngine interface {
	GenerateAdaptiveLessonAsync(lessonID string, score, totalQuestions int) <-chan *domain.Lesson
}

// TutorEngine answers chat messages. Reply may block for the simulated latency.
type TutorEngine interface {
	Greeting() string
	Reply(message string) string
}

// CatalogIndex lists what the content catalog knows about.
type CatalogIndex interface {
	Tags() []string
	Keys() []string
}

var (
	_ CourseEngine = (*generator.CourseGenerator)(nil)
	_ LessonEngine = (*generator.AdaptiveGenerator)(nil)
	_ TutorEngine  = (*generator.Tutor)(nil)
	_ CatalogIndex = (*catalog.Catalog)(nil)
)
