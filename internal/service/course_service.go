package service

import (
	"context"

	"go.uber.org/zap"

	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/logger"
	"lumina/internal/validation"
)

// CourseService generates courses and manages the courses a learner is enrolled in.
type CourseService interface {
	GenerateAndEnroll(ctx context.Context, userID, topic string) (*domain.Course, error)
	ListCourses(ctx context.Context, userID string) ([]*domain.Course, error)
	GetCourse(ctx context.Context, userID, courseID string) (*domain.Course, error)
	ClearCourses(ctx context.Context, userID string) error
	Classify(topic string) (domain.Classification, error)
	CatalogSummary() *dto.CatalogResponse
}

type courseService struct {
	engine    CourseEngine
	catalog   CatalogIndex
	courses   domain.CourseRepository
	validator *validation.Validator
}

// NewCourseService creates a new instance of CourseService
func NewCourseService(engine CourseEngine, cat CatalogIndex, courses domain.CourseRepository) CourseService {
	return &courseService{
		engine:    engine,
		catalog:   cat,
		courses:   courses,
		validator: validation.NewValidator(),
	}
}

// GenerateAndEnroll builds a course for the trimmed topic and enrolls the
// learner in it. Cancelling ctx abandons the pending generation.
func (s *courseService) GenerateAndEnroll(ctx context.Context, userID, topic string) (*domain.Course, error) {
	trimmed, verrs := s.validator.ValidateTopic(topic)
	if len(verrs) > 0 {
		return nil, verrs
	}

	var course *domain.Course
	select {
	case course = <-s.engine.GenerateCourseAsync(trimmed):
	case <-ctx.Done():
		return nil, domain.NewInternalError("Course generation was cancelled", ctx.Err())
	}

	inserted, err := s.courses.Enroll(ctx, userID, course)
	if err != nil {
		return nil, domain.NewInternalError("Failed to enroll course", err)
	}

	logger.Get().Info("Course generated",
		zap.String("user_id", userID),
		zap.String("topic", trimmed),
		zap.String("course_id", course.ID),
		zap.Int("lessons", len(course.Lessons)),
		zap.Bool("inserted", inserted),
	)
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context, userID string) ([]*domain.Course, error) {
	courses, err := s.courses.List(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list courses", err)
	}
	if courses == nil {
		courses = []*domain.Course{}
	}
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, userID, courseID string) (*domain.Course, error) {
	course, err := s.courses.Get(ctx, userID, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}
	return course, nil
}

func (s *courseService) ClearCourses(ctx context.Context, userID string) error {
	if err := s.courses.Clear(ctx, userID); err != nil {
		return domain.NewInternalError("Failed to clear courses", err)
	}
	logger.Get().Info("Enrolled courses cleared", zap.String("user_id", userID))
	return nil
}

func (s *courseService) Classify(topic string) (domain.Classification, error) {
	trimmed, verrs := s.validator.ValidateTopic(topic)
	if len(verrs) > 0 {
		return domain.Classification{}, verrs
	}
	cls := s.engine.Classify(trimmed)
	logger.Get().Debug("Topic classified",
		zap.String("topic", trimmed),
		zap.Stringer("tier", cls.Tier),
		zap.String("key", cls.Key),
	)
	return cls, nil
}

func (s *courseService) CatalogSummary() *dto.CatalogResponse {
	return &dto.CatalogResponse{
		Subjects:   s.catalog.Tags(),
		Dictionary: s.catalog.Keys(),
	}
}
