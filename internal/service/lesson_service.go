package service

import (
	"context"

	"go.uber.org/zap"

	"lumina/internal/domain"
	"lumina/internal/generator"
	"lumina/internal/logger"
	"lumina/internal/validation"
)

// LessonService grades lesson quizzes and picks the follow-up lesson.
type LessonService interface {
	SubmitQuiz(ctx context.Context, userID, courseID, lessonID string, answers []int) (*domain.LessonResult, error)
	AdaptiveLesson(ctx context.Context, lessonID string, score, totalQuestions int) (*domain.Lesson, error)
}

type lessonService struct {
	courses   domain.CourseRepository
	engine    LessonEngine
	progress  ProgressService
	validator *validation.Validator
}

// NewLessonService creates a new instance of LessonService
func NewLessonService(courses domain.CourseRepository, engine LessonEngine, progress ProgressService) LessonService {
	return &lessonService{
		courses:   courses,
		engine:    engine,
		progress:  progress,
		validator: validation.NewValidator(),
	}
}

// SubmitQuiz grades the answers, awards XP and returns the adaptive lesson.
// A lesson without a quiz is graded out of one question.
func (s *lessonService) SubmitQuiz(ctx context.Context, userID, courseID, lessonID string, answers []int) (*domain.LessonResult, error) {
	course, err := s.courses.Get(ctx, userID, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}
	lesson := course.Lesson(lessonID)
	if lesson == nil {
		return nil, domain.NewLessonNotFoundError(courseID, lessonID)
	}
	if verrs := s.validator.ValidateAnswers(answers, len(lesson.Quiz)); len(verrs) > 0 {
		return nil, verrs
	}

	score := lesson.Grade(answers)
	total := len(lesson.Quiz)
	if total == 0 {
		total = 1
	}
	xp := domain.QuizXP(score)

	stats, err := s.progress.AwardXP(ctx, userID, xp)
	if err != nil {
		return nil, err
	}

	next, err := s.awaitLesson(ctx, lessonID, score, total)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz submitted",
		zap.String("user_id", userID),
		zap.String("course_id", courseID),
		zap.String("lesson_id", lessonID),
		zap.Int("score", score),
		zap.Int("total_questions", total),
		zap.String("next_lesson", next.Title),
	)
	return &domain.LessonResult{
		CourseID:       courseID,
		LessonID:       lessonID,
		Score:          score,
		TotalQuestions: total,
		Percentage:     generator.Percentage(score, total),
		Passed:         generator.Passed(score, total),
		XPEarned:       xp,
		Stats:          *stats,
		NextLesson:     next,
	}, nil
}

func (s *lessonService) AdaptiveLesson(ctx context.Context, lessonID string, score, totalQuestions int) (*domain.Lesson, error) {
	if verrs := s.validator.ValidateAdaptiveRequest(lessonID, score, totalQuestions); len(verrs) > 0 {
		return nil, verrs
	}
	return s.awaitLesson(ctx, lessonID, score, totalQuestions)
}

func (s *lessonService) awaitLesson(ctx context.Context, lessonID string, score, total int) (*domain.Lesson, error) {
	select {
	case lesson := <-s.engine.GenerateAdaptiveLessonAsync(lessonID, score, total):
		return lesson, nil
	case <-ctx.Done():
		return nil, domain.NewInternalError("Lesson generation was cancelled", ctx.Err())
	}
}
