package service

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"lumina/internal/domain"
	"lumina/internal/dto"
)

// --- MockCourseRepository ---
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Enroll(ctx context.Context, userID string, course *domain.Course) (bool, error) {
	args := m.Called(ctx, userID, course)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) Get(ctx context.Context, userID, courseID string) (*domain.Course, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- MockCourseEngine ---
type MockCourseEngine struct {
	mock.Mock
}

func (m *MockCourseEngine) Classify(topic string) domain.Classification {
	args := m.Called(topic)
	return args.Get(0).(domain.Classification)
}

func (m *MockCourseEngine) GenerateCourseAsync(topic string) <-chan *domain.Course {
	args := m.Called(topic)
	return args.Get(0).(<-chan *domain.Course)
}

// --- MockLessonEngine ---
type MockLessonEngine struct {
	mock.Mock
}

func (m *MockLessonEngine) GenerateAdaptiveLessonAsync(lessonID string, score, totalQuestions int) <-chan *domain.Lesson {
	args := m.Called(lessonID, score, totalQuestions)
	return args.Get(0).(<-chan *domain.Lesson)
}

// --- MockProgressService ---
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) AwardXP(ctx context.Context, userID string, amount int) (*domain.LearnerStats, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearnerStats), args.Error(1)
}

func (m *MockProgressService) GetStats(ctx context.Context, userID string) (*domain.LearnerStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearnerStats), args.Error(1)
}

// --- MockProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) EnsureProfile(ctx context.Context, userID, name, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) SaveProfile(ctx context.Context, userID string, req *dto.ProfileRequest) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) DeleteProfile(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCache) HSet(ctx context.Context, key string, fields map[string]string) error {
	args := m.Called(ctx, key, fields)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func courseChan(c *domain.Course) <-chan *domain.Course {
	ch := make(chan *domain.Course, 1)
	ch <- c
	return ch
}

func lessonChan(l *domain.Lesson) <-chan *domain.Lesson {
	ch := make(chan *domain.Lesson, 1)
	ch <- l
	return ch
}

// errorCode returns the code of a *domain.DomainError anywhere in err's chain.
func errorCode(err error) domain.ErrorCode {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
