package adapter

import (
	"context"
	"sync"

	"lumina/internal/domain"
)

type enrolledCourses struct {
	order []string
	byID  map[string]*domain.Course
}

// MemoryCourseStore is the default domain.CourseRepository. It stores deep
// copies, so callers may keep mutating the courses they pass in or get back.
type MemoryCourseStore struct {
	mu    sync.RWMutex
	users map[string]*enrolledCourses
}

func NewMemoryCourseStore() *MemoryCourseStore {
	return &MemoryCourseStore{users: make(map[string]*enrolledCourses)}
}

func (s *MemoryCourseStore) Enroll(_ context.Context, userID string, course *domain.Course) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		u = &enrolledCourses{byID: make(map[string]*domain.Course)}
		s.users[userID] = u
	}
	if _, exists := u.byID[course.ID]; exists {
		return false, nil
	}
	u.byID[course.ID] = course.Clone()
	u.order = append(u.order, course.ID)
	return true, nil
}

func (s *MemoryCourseStore) List(_ context.Context, userID string) ([]*domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return []*domain.Course{}, nil
	}
	out := make([]*domain.Course, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, u.byID[id].Clone())
	}
	return out, nil
}

func (s *MemoryCourseStore) Get(_ context.Context, userID, courseID string) (*domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return u.byID[courseID].Clone(), nil
}

func (s *MemoryCourseStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.users, userID)
	s.mu.Unlock()
	return nil
}
