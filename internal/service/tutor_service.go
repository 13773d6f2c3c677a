package service

import (
	"context"
	"strings"

	"lumina/internal/domain"
	"lumina/internal/validation"
)

// TutorService is the learner's chat companion.
type TutorService interface {
	Greeting() string
	Reply(ctx context.Context, message string) (string, error)
}

type tutorService struct {
	engine    TutorEngine
	validator *validation.Validator
}

func NewTutorService(engine TutorEngine) TutorService {
	return &tutorService{engine: engine, validator: validation.NewValidator()}
}

func (s *tutorService) Greeting() string {
	return s.engine.Greeting()
}

func (s *tutorService) Reply(ctx context.Context, message string) (string, error) {
	if verrs := s.validator.ValidateTutorMessage(message); len(verrs) > 0 {
		return "", verrs
	}

	ch := make(chan string, 1)
	go func() {
		ch <- s.engine.Reply(strings.TrimSpace(message))
	}()
	select {
	case reply := <-ch:
		return reply, nil
	case <-ctx.Done():
		return "", domain.NewInternalError("Tutor reply was cancelled", ctx.Err())
	}
}
