package validation

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"lumina/internal/domain"
)

const (
	MaxTopicLength   = 200
	MaxMessageLength = 2000
	MaxNameLength    = 100
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopic checks a course topic and returns it trimmed.
func (v *Validator) ValidateTopic(topic string) (string, domain.ValidationErrors) {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("topic")}
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxTopicLength {
		return "", domain.ValidationErrors{domain.NewOutOfRangeError("topic", n, 1, MaxTopicLength)}
	}
	return trimmed, nil
}

// ValidateAdaptiveRequest validates the inputs of an adaptive lesson request
func (v *Validator) ValidateAdaptiveRequest(lessonID string, score, totalQuestions int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(lessonID) == "" {
		errors = append(errors, domain.NewMissingFieldError("lesson_id"))
	}
	if totalQuestions < 1 {
		errors = append(errors, domain.NewOutOfRangeError("total_questions", totalQuestions, 1, 1<<31-1))
		return errors
	}
	if score < 0 || score > totalQuestions {
		errors = append(errors, domain.NewOutOfRangeError("score", score, 0, totalQuestions))
	}

	return errors
}

// ValidateAnswers checks submitted answers against a quiz of quizLen questions.
// Answers may be fewer than the questions; unanswered questions count as wrong.
func (v *Validator) ValidateAnswers(answers []int, quizLen int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(answers) > quizLen {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(answers), 0, quizLen))
	}
	for _, a := range answers {
		if a < 0 {
			errors = append(errors, domain.NewInvalidFormatError("answers", a))
			break
		}
	}

	return errors
}

// ValidateLogin validates the login request
func (v *Validator) ValidateLogin(name, email string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	name = strings.TrimSpace(name)
	if name == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if n := utf8.RuneCountInString(name); n > MaxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", n, 1, MaxNameLength))
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(email) {
		errors = append(errors, domain.NewInvalidFormatError("email", email))
	}

	return errors
}

// ValidateProfile validates the onboarding answers of a profile
func (v *Validator) ValidateProfile(p *domain.UserProfile) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(p.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if n := utf8.RuneCountInString(p.Name); n > MaxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", n, 1, MaxNameLength))
	}
	if len(p.Interests) > 20 {
		errors = append(errors, domain.NewOutOfRangeError("interests", len(p.Interests), 0, 20))
	}

	return errors
}

// ValidateTutorMessage validates a chat message sent to the tutor
func (v *Validator) ValidateTutorMessage(message string) domain.ValidationErrors {
	if strings.TrimSpace(message) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("message")}
	}
	if n := utf8.RuneCountInString(message); n > MaxMessageLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("message", n, 1, MaxMessageLength)}
	}
	return nil
}

// isValidEmail accepts a bare address without a display name
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
