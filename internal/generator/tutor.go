package generator

import (
	"strings"
	"time"
)

const DefaultTutorLatency = time.Second

// Tutor answers learner chat messages with canned, keyword-driven replies.
type Tutor struct {
	settings
}

func NewTutor(opts ...Option) *Tutor {
	return &Tutor{settings: newSettings(DefaultTutorLatency, opts)}
}

// Greeting is the first message shown when a chat opens.
func (t *Tutor) Greeting() string {
	return tutorGreeting
}

// Reply never hands out answers. Requests for an answer or solution take
// precedence over requests for help.
func (t *Tutor) Reply(message string) string {
	t.wait()

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "answer"), strings.Contains(lower, "solution"):
		return tutorRefusal
	case strings.Contains(lower, "explain"), strings.Contains(lower, "help"):
		return tutorClarify
	default:
		return tutorDefault
	}
}
