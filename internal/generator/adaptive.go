package generator

import (
	"time"

	"go.uber.org/zap"

	"lumina/internal/domain"
)

const (
	DefaultAdaptiveLatency = 1500 * time.Millisecond

	// PassThreshold is the percentage at or above which the advanced lesson is chosen.
	PassThreshold = 60
)

// AdaptiveGenerator picks a follow-up lesson from a quiz score.
type AdaptiveGenerator struct {
	settings
}

func NewAdaptiveGenerator(opts ...Option) *AdaptiveGenerator {
	return &AdaptiveGenerator{settings: newSettings(DefaultAdaptiveLatency, opts)}
}

// Percentage returns score as a percentage of totalQuestions, or 0 when
// there are no questions.
func Percentage(score, totalQuestions int) float64 {
	if totalQuestions <= 0 {
		return 0
	}
	return float64(score) / float64(totalQuestions) * 100
}

// Passed reports whether the score reaches PassThreshold. The comparison
// stays in integers so that 3 of 5 is exactly 60%.
func Passed(score, totalQuestions int) bool {
	if totalQuestions <= 0 {
		return false
	}
	return score*100 >= PassThreshold*totalQuestions
}

// GenerateAdaptiveLesson waits for the configured latency and returns the
// remedial lesson below PassThreshold, the advanced lesson otherwise.
// lessonID does not influence the content.
func (g *AdaptiveGenerator) GenerateAdaptiveLesson(lessonID string, score, totalQuestions int) *domain.Lesson {
	g.wait()

	template := remedialLesson
	if Passed(score, totalQuestions) {
		template = advancedLesson
	}

	lesson := template
	lesson.ID = "adaptive-" + g.newID()
	lesson.Quiz = make([]domain.Question, len(template.Quiz))
	for i, q := range template.Quiz {
		q.Options = append([]string(nil), q.Options...)
		lesson.Quiz[i] = q
	}

	g.log.Debug("Adaptive lesson generated",
		zap.String("after_lesson_id", lessonID),
		zap.Int("score", score),
		zap.Int("total_questions", totalQuestions),
		zap.String("lesson", lesson.Title),
	)
	return &lesson
}

// GenerateAdaptiveLessonAsync delivers exactly one lesson on the returned channel.
func (g *AdaptiveGenerator) GenerateAdaptiveLessonAsync(lessonID string, score, totalQuestions int) <-chan *domain.Lesson {
	ch := make(chan *domain.Lesson, 1)
	go func() {
		ch <- g.GenerateAdaptiveLesson(lessonID, score, totalQuestions)
	}()
	return ch
}
