// Package generator synthesizes courses and follow-up lessons from the
// content catalog. It holds no state between calls; the only side effect is
// the simulated latency, which goes through an injectable Scheduler.
package generator

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"lumina/internal/catalog"
	"lumina/internal/classifier"
	"lumina/internal/domain"
)

const DefaultCourseLatency = 1500 * time.Millisecond

// CourseGenerator turns a topic into a course. It is safe for concurrent use.
type CourseGenerator struct {
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
	settings
}

func NewCourseGenerator(cat *catalog.Catalog, opts ...Option) *CourseGenerator {
	return &CourseGenerator{
		catalog:    cat,
		classifier: classifier.New(cat),
		settings:   newSettings(DefaultCourseLatency, opts),
	}
}

// Classify exposes the classification the generator would pick for topic.
func (g *CourseGenerator) Classify(topic string) domain.Classification {
	return g.classifier.Classify(topic)
}

// GenerateCourse waits for the configured latency, then builds the course.
// It always returns a course; unknown topics get the generic templates.
func (g *CourseGenerator) GenerateCourse(topic string) *domain.Course {
	g.wait()
	return g.Synthesize(topic)
}

// GenerateCourseAsync delivers exactly one course on the returned channel.
func (g *CourseGenerator) GenerateCourseAsync(topic string) <-chan *domain.Course {
	ch := make(chan *domain.Course, 1)
	go func() {
		ch <- g.GenerateCourse(topic)
	}()
	return ch
}

// Synthesize builds the course without any simulated latency.
func (g *CourseGenerator) Synthesize(topic string) *domain.Course {
	cls := g.classifier.Classify(topic)
	seed := g.newID()

	var course *domain.Course
	switch cls.Tier {
	case domain.TierSpecialized:
		subject, _ := g.catalog.Subject(cls.Key)
		course = specializedCourse(topic, seed, subject)
	case domain.TierDictionary:
		entry, _ := g.catalog.DictionaryEntry(cls.Key)
		course = dictionaryCourse(topic, seed, entry)
	default:
		course = heuristicCourse(topic, seed, cls.Category())
	}

	g.log.Debug("Course synthesized",
		zap.String("topic", topic),
		zap.String("tier", cls.Tier.String()),
		zap.String("key", cls.Key),
		zap.String("course_id", course.ID),
	)
	return course
}

func specializedCourse(topic, seed string, s catalog.Subject) *domain.Course {
	quiz := func(lesson, from int) []domain.Question {
		out := make([]domain.Question, 0, 2)
		for i, item := range s.Quiz[from : from+2] {
			out = append(out, item.Question(fmt.Sprintf("q%d-%d", lesson, i)))
		}
		return out
	}

	return &domain.Course{
		ID:          "gen-tier1-" + seed,
		Title:       "Mastering " + properTitle(topic),
		Description: fmt.Sprintf(specializedDescription, topic),
		Lessons: []domain.Lesson{
			{
				ID:       "l1-" + seed,
				Title:    "Origins & Foundations",
				Type:     domain.LessonTypeText,
				Duration: "5 min",
				Content:  fmt.Sprintf(foundationsTemplate, s.Intro, s.HistoricalContext),
				Quiz:     quiz(1, 0),
			},
			{
				ID:       "l2-" + seed,
				Title:    "Core Mechanics",
				Type:     domain.LessonTypeText,
				Duration: "8 min",
				Content:  fmt.Sprintf(mechanicsTemplate, s.TechnicalBreakdown),
				Quiz:     quiz(2, 2),
			},
			{
				ID:       "l3-" + seed,
				Title:    "Future Horizons",
				Type:     domain.LessonTypeInteractive,
				Duration: "6 min",
				Content:  fmt.Sprintf(futureTemplate, s.ModernImplications),
				Quiz:     quiz(3, 4),
			},
		},
	}
}

func dictionaryCourse(topic, seed string, e catalog.DictionaryEntry) *domain.Course {
	title := properTitle(topic)

	definitions := make([]domain.Question, 0, len(e.Quiz))
	for _, item := range e.Quiz {
		definitions = append(definitions, item.Question(item.ID))
	}

	return &domain.Course{
		ID:          "gen-tier2-" + seed,
		Title:       fmt.Sprintf("%s: %s Analysis", title, e.Category),
		Description: fmt.Sprintf(dictionaryDescription, title),
		Lessons: []domain.Lesson{
			{
				ID:       "l1-" + seed,
				Title:    "Core Definitions",
				Type:     domain.LessonTypeText,
				Duration: "3 min",
				Content:  fmt.Sprintf(definitionsTemplate, title, e.Summary, e.KeyFact, e.Category),
				Quiz:     definitions,
			},
			{
				ID:       "l2-" + seed,
				Title:    "Deep Dive",
				Type:     domain.LessonTypeInteractive,
				Duration: "5 min",
				Content:  fmt.Sprintf(deepDiveTemplate, title, e.Category),
				Quiz: []domain.Question{{
					ID:           "q-gen-1",
					Text:         fmt.Sprintf(relatedQuestion, title, e.Category),
					Options:      []string{"False", "True"},
					CorrectIndex: 1,
				}},
			},
		},
	}
}

func heuristicCourse(topic, seed string, category domain.Category) *domain.Course {
	title := properTitle(topic)

	pool := make([]domain.Question, len(heuristicQuestions))
	for i, q := range heuristicQuestions {
		pool[i] = domain.Question{
			ID:           q.id,
			Text:         fmt.Sprintf(q.text, title, topic),
			Options:      append([]string(nil), q.options...),
			CorrectIndex: q.correctIndex,
		}
	}

	courseTitle := "The Principles of " + title
	if category == domain.CategoryPerson {
		courseTitle = "Biography: " + title
	}

	return &domain.Course{
		ID:          "gen-tier3-" + seed,
		Title:       courseTitle,
		Description: fmt.Sprintf(heuristicDescription, topic),
		Lessons: []domain.Lesson{
			{
				ID:       "l1-" + seed,
				Title:    "Introduction & Context",
				Type:     domain.LessonTypeText,
				Duration: "4 min",
				Content:  fmt.Sprintf(introductionTemplate, title, topic, category),
				Quiz:     pool[0:2:2],
			},
			{
				ID:       "l2-" + seed,
				Title:    "Operational Logic",
				Type:     domain.LessonTypeVideo,
				Duration: "6 min",
				Content:  fmt.Sprintf(operationalTemplate, title, topic, category),
				Quiz:     pool[2:4],
			},
		},
	}
}

// properTitle upper-cases the first rune and leaves the rest untouched.
func properTitle(topic string) string {
	r, size := utf8.DecodeRuneInString(topic)
	if r == utf8.RuneError {
		return topic
	}
	return string(unicode.ToUpper(r)) + topic[size:]
}
