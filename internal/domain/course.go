package domain

import "fmt"

// LessonType describes how a lesson is presented to the learner.
type LessonType string

const (
	LessonTypeVideo       LessonType = "video"
	LessonTypeText        LessonType = "text"
	LessonTypeInteractive LessonType = "interactive"
)

// Question is a single multiple-choice quiz item.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Validate checks the option count and that CorrectIndex points at an option.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewValidationError("question text is required")
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return NewValidationError(fmt.Sprintf("question %q must have 2-4 options, got %d", q.ID, len(q.Options)))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewValidationError(fmt.Sprintf("question %q correct index %d out of range", q.ID, q.CorrectIndex))
	}
	return nil
}

// Lesson is one unit of a course. A lesson without a quiz is informational only.
type Lesson struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Content  string     `json:"content"` // markdown
	Type     LessonType `json:"type"`
	Duration string     `json:"duration"`
	Quiz     []Question `json:"quiz,omitempty"`
}

// HasQuiz reports whether the lesson carries at least one question.
func (l *Lesson) HasQuiz() bool {
	return len(l.Quiz) > 0
}

// Grade counts the answers matching each question's correct index.
// answers[i] is the option picked for Quiz[i]; extra answers are ignored.
func (l *Lesson) Grade(answers []int) int {
	score := 0
	for i, q := range l.Quiz {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectIndex {
			score++
		}
	}
	return score
}

// Validate validates the lesson and every question in its quiz
func (l *Lesson) Validate() error {
	if l.ID == "" {
		return NewValidationError("lesson id is required")
	}
	if l.Title == "" {
		return NewValidationError("lesson title is required")
	}
	switch l.Type {
	case LessonTypeVideo, LessonTypeText, LessonTypeInteractive:
	default:
		return NewValidationError(fmt.Sprintf("unknown lesson type %q", l.Type))
	}
	for i := range l.Quiz {
		if err := l.Quiz[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Course is a generated, ordered set of lessons.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Progress    int      `json:"progress"` // 0-100
	Lessons     []Lesson `json:"lessons"`
}

// Lesson returns the lesson with the given id, or nil.
func (c *Course) Lesson(id string) *Lesson {
	for i := range c.Lessons {
		if c.Lessons[i].ID == id {
			return &c.Lessons[i]
		}
	}
	return nil
}

// Validate validates the course
func (c *Course) Validate() error {
	if c.ID == "" {
		return NewValidationError("course id is required")
	}
	if c.Progress < 0 || c.Progress > 100 {
		return NewValidationError(fmt.Sprintf("course progress %d out of range", c.Progress))
	}
	if len(c.Lessons) == 0 {
		return NewValidationError("course must have at least one lesson")
	}
	for i := range c.Lessons {
		if err := c.Lessons[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the course.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	out.Lessons = make([]Lesson, len(c.Lessons))
	for i := range c.Lessons {
		out.Lessons[i] = c.Lessons[i].Clone()
	}
	return &out
}

// Clone returns a deep copy of the lesson.
func (l *Lesson) Clone() Lesson {
	out := *l
	if l.Quiz != nil {
		out.Quiz = make([]Question, len(l.Quiz))
		for i, q := range l.Quiz {
			q.Options = append([]string(nil), q.Options...)
			out.Quiz[i] = q
		}
	}
	return out
}

// LessonResult is the outcome of a submitted lesson quiz.
type LessonResult struct {
	CourseID       string       `json:"course_id"`
	LessonID       string       `json:"lesson_id"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	Percentage     float64      `json:"percentage"`
	Passed         bool         `json:"passed"`
	XPEarned       int          `json:"xp_earned"`
	Stats          LearnerStats `json:"stats"`
	NextLesson     *Lesson      `json:"next_lesson"`
}
