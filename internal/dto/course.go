package dto

import "lumina/internal/domain"

// GenerateCourseRequest is the body of POST /api/courses.
// @Description Request body for generating and enrolling a course
type GenerateCourseRequest struct {
	Topic string `json:"topic" example:"Python"`
}

// CourseListResponse lists enrolled courses in enrollment order.
// @Description Enrolled courses of the current learner
type CourseListResponse struct {
	Courses []*domain.Course `json:"courses"`
	Total   int              `json:"total"`
}

// SubmitQuizRequest holds the option index picked for each quiz question.
// @Description Request body for submitting a lesson quiz
type SubmitQuizRequest struct {
	Answers []int `json:"answers" example:"1,0,2"`
}

// AdaptiveLessonRequest asks for a follow-up lesson for a raw score.
// @Description Request body for generating an adaptive follow-up lesson
type AdaptiveLessonRequest struct {
	LessonID       string `json:"lesson_id" example:"l1-1"`
	Score          int    `json:"score" example:"3"`
	TotalQuestions int    `json:"total_questions" example:"5"`
}

// ClassificationResponse reports where a topic resolves in the catalog.
// @Description Classification of a topic
type ClassificationResponse struct {
	Topic string `json:"topic"`
	Tier  int    `json:"tier"`
	Level string `json:"level" example:"specialized"`
	Key   string `json:"key"`
}

// CatalogResponse lists the curated subjects and dictionary entries.
// @Description Content catalog summary
type CatalogResponse struct {
	Subjects   []string `json:"subjects"`
	Dictionary []string `json:"dictionary"`
}

// TutorRequest is a learner's chat message.
// @Description Request body for the tutor chat
type TutorRequest struct {
	Message string `json:"message" example:"Can you explain recursion?"`
}

// TutorResponse is the tutor's reply.
// @Description Tutor chat reply
type TutorResponse struct {
	Reply string `json:"reply"`
}

// TutorGreetingResponse is the opening message of a chat.
// @Description Tutor greeting
type TutorGreetingResponse struct {
	Greeting string `json:"greeting"`
}
