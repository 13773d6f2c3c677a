package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lumina/internal/domain"
)

// LessonList stores a course's lessons as one JSON document.
type LessonList []domain.Lesson

// Value implements the driver.Valuer interface
func (l LessonList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (l *LessonList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = LessonList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("LessonList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(raw) == 0 || string(raw) == "null" {
		*l = LessonList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// EnrolledCourse is a row of the enrolled_courses table.
type EnrolledCourse struct {
	UserID      string         `db:"USER_ID"`
	CourseID    string         `db:"COURSE_ID"`
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	Progress    int            `db:"PROGRESS"`
	Lessons     LessonList     `db:"LESSONS"`
	EnrolledAt  time.Time      `db:"ENROLLED_AT"`
}

// NewEnrolledCourse builds the row for a course a user enrolls in.
func NewEnrolledCourse(userID string, c *domain.Course, enrolledAt time.Time) *EnrolledCourse {
	return &EnrolledCourse{
		UserID:      userID,
		CourseID:    c.ID,
		Title:       c.Title,
		Description: sql.NullString{String: c.Description, Valid: c.Description != ""},
		Progress:    c.Progress,
		Lessons:     LessonList(c.Lessons),
		EnrolledAt:  enrolledAt,
	}
}

// ToDomain converts the row back into a course.
func (e *EnrolledCourse) ToDomain() *domain.Course {
	if e == nil {
		return nil
	}
	lessons := []domain.Lesson(e.Lessons)
	if lessons == nil {
		lessons = []domain.Lesson{}
	}
	return &domain.Course{
		ID:          e.CourseID,
		Title:       e.Title,
		Description: e.Description.String,
		Progress:    e.Progress,
		Lessons:     lessons,
	}
}
