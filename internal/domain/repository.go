package domain

import "context"

// CourseRepository stores the courses a user has enrolled in.
type CourseRepository interface {
	// Enroll stores the course unless one with the same ID is already
	// enrolled for the user. It reports whether the course was inserted.
	Enroll(ctx context.Context, userID string, course *Course) (bool, error)

	// List returns the user's courses in enrollment order.
	List(ctx context.Context, userID string) ([]*Course, error)

	// Get returns nil, nil when the course is not enrolled.
	Get(ctx context.Context, userID, courseID string) (*Course, error)

	// Clear removes every course enrolled by the user.
	Clear(ctx context.Context, userID string) error
}
