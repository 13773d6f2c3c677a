package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lumina/internal/config"
	"lumina/internal/domain"
	"lumina/internal/repository/models"
)

const (
	// Oracle has no INSERT ... ON CONFLICT; MERGE inserts only when the key is new.
	oracleEnrollQuery = `MERGE INTO enrolled_courses t
	USING (SELECT ? AS user_id, ? AS course_id FROM dual) s
	ON (t.user_id = s.user_id AND t.course_id = s.course_id)
	WHEN NOT MATCHED THEN
		INSERT (user_id, course_id, title, description, progress, lessons, enrolled_at)
		VALUES (s.user_id, s.course_id, ?, ?, ?, ?, ?)`

	postgresEnrollQuery = `INSERT INTO enrolled_courses (user_id, course_id, title, description, progress, lessons, enrolled_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (user_id, course_id) DO NOTHING`

	listCoursesQuery = `SELECT user_id, course_id, title, description, progress, lessons, enrolled_at
	FROM enrolled_courses WHERE user_id = ? ORDER BY seq`

	getCourseQuery = `SELECT user_id, course_id, title, description, progress, lessons, enrolled_at
	FROM enrolled_courses WHERE user_id = ? AND course_id = ?`

	clearCoursesQuery = `DELETE FROM enrolled_courses WHERE user_id = ?`
)

// sqlxCourseRepository implements domain.CourseRepository on Oracle or PostgreSQL.
type sqlxCourseRepository struct {
	db          DBTX
	enrollQuery string
	now         func() time.Time
}

// NewSQLXCourseRepository picks the insert-if-absent statement for the dialect.
func NewSQLXCourseRepository(db DBTX, storageDriver string) (domain.CourseRepository, error) {
	r := &sqlxCourseRepository{db: db, now: time.Now}
	switch storageDriver {
	case config.DriverOracle:
		r.enrollQuery = oracleEnrollQuery
	case config.DriverPostgres:
		r.enrollQuery = postgresEnrollQuery
	default:
		return nil, fmt.Errorf("unsupported SQL dialect %q", storageDriver)
	}
	return r, nil
}

func (r *sqlxCourseRepository) Enroll(ctx context.Context, userID string, course *domain.Course) (bool, error) {
	row := models.NewEnrolledCourse(userID, course, r.now().UTC())
	lessons, err := row.Lessons.Value()
	if err != nil {
		return false, fmt.Errorf("failed to encode lessons of course %s: %w", course.ID, err)
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(r.enrollQuery),
		row.UserID, row.CourseID, row.Title, row.Description, row.Progress, lessons, row.EnrolledAt)
	if err != nil {
		return false, fmt.Errorf("failed to enroll course %s: %w", course.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *sqlxCourseRepository) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	var rows []models.EnrolledCourse
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listCoursesQuery), userID); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, rows[i].ToDomain())
	}
	return courses, nil
}

func (r *sqlxCourseRepository) Get(ctx context.Context, userID, courseID string) (*domain.Course, error) {
	var row models.EnrolledCourse
	err := r.db.GetContext(ctx, &row, r.db.Rebind(getCourseQuery), userID, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course %s: %w", courseID, err)
	}
	return row.ToDomain(), nil
}

func (r *sqlxCourseRepository) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(clearCoursesQuery), userID); err != nil {
		return fmt.Errorf("failed to clear courses: %w", err)
	}
	return nil
}
