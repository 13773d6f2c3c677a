package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lumina/internal/cache"
	"lumina/internal/domain"
)

// RedisCourseStore keeps each user's enrolled courses in a hash of course id
// to course JSON, plus a list that records enrollment order.
type RedisCourseStore struct {
	client *redis.Client
}

func NewRedisCourseStore(client *redis.Client) domain.CourseRepository {
	return &RedisCourseStore{client: client}
}

// Enroll relies on HSETNX, so an existing course is never overwritten and
// the order list only grows when the hash field was created.
func (s *RedisCourseStore) Enroll(ctx context.Context, userID string, course *domain.Course) (bool, error) {
	data, err := json.Marshal(course)
	if err != nil {
		return false, fmt.Errorf("marshal course %s: %w", course.ID, err)
	}

	inserted, err := s.client.HSetNX(ctx, cache.EnrolledCoursesKey(userID), course.ID, string(data)).Result()
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}
	if err := s.client.RPush(ctx, cache.EnrolledOrderKey(userID), course.ID).Err(); err != nil {
		return true, err
	}
	return true, nil
}

func (s *RedisCourseStore) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	ids, err := s.client.LRange(ctx, cache.EnrolledOrderKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Course{}, nil
	}

	values, err := s.client.HMGet(ctx, cache.EnrolledCoursesKey(userID), ids...).Result()
	if err != nil {
		return nil, err
	}

	courses := make([]*domain.Course, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// order entry without a hash field, e.g. after a partial clear
			continue
		}
		var c domain.Course
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("decode course %s: %w", ids[i], err)
		}
		courses = append(courses, &c)
	}
	return courses, nil
}

func (s *RedisCourseStore) Get(ctx context.Context, userID, courseID string) (*domain.Course, error) {
	raw, err := s.client.HGet(ctx, cache.EnrolledCoursesKey(userID), courseID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var c domain.Course
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("decode course %s: %w", courseID, err)
	}
	return &c, nil
}

func (s *RedisCourseStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, cache.EnrolledCoursesKey(userID), cache.EnrolledOrderKey(userID)).Err()
}
