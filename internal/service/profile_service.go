package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"lumina/internal/cache"
	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/logger"
	"lumina/internal/validation"
)

// ProfileService stores learner profiles and their onboarding answers.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	// EnsureProfile returns the stored profile, creating one when absent.
	EnsureProfile(ctx context.Context, userID, name, email string) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, req *dto.ProfileRequest) (*domain.UserProfile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

type profileService struct {
	cache     domain.Cache
	validator *validation.Validator
	now       func() time.Time
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(c domain.Cache) ProfileService {
	return &profileService{cache: c, validator: validation.NewValidator(), now: time.Now}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Profile not found for user %s", userID))
	}
	return profile, nil
}

func (s *profileService) EnsureProfile(ctx context.Context, userID, name, email string) (*domain.UserProfile, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = domain.NewUserProfile(userID, strings.TrimSpace(name), strings.TrimSpace(email))
	profile.CreatedAt = s.now().UTC()
	profile.UpdatedAt = profile.CreatedAt
	if err := s.store(ctx, profile); err != nil {
		return nil, err
	}
	logger.Get().Info("Profile created", zap.String("user_id", userID))
	return profile, nil
}

// SaveProfile applies onboarding answers and marks the profile onboarded.
func (s *profileService) SaveProfile(ctx context.Context, userID string, req *dto.ProfileRequest) (*domain.UserProfile, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if profile == nil {
		profile = domain.NewUserProfile(userID, "", "")
		profile.CreatedAt = now
	}

	profile.Name = strings.TrimSpace(req.Name)
	profile.Age = req.Age
	profile.Interests = append([]string(nil), req.Interests...)
	profile.Level = req.Level
	profile.Language = req.Language
	profile.Onboarded = true
	profile.UpdatedAt = now

	if verrs := s.validator.ValidateProfile(profile); len(verrs) > 0 {
		return nil, verrs
	}
	if err := s.store(ctx, profile); err != nil {
		return nil, err
	}
	logger.Get().Info("Profile onboarded", zap.String("user_id", userID))
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, cache.UserProfileKey(userID)); err != nil {
		return domain.NewInternalError("Failed to delete profile", err)
	}
	return nil
}

// load returns nil, nil when no profile is stored.
func (s *profileService) load(ctx context.Context, userID string) (*domain.UserProfile, error) {
	raw, err := s.cache.Get(ctx, cache.UserProfileKey(userID))
	if errors.Is(err, domain.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to read profile", err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, domain.NewInternalError("Corrupt profile", err).WithContext("user_id", userID)
	}
	return &profile, nil
}

func (s *profileService) store(ctx context.Context, profile *domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return domain.NewInternalError("Failed to encode profile", err)
	}
	if err := s.cache.Set(ctx, cache.UserProfileKey(profile.ID), string(data), 0); err != nil {
		return domain.NewInternalError("Failed to save profile", err)
	}
	return nil
}
