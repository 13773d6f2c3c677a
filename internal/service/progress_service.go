package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"lumina/internal/cache"
	"lumina/internal/domain"
	"lumina/internal/logger"
)

const (
	statsFieldXP         = "xp"
	statsFieldStreak     = "streak"
	statsFieldLastActive = "last_active"

	dayLayout = "2006-01-02"
)

// ProgressService tracks a learner's experience points, level and daily streak.
type ProgressService interface {
	AwardXP(ctx context.Context, userID string, amount int) (*domain.LearnerStats, error)
	GetStats(ctx context.Context, userID string) (*domain.LearnerStats, error)
}

type progressService struct {
	cache domain.Cache
	now   func() time.Time
	// mu serializes read-modify-write of stats within this process.
	mu sync.Mutex
}

// NewProgressService creates a new instance of ProgressService
func NewProgressService(c domain.Cache) ProgressService {
	return &progressService{cache: c, now: time.Now}
}

func (s *progressService) GetStats(ctx context.Context, userID string) (*domain.LearnerStats, error) {
	fields, err := s.cache.HGetAll(ctx, cache.ProgressStatsKey(userID))
	if err != nil {
		return nil, domain.NewInternalError("Failed to read learner stats", err)
	}
	stats, err := parseStats(fields)
	if err != nil {
		return nil, domain.NewInternalError("Corrupt learner stats", err).WithContext("user_id", userID)
	}
	return stats, nil
}

// AwardXP adds amount to the learner's experience. Activity on the day
// after the last active day extends the streak; a longer gap restarts it.
func (s *progressService) AwardXP(ctx context.Context, userID string, amount int) (*domain.LearnerStats, error) {
	if amount < 0 {
		return nil, domain.NewInvalidInputError("xp amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now().UTC()
	todayKey := today.Format(dayLayout)
	switch stats.LastActive {
	case todayKey:
		if stats.Streak == 0 {
			stats.Streak = 1
		}
	case today.AddDate(0, 0, -1).Format(dayLayout):
		stats.Streak++
	default:
		stats.Streak = 1
	}
	stats.LastActive = todayKey
	stats.XP += amount
	stats.Level = domain.LevelForXP(stats.XP)

	err = s.cache.HSet(ctx, cache.ProgressStatsKey(userID), map[string]string{
		statsFieldXP:         strconv.Itoa(stats.XP),
		statsFieldStreak:     strconv.Itoa(stats.Streak),
		statsFieldLastActive: stats.LastActive,
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to save learner stats", err)
	}

	logger.Get().Info("XP awarded",
		zap.String("user_id", userID),
		zap.Int("amount", amount),
		zap.Int("xp", stats.XP),
		zap.Int("level", stats.Level),
		zap.Int("streak", stats.Streak),
	)
	return stats, nil
}

func parseStats(fields map[string]string) (*domain.LearnerStats, error) {
	stats := &domain.LearnerStats{LastActive: fields[statsFieldLastActive]}
	var err error
	if v, ok := fields[statsFieldXP]; ok {
		if stats.XP, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}
	if v, ok := fields[statsFieldStreak]; ok {
		if stats.Streak, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}
	stats.Level = domain.LevelForXP(stats.XP)
	return stats, nil
}
