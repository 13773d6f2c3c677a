package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/adapter"
	"lumina/internal/cache"
	"lumina/internal/domain"
	"lumina/internal/dto"
)

func newTestProfileService(c domain.Cache) *profileService {
	svc := NewProfileService(c).(*profileService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestProfileService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService(adapter.NewMemoryCache())

	_, err := svc.GetProfile(ctx, "u1")
	assert.Equal(t, domain.CodeNotFound, errorCode(err))

	created, err := svc.EnsureProfile(ctx, "u1", " Ada ", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", created.Name)
	assert.False(t, created.Onboarded)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), created.CreatedAt)

	again, err := svc.EnsureProfile(ctx, "u1", "Someone Else", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Name, "existing profile is returned unchanged")

	saved, err := svc.SaveProfile(ctx, "u1", &dto.ProfileRequest{
		Name:      "Ada L.",
		Age:       "25-34",
		Interests: []string{"math", "art"},
		Level:     "beginner",
		Language:  "en",
	})
	require.NoError(t, err)
	assert.True(t, saved.Onboarded)
	assert.Equal(t, "ada@example.com", saved.Email)
	assert.Equal(t, created.CreatedAt, saved.CreatedAt)

	got, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, svc.DeleteProfile(ctx, "u1"))
	_, err = svc.GetProfile(ctx, "u1")
	assert.Equal(t, domain.CodeNotFound, errorCode(err))
}

func TestProfileService_SaveWithoutLogin(t *testing.T) {
	svc := newTestProfileService(adapter.NewMemoryCache())

	p, err := svc.SaveProfile(context.Background(), "u9", &dto.ProfileRequest{Name: "Grace"})
	require.NoError(t, err)
	assert.Equal(t, "u9", p.ID)
	assert.True(t, p.Onboarded)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProfileService_SaveInvalid(t *testing.T) {
	svc := newTestProfileService(adapter.NewMemoryCache())

	_, err := svc.SaveProfile(context.Background(), "u1", &dto.ProfileRequest{Name: "  "})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "name", verrs[0].Field)

	_, err = svc.GetProfile(context.Background(), "u1")
	assert.Equal(t, domain.CodeNotFound, errorCode(err), "invalid profile is not stored")
}

func TestProfileService_CorruptProfile(t *testing.T) {
	ctx := context.Background()
	c := adapter.NewMemoryCache()
	require.NoError(t, c.Set(ctx, cache.UserProfileKey("u1"), "{not json", 0))

	_, err := newTestProfileService(c).GetProfile(ctx, "u1")
	assert.Equal(t, domain.CodeInternal, errorCode(err))
}

func TestProfileService_CacheErrors(t *testing.T) {
	ctx := context.Background()
	key := cache.UserProfileKey("u1")
	c := new(MockCache)
	c.On("Get", ctx, key).Return("", errors.New("redis down"))
	c.On("Delete", ctx, []string{key}).Return(errors.New("redis down"))
	svc := newTestProfileService(c)

	_, err := svc.GetProfile(ctx, "u1")
	assert.Equal(t, domain.CodeInternal, errorCode(err))

	_, err = svc.EnsureProfile(ctx, "u1", "Ada", "ada@example.com")
	assert.Equal(t, domain.CodeInternal, errorCode(err))

	err = svc.DeleteProfile(ctx, "u1")
	assert.Equal(t, domain.CodeInternal, errorCode(err))
}
