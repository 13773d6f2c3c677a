package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "user",
			objectType:  "profile",
			identifier:  "u1",
			expectedKey: "lumina:user:profile:u1",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "user",
			objectType:  "profile",
			identifier:  "u1",
			paramsKey:   []string{},
			expectedKey: "lumina:user:profile:u1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "courses",
			objectType:  "enrolled",
			identifier:  "u1",
			paramsKey:   []string{"order", "v2"},
			expectedKey: "lumina:courses:enrolled:u1:order_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestDomainKeys(t *testing.T) {
	assert.Equal(t, "lumina:courses:enrolled:u1", EnrolledCoursesKey("u1"))
	assert.Equal(t, "lumina:courses:enrolled:u1:order", EnrolledOrderKey("u1"))
	assert.Equal(t, "lumina:progress:stats:u1", ProgressStatsKey("u1"))
	assert.Equal(t, "lumina:user:profile:u1", UserProfileKey("u1"))
}
