package cache

import "strings"

const (
	GlobalKeyPrefix = "lumina"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// EnrolledCoursesKey is the hash of course id to course JSON for a user.
func EnrolledCoursesKey(userID string) string {
	return GenerateCacheKey("courses", "enrolled", userID)
}

// EnrolledOrderKey is the list recording the order courses were enrolled in.
func EnrolledOrderKey(userID string) string {
	return GenerateCacheKey("courses", "enrolled", userID, "order")
}

func ProgressStatsKey(userID string) string {
	return GenerateCacheKey("progress", "stats", userID)
}

func UserProfileKey(userID string) string {
	return GenerateCacheKey("user", "profile", userID)
}
