package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/adapter"
	"lumina/internal/catalog"
	"lumina/internal/config"
	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/generator"
	"lumina/internal/handler"
	"lumina/internal/middleware"
	"lumina/internal/service"
)

type testServer struct {
	app  *fiber.App
	auth service.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cat := catalog.Default()
	courses := adapter.NewMemoryCourseStore()
	kv := adapter.NewMemoryCache()
	opts := []generator.Option{generator.WithScheduler(generator.Immediate)}

	profiles := service.NewProfileService(kv)
	progress := service.NewProgressService(kv)
	authService, err := service.NewAuthService(courses, profiles, config.JWTConfig{
		SecretKey:      "handler-test-secret-that-is-long-enough",
		AccessTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handler.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Profile: handler.NewProfileHandler(profiles, progress),
		Course:  handler.NewCourseHandler(service.NewCourseService(generator.NewCourseGenerator(cat, opts...), cat, courses)),
		Lesson:  handler.NewLessonHandler(service.NewLessonService(courses, generator.NewAdaptiveGenerator(opts...), progress)),
		Tutor:   handler.NewTutorHandler(service.NewTutorService(generator.NewTutor(opts...))),
	}, middleware.Protected(authService))

	return &testServer{app: app, auth: authService}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (s *testServer) login(t *testing.T) (string, *domain.UserProfile) {
	t.Helper()
	resp, body := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Name: "Ada", Email: "ada@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken, out.User
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var out middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Code
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	token, user := s.login(t)
	assert.Equal(t, service.UserIDForEmail("ada@example.com"), user.ID)
	assert.False(t, user.Onboarded)

	claims, err := s.auth.ValidateJWT(t.Context(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	resp, body := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Name: "", Email: "bad"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, body))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/stats"},
		{http.MethodGet, "/api/courses"},
		{http.MethodPost, "/api/courses"},
		{http.MethodGet, "/api/topics/classify?topic=math"},
		{http.MethodPost, "/api/lessons/adaptive"},
		{http.MethodPost, "/api/tutor"},
		{http.MethodPost, "/api/auth/logout"},
	} {
		resp, body := s.do(t, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, route.path)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, body), route.path)
	}

	resp, _ := s.do(t, http.MethodGet, "/api/courses", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCatalogAndClassify(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/catalog", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cat dto.CatalogResponse
	require.NoError(t, json.Unmarshal(body, &cat))
	assert.Len(t, cat.Subjects, 14)
	assert.Contains(t, cat.Dictionary, "photosynthesis")

	token, _ := s.login(t)
	resp, body = s.do(t, http.MethodGet, "/api/topics/classify?topic=Photosynthesis", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cls dto.ClassificationResponse
	require.NoError(t, json.Unmarshal(body, &cls))
	assert.Equal(t, dto.ClassificationResponse{Topic: "Photosynthesis", Tier: 2, Level: "dictionary", Key: "photosynthesis"}, cls)

	resp, _ = s.do(t, http.MethodGet, "/api/topics/classify?topic=%20%20", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCourseLifecycle(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t)

	resp, body := s.do(t, http.MethodPost, "/api/courses", token, dto.GenerateCourseRequest{Topic: "Python"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var course domain.Course
	require.NoError(t, json.Unmarshal(body, &course))
	assert.Equal(t, "Mastering Python", course.Title)
	require.NotEmpty(t, course.Lessons)

	resp, body = s.do(t, http.MethodPost, "/api/courses", token, dto.GenerateCourseRequest{Topic: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, body))

	resp, body = s.do(t, http.MethodGet, "/api/courses", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.CourseListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, course.ID, list.Courses[0].ID)

	resp, body = s.do(t, http.MethodGet, "/api/courses/"+course.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got domain.Course
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, course, got)

	resp, body = s.do(t, http.MethodGet, "/api/courses/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "COURSE_NOT_FOUND", errorCode(t, body))

	resp, _ = s.do(t, http.MethodDelete, "/api/courses", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, body = s.do(t, http.MethodGet, "/api/courses", token, nil)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 0, list.Total)
}

func TestSubmitQuizAndStats(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t)

	_, body := s.do(t, http.MethodPost, "/api/courses", token, dto.GenerateCourseRequest{Topic: "Blockchain"})
	var course domain.Course
	require.NoError(t, json.Unmarshal(body, &course))
	lesson := course.Lessons[0]
	require.NotEmpty(t, lesson.Quiz)

	answers := make([]int, len(lesson.Quiz))
	for i, q := range lesson.Quiz {
		answers[i] = q.CorrectIndex
	}
	path := "/api/courses/" + course.ID + "/lessons/" + lesson.ID + "/submit"
	resp, body := s.do(t, http.MethodPost, path, token, dto.SubmitQuizRequest{Answers: answers})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var result domain.LessonResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, len(lesson.Quiz), result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, domain.QuizXP(result.Score), result.XPEarned)
	assert.Equal(t, "Advanced Application", result.NextLesson.Title)

	resp, body = s.do(t, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, result.XPEarned, stats.XP)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, domain.XPPerLevel-stats.XP, stats.NextLevel)

	resp, body = s.do(t, http.MethodPost, "/api/courses/"+course.ID+"/lessons/nope/submit", token, dto.SubmitQuizRequest{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "LESSON_NOT_FOUND", errorCode(t, body))

	tooMany := append(answers, 0, 0, 0, 0, 0)
	resp, _ = s.do(t, http.MethodPost, path, token, dto.SubmitQuizRequest{Answers: tooMany})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdaptiveLesson(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t)

	tests := []struct {
		name       string
		req        dto.AdaptiveLessonRequest
		wantStatus int
		wantTitle  string
	}{
		{"pass at threshold", dto.AdaptiveLessonRequest{LessonID: "l1-1", Score: 3, TotalQuestions: 5}, http.StatusOK, "Advanced Application"},
		{"fail below threshold", dto.AdaptiveLessonRequest{LessonID: "l1-1", Score: 2, TotalQuestions: 5}, http.StatusOK, "Reinforcement Session"},
		{"zero questions", dto.AdaptiveLessonRequest{LessonID: "l1-1", Score: 0, TotalQuestions: 0}, http.StatusBadRequest, ""},
		{"score above total", dto.AdaptiveLessonRequest{LessonID: "l1-1", Score: 6, TotalQuestions: 5}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := s.do(t, http.MethodPost, "/api/lessons/adaptive", token, tt.req)
			require.Equal(t, tt.wantStatus, resp.StatusCode, string(body))
			if tt.wantTitle == "" {
				return
			}
			var lesson domain.Lesson
			require.NoError(t, json.Unmarshal(body, &lesson))
			assert.Equal(t, tt.wantTitle, lesson.Title)
			assert.Len(t, lesson.Quiz, 1)
		})
	}
}

func TestProfileAndLogout(t *testing.T) {
	s := newTestServer(t)
	token, user := s.login(t)

	resp, body := s.do(t, http.MethodPut, "/api/profile", token, dto.ProfileRequest{
		Name:      "Ada",
		Age:       "25-34",
		Interests: []string{"math"},
		Level:     "beginner",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile domain.UserProfile
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.True(t, profile.Onboarded)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, []string{"math"}, profile.Interests)

	s.do(t, http.MethodPost, "/api/courses", token, dto.GenerateCourseRequest{Topic: "History"})

	resp, _ = s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))

	var list dto.CourseListResponse
	_, body = s.do(t, http.MethodGet, "/api/courses", token, nil)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 0, list.Total)
}

func TestTutor(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t)

	resp, body := s.do(t, http.MethodGet, "/api/tutor", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var greeting dto.TutorGreetingResponse
	require.NoError(t, json.Unmarshal(body, &greeting))
	assert.NotEmpty(t, greeting.Greeting)

	resp, body = s.do(t, http.MethodPost, "/api/tutor", token, dto.TutorRequest{Message: "What is the solution?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reply dto.TutorResponse
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Contains(t, reply.Reply, "guide you")

	resp, _ = s.do(t, http.MethodPost, "/api/tutor", token, dto.TutorRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
