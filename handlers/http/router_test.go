package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/john-san/rest-api/cache"
	"github.com/john-san/rest-api/repositories"
	"github.com/john-san/rest-api/services"
	"github.com/john-san/rest-api/usecases"
	"github.com/john-san/rest-api/ws"
	"github.com/stretchr/testify/require"
)

// testEnv drives the real route table against in-memory repositories.
type testEnv struct {
	router *gin.Engine
	users  *usecases.UserUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserMemoryRepository()
	courseRepo := repositories.NewCourseMemoryRepository(userRepo)

	catalog := cache.New(time.Minute)
	dispatcher := services.NewEventDispatcher(ws.NewManager())

	userUseCase := usecases.NewUserUseCase(userRepo)
	courseUseCase := usecases.NewCourseUseCase(courseRepo, catalog, dispatcher)

	userHandler := NewUserHandler(userUseCase)
	courseHandler := NewCourseHandler(courseUseCase)
	cacheHandler := NewCacheHandler(catalog)

	authRequired := BasicAuth(userUseCase)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.GET("", authRequired, userHandler.GetCurrentUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", authRequired, userHandler.UpdateUser)
			users.DELETE("/:id", authRequired, userHandler.DeleteUser)
		}
		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.ListCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.POST("", authRequired, courseHandler.CreateCourse)
			courses.PUT("/:id", authRequired, courseHandler.UpdateCourse)
			courses.DELETE("/:id", authRequired, courseHandler.DeleteCourse)
		}
		api.GET("/cache/stats", cacheHandler.GetCacheStats)
	}

	return &testEnv{router: router, users: userUseCase}
}

type reqOptions struct {
	email    string
	password string
}

func withAuth(email, password string) reqOptions {
	return reqOptions{email: email, password: password}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, opts ...reqOptions) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, o := range opts {
		req.SetBasicAuth(o.email, o.password)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) registerUser(t *testing.T, firstName, lastName, email, password string) string {
	t.Helper()
	user, err := e.users.Register(firstName, lastName, email, password)
	require.NoError(t, err)
	return user.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthStyleCacheStats(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/cache/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, decodeBody(t, w), "data")
}
