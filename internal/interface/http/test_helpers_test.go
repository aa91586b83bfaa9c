package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/prasetya/tasklist-api/internal/application"
	"github.com/prasetya/tasklist-api/internal/infrastructure/memory"
	"github.com/prasetya/tasklist-api/internal/interface/middleware"
	"github.com/prasetya/tasklist-api/pkg/helpers"
)

// testServer wires the full route table against in-memory repositories,
// mirroring the module registration in internal/router.
type testServer struct {
	engine   *gin.Engine
	users    *memory.UserRepository
	sessions *memory.SessionRegistry
	todos    *memory.TodoRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		users:    memory.NewUserRepository(),
		sessions: memory.NewSessionRegistry(),
		todos:    memory.NewTodoRepository(),
	}
	jwt := helpers.NewJWTManager("handler-test-secret")
	logger := helpers.NewLogger("test", "test")

	userSvc := application.NewUserService(ts.users, ts.sessions, jwt, logger, nil)
	todoSvc := application.NewTodoService(ts.todos, logger, nil)
	uh := NewUserHandler(userSvc, logger)
	th := NewTodoHandler(todoSvc, logger)
	gate := middleware.Auth(ts.users, ts.sessions, jwt)

	r := gin.New()
	r.POST("/users", uh.SignUp)
	r.POST("/users/login", uh.Login)
	users := r.Group("/users", gate)
	users.GET("/me", uh.Me)
	users.DELETE("/me/logout", uh.Logout)

	todos := r.Group("/todos", gate)
	todos.POST("", th.Create)
	todos.GET("", th.List)
	todos.GET("/:id", th.Get)
	todos.PATCH("/:id", th.Update)
	todos.DELETE("/:id", th.Delete)

	ts.engine = r
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.HeaderAuth, token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

// signup registers an account and returns its id and bearer token.
func (ts *testServer) signup(t *testing.T, email, password string) (string, string) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/users", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := w.Header().Get(middleware.HeaderAuth)
	require.NotEmpty(t, token)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["id"].(string), token
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
