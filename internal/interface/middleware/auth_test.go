package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
	"github.com/prasetya/tasklist-api/internal/infrastructure/memory"
	"github.com/prasetya/tasklist-api/pkg/helpers"
)

type gateEnv struct {
	engine   *gin.Engine
	users    *memory.UserRepository
	sessions *memory.SessionRegistry
	jwt      *helpers.JWTManager
}

func newGateEnv(t *testing.T) *gateEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &gateEnv{
		users:    memory.NewUserRepository(),
		sessions: memory.NewSessionRegistry(),
		jwt:      helpers.NewJWTManager("gate-secret"),
	}
	env.engine = gin.New()
	env.engine.GET("/protected", Auth(env.users, env.sessions, env.jwt), func(c *gin.Context) {
		u, ok := UserFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": u.ID})
	})
	return env
}

// registerUser creates an account and a registered auth token for it.
func (e *gateEnv) registerUser(t *testing.T, email string) (*entity.User, string) {
	t.Helper()
	ctx := context.Background()
	u := &entity.User{Email: email, PasswordHash: "irrelevant"}
	require.NoError(t, e.users.Create(ctx, u))
	token, err := e.jwt.Issue(u.ID, entity.PurposeAuth)
	require.NoError(t, err)
	require.NoError(t, e.sessions.Add(ctx, u.ID, entity.PurposeAuth, token))
	return u, token
}

func (e *gateEnv) request(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(HeaderAuth, token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	env := newGateEnv(t)
	w := env.request("")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, w.Body.String())
}

func TestAuthMalformedToken(t *testing.T) {
	env := newGateEnv(t)
	w := env.request("not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthValidSignatureButUnregisteredToken(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()
	u := &entity.User{Email: "a@b.com", PasswordHash: "irrelevant"}
	require.NoError(t, env.users.Create(ctx, u))

	// Signed by us but never added to the registry: must be rejected.
	rogue, err := env.jwt.Issue(u.ID, entity.PurposeAuth)
	require.NoError(t, err)

	w := env.request(rogue)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthWrongPurpose(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()
	u := &entity.User{Email: "a@b.com", PasswordHash: "irrelevant"}
	require.NoError(t, env.users.Create(ctx, u))

	// Only "auth" tokens pass the gate, even when the token is registered
	// for its own purpose.
	other, err := env.jwt.Issue(u.ID, "reset")
	require.NoError(t, err)
	require.NoError(t, env.sessions.Add(ctx, u.ID, "reset", other))
	require.Equal(t, http.StatusUnauthorized, env.request(other).Code)

	// A token claiming "auth" but only registered under "reset" fails the
	// registry cross-check.
	authClaim, err := env.jwt.Issue(u.ID, entity.PurposeAuth)
	require.NoError(t, err)
	require.NoError(t, env.sessions.Add(ctx, u.ID, "reset", authClaim))
	require.Equal(t, http.StatusUnauthorized, env.request(authClaim).Code)
}

func TestAuthHappyPath(t *testing.T) {
	env := newGateEnv(t)
	u, token := env.registerUser(t, "a@b.com")

	w := env.request(token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), u.ID)
}

func TestAuthRevokedTokenRejected(t *testing.T) {
	env := newGateEnv(t)
	u, token := env.registerUser(t, "a@b.com")

	require.Equal(t, http.StatusOK, env.request(token).Code)
	require.NoError(t, env.sessions.Remove(context.Background(), u.ID, token))
	require.Equal(t, http.StatusUnauthorized, env.request(token).Code)
}

func TestAuthDeletedUserRejected(t *testing.T) {
	env := newGateEnv(t)

	// Token for a subject that does not exist in the credential store.
	token, err := env.jwt.Issue("00000000-0000-0000-0000-000000000000", entity.PurposeAuth)
	require.NoError(t, err)
	require.NoError(t, env.sessions.Add(context.Background(), "00000000-0000-0000-0000-000000000000", entity.PurposeAuth, token))

	w := env.request(token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
