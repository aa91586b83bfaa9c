package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
	repo "github.com/prasetya/tasklist-api/internal/domain/repository"
	"github.com/prasetya/tasklist-api/pkg/helpers"
)

// HeaderAuth carries the bearer token on requests and responses.
const HeaderAuth = "x-auth"

// Context keys set by Auth on success.
const (
	CtxUserKey   = "authUser"
	CtxUserIDKey = "userID"
	CtxTokenKey  = "authToken"
)

// Auth converts the x-auth header into a trusted identity or rejects with an
// empty 401. A token is accepted only when BOTH hold: the signature verifies
// against the process secret, and the exact token string is still present in
// the subject's session registry for its purpose. The second check is what
// makes logout effective, so it is not redundant with the first.
func Auth(users repo.UserRepository, sessions repo.SessionRegistry, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderAuth)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil || claims.Purpose != entity.PurposeAuth {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx := c.Request.Context()
		ok, err := sessions.IsValid(ctx, claims.Subject, claims.Purpose, token)
		if err != nil || !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		u, err := users.GetByID(ctx, claims.Subject)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

// UserFrom returns the authenticated user attached by Auth.
func UserFrom(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}
