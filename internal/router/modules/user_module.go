package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/prasetya/tasklist-api/internal/container"
	handlers "github.com/prasetya/tasklist-api/internal/interface/http"
	"github.com/prasetya/tasklist-api/internal/interface/middleware"
	"github.com/prasetya/tasklist-api/pkg/helpers"
)

// UserModule wires account routes.
// Public: POST /users, POST /users/login
// Protected: GET /users/me, DELETE /users/me/logout

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.SignUp)
	rg.POST("/users/login", m.Handler.Login)

	auth := rg.Group("/users")
	auth.Use(middleware.Auth(container.GetUsers(), container.GetSessions(), m.JWT))
	{
		auth.GET("/me", m.Handler.Me)
		auth.DELETE("/me/logout", m.Handler.Logout)
	}
}
