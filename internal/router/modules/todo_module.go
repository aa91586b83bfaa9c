package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/prasetya/tasklist-api/internal/container"
	handlers "github.com/prasetya/tasklist-api/internal/interface/http"
	"github.com/prasetya/tasklist-api/internal/interface/middleware"
	"github.com/prasetya/tasklist-api/pkg/helpers"
)

// TodoModule wires the task-item routes. Every route sits behind the auth
// gate; handlers read the acting user from the request context only.

type TodoModule struct {
	Handler *handlers.TodoHandler
	JWT     *helpers.JWTManager
}

func NewTodoModule(h *handlers.TodoHandler, jwt *helpers.JWTManager) *TodoModule {
	return &TodoModule{Handler: h, JWT: jwt}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	todos := rg.Group("/todos")
	todos.Use(middleware.Auth(container.GetUsers(), container.GetSessions(), m.JWT))
	{
		todos.POST("", m.Handler.Create)
		todos.GET("", m.Handler.List)
		todos.GET("/:id", m.Handler.Get)
		todos.PATCH("/:id", m.Handler.Update)
		todos.DELETE("/:id", m.Handler.Delete)
	}
}
