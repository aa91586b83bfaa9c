package router

import (
	"github.com/prasetya/tasklist-api/internal/application"
	"github.com/prasetya/tasklist-api/internal/container"
	handlers "github.com/prasetya/tasklist-api/internal/interface/http"
	"github.com/prasetya/tasklist-api/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()

	// A nil *RabbitPublisher must stay a nil interface, otherwise the
	// services' nil check never fires.
	var events application.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}

	userSvc := application.NewUserService(
		container.GetUsers(),
		container.GetSessions(),
		container.GetJWT(),
		logger,
		events,
	)
	todoSvc := application.NewTodoService(
		container.GetTodos(),
		logger,
		events,
	)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewTodoModule(handlers.NewTodoHandler(todoSvc, logger), container.GetJWT()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
