package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/prasetya/tasklist-api/internal/application"
	"github.com/prasetya/tasklist-api/internal/domain/entity"
	repo "github.com/prasetya/tasklist-api/internal/domain/repository"
	"github.com/prasetya/tasklist-api/internal/interface/middleware"
	"github.com/prasetya/tasklist-api/pkg/validation"
)

type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Text string `json:"text" validate:"required,min=2"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func todoJSON(t *entity.Todo) gin.H {
	return gin.H{
		"id":          t.ID,
		"authorId":    t.AuthorID,
		"text":        t.Text,
		"completed":   t.Completed,
		"completedAt": t.CompletedAt,
	}
}

// Create handles POST /todos. The author comes from the authenticated
// context, never from the body.
func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Errors{{Field: "payload", Code: "invalid", Message: "invalid json"}}})
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := validation.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err})
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Text)
	if err != nil {
		h.Logger.WithError(err).Error("todo create failed")
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, todoJSON(t))
}

// List handles GET /todos.
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		h.Logger.WithError(err).Error("todo list failed")
		c.Status(http.StatusNotFound)
		return
	}
	items := make([]gin.H, 0, len(todos))
	for i := range todos {
		items = append(items, todoJSON(&todos[i]))
	}
	c.JSON(http.StatusOK, gin.H{"todos": items})
}

// Get handles GET /todos/:id. An invalid id, a missing item, and an item
// owned by someone else all answer the same empty 404.
func (h *TodoHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoJSON(t))
}

// Update handles PATCH /todos/:id. completed/completedAt are derived
// server-side on every call, whether or not the client sent completed.
func (h *TodoHandler) Update(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Errors{{Field: "payload", Code: "invalid", Message: "invalid json"}}})
		return
	}
	if req.Text != nil {
		trimmed := strings.TrimSpace(*req.Text)
		if err := validation.Struct(createTodoRequest{Text: trimmed}); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": err})
			return
		}
		req.Text = &trimmed
	}

	in := application.TodoInput{Text: req.Text, Completed: req.Completed}
	t, err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"), in)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoJSON(t))
}

// Delete handles DELETE /todos/:id and returns the removed item.
func (h *TodoHandler) Delete(c *gin.Context) {
	t, err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoJSON(t))
}

func (h *TodoHandler) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	h.Logger.WithError(err).Error("todo operation failed")
	c.Status(http.StatusBadRequest)
}
