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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// credentialsRequest covers signup and login. Fields are trimmed before
// validation so the length rules apply to meaningful content.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,min=7,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// userJSON is the only user representation ever sent to clients; the
// password hash stays server-side.
func userJSON(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "email": u.Email}
}

// SignUp handles POST /users.
func (h *UserHandler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Errors{{Field: "payload", Code: "invalid", Message: "invalid json"}}})
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err})
		return
	}

	u, token, err := h.Svc.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Errors{
				{Field: "email", Code: "duplicate", Message: "is already registered"},
			}})
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		c.Status(http.StatusBadRequest)
		return
	}
	c.Header(middleware.HeaderAuth, token)
	c.JSON(http.StatusOK, userJSON(u))
}

// Login handles POST /users/login. Bad credentials answer 400 with an empty
// body; nothing about the failure is disclosed.
func (h *UserHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.Header(middleware.HeaderAuth, token)
	c.JSON(http.StatusOK, userJSON(u))
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	u, ok := middleware.UserFrom(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, userJSON(u))
}

// Logout handles DELETE /users/me/logout: it revokes exactly the token the
// request was authenticated with.
func (h *UserHandler) Logout(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	token := c.GetString(middleware.CtxTokenKey)
	if err := h.Svc.Logout(c.Request.Context(), userID, token); err != nil {
		h.Logger.WithError(err).Error("logout failed")
		c.Status(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusOK)
}
