package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
	repo "github.com/prasetya/tasklist-api/internal/domain/repository"
	"github.com/prasetya/tasklist-api/pkg/helpers"
)

// UserService owns the credential and session lifecycle: signup, login,
// logout. Token verification on inbound requests lives in the auth
// middleware, not here.
type UserService struct {
	Users    repo.UserRepository
	Sessions repo.SessionRegistry
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger
	Events   EventPublisher
}

func NewUserService(users repo.UserRepository, sessions repo.SessionRegistry, jwt *helpers.JWTManager, logger *logrus.Logger, events EventPublisher) *UserService {
	return &UserService{Users: users, Sessions: sessions, JWT: jwt, Logger: logger, Events: events}
}

// SignUp creates the account and logs it in: the password is hashed exactly
// once here, and the freshly issued token is appended to the session
// registry so the response token is immediately usable. Callers validate
// the email and password shape before this point.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, "", err
	}
	token, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	s.publish(ctx, newEvent("user.signup", u.ID, ""))
	return u, token, nil
}

// Login verifies credentials and appends a new session entry. Unknown email
// and wrong password collapse into ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	s.publish(ctx, newEvent("user.login", u.ID, ""))
	return u, token, nil
}

// Logout revokes exactly the presented token. Other sessions of the same
// user stay valid; revoking an already-removed token is a no-op.
func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	if err := s.Sessions.Remove(ctx, userID, token); err != nil {
		return err
	}
	s.publish(ctx, newEvent("user.logout", userID, ""))
	return nil
}

func (s *UserService) issueSession(ctx context.Context, u *entity.User) (string, error) {
	token, err := s.JWT.Issue(u.ID, entity.PurposeAuth)
	if err != nil {
		return "", err
	}
	if err := s.Sessions.Add(ctx, u.ID, entity.PurposeAuth, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) publish(ctx context.Context, ev Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event", ev.Type).Warn("event publish failed")
	}
}
