// Package auth implements the login, signup and logout flows.
//
// These flows are the only writers of the session store; everything
// else reads it.
package auth

import (
	"context"
	"net/http"

	"github.com/Devduttshar/eventPlanner/internal/api"
	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/log"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

// Service drives the authentication endpoints and the session store.
type Service struct {
	api    *api.Client
	store  session.Store
	logger *log.Logger
}

// NewService creates the auth flows over the given gateway and store.
func NewService(client *api.Client, store session.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Service{api: client, store: store, logger: logger}
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string       `json:"_id"`
		Email string       `json:"email"`
		Role  session.Role `json:"role"`
	} `json:"user"`
}

// Login authenticates against the API. On success the token, role,
// user id and email are stored together; a failed login leaves the
// store untouched.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	resp, err := s.api.DoJSON(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return session.Session{}, err
	}
	if !resp.OK() {
		return session.Session{}, errors.NewLoginFailedError(resp.Message(""))
	}

	var payload loginResponse
	if err := resp.DecodeJSON(&payload); err != nil {
		return session.Session{}, err
	}
	if payload.Token == "" {
		return session.Session{}, errors.New(errors.ErrCodeServerBadPayload, "login response carried no token")
	}

	sess := session.Session{
		Token:  payload.Token,
		Role:   payload.User.Role,
		UserID: payload.User.ID,
		Email:  payload.User.Email,
	}
	if err := s.store.Set(sess); err != nil {
		// The in-memory session is set; persistence already warned.
		s.logger.Debug("session persisted only for this process")
	}

	s.logger.Info("logged in", "user_id", sess.UserID, "role", string(sess.Role))
	return sess, nil
}

// Signup registers a new account. It does not log the user in.
func (s *Service) Signup(ctx context.Context, name, email, password string, role session.Role) error {
	if !role.Valid() {
		return errors.New(errors.ErrCodeValidationInput, "role must be user or admin")
	}

	resp, err := s.api.DoJSON(ctx, http.MethodPost, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return errors.New(errors.ErrCodeValidationRejected, resp.Message("Failed to sign up"))
	}
	return nil
}

// Logout clears the session store. It never calls the API.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}
