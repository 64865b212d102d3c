package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/academyhq/academy-console/backend"
	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/session"
)

type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Logout()
	Session() (models.User, bool)
}

type authService struct {
	api   *backend.Client
	store *session.Store
}

func NewAuthService(api *backend.Client, store *session.Store) AuthService {
	return &authService{api: api, store: store}
}

// Login proxies the upstream login endpoint and, on success, persists
// the returned identity. Credential verification is entirely upstream.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrValidationFailed)
	}

	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if _, err := s.api.PostAnonymous(ctx, "/auth/login", creds, &out); err != nil {
		var reqErr *backend.RequestError
		if errors.As(err, &reqErr) {
			return models.User{}, fmt.Errorf("%w: %s", ErrLoginFailed, reqErr.Message)
		}
		return models.User{}, err
	}
	if out.Token == "" {
		return models.User{}, fmt.Errorf("%w: upstream returned no token", ErrLoginFailed)
	}

	s.store.Login(out.User, out.Token)
	return out.User, nil
}

func (s *authService) Logout() {
	s.store.Logout()
}

func (s *authService) Session() (models.User, bool) {
	if !s.store.Authenticated() {
		return models.User{}, false
	}
	return s.store.Current()
}
