package service

import (
	"context"
	"errors"
	"fmt"

	"bookstore-storefront/internal/domains/auth/model"
	"bookstore-storefront/internal/domains/auth/repository"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/jwt"
	"bookstore-storefront/pkg/logger"
)

type ServiceInterface interface {
	// Login authenticates against the backend and persists token + user
	// in the session. Returns the remembered post-login path.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context) error
	// Me returns the stored user; ErrNotAuthenticated without a live token
	Me(ctx context.Context) (*model.User, error)
	// IsAuthenticated checks the stored (or Bearer) token is present and live
	IsAuthenticated(ctx context.Context) bool
	// RememberRedirect stores where to go after login
	RememberRedirect(ctx context.Context, path string) error
}

type AuthService struct {
	repo      repository.RepositoryInterface
	sessions  *session.Opener
	inspector *jwt.Inspector
}

func NewAuthService(repo repository.RepositoryInterface, sessions *session.Opener, inspector *jwt.Inspector) ServiceInterface {
	return &AuthService{repo: repo, sessions: sessions, inspector: inspector}
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	// Step 1: Validate
	if err := req.Validate(); err != nil {
		return nil, err
	}

	store, sessionID, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Step 2: Authenticate with backend
	result, err := s.repo.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	// Step 3: Persist token + user
	if err := store.Set(ctx, session.KeyAuthToken, result.AccessToken, 0); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if err := store.Set(ctx, session.KeyAuthUser, result.User, 0); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	// Step 4: Consume the remembered return path
	redirect := model.DefaultRedirect
	var remembered string
	if found, _ := store.Get(ctx, session.KeyPostLoginRedirect, &remembered); found {
		redirect = model.SafeRedirect(remembered)
		if err := store.Delete(ctx, session.KeyPostLoginRedirect); err != nil {
			logger.Error("Failed to clear post-login redirect", err)
		}
	}

	logger.Info("User logged in", map[string]interface{}{
		"session_id": sessionID,
		"user_id":    result.User.ID.String(),
		"redirect":   redirect,
	})
	return &model.LoginResponse{User: result.User, RedirectTo: redirect}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	store, _, err := s.sessions.FromContext(ctx)
	if err != nil {
		return err
	}
	return store.Delete(ctx, session.KeyAuthToken, session.KeyAuthUser)
}

func (s *AuthService) Me(ctx context.Context) (*model.User, error) {
	store, _, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var token string
	if found, err := store.Get(ctx, session.KeyAuthToken, &token); err != nil || !found {
		return nil, model.ErrNotAuthenticated
	}
	if _, err := s.inspector.Inspect(token); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrSessionExpired
		}
		return nil, model.ErrNotAuthenticated
	}

	var user model.User
	if found, err := store.Get(ctx, session.KeyAuthUser, &user); err != nil || !found {
		return nil, model.ErrNotAuthenticated
	}
	return &user, nil
}

// IsAuthenticated checks the session token, falling back to the
// Bearer token attached to the request context
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	var token string
	if store, sessionID, err := s.sessions.FromContext(ctx); err == nil {
		if _, err := store.Get(ctx, session.KeyAuthToken, &token); err != nil {
			logger.ErrorWithFields("Failed to read session token", err, map[string]interface{}{
				"session_id": sessionID,
			})
		}
	}
	if token == "" {
		token = apiclient.TokenFromContext(ctx)
	}
	return token != "" && s.inspector.IsAuthenticated(token)
}

func (s *AuthService) RememberRedirect(ctx context.Context, path string) error {
	store, _, err := s.sessions.FromContext(ctx)
	if err != nil {
		return err
	}
	return store.Set(ctx, session.KeyPostLoginRedirect, model.SafeRedirect(path), 0)
}
