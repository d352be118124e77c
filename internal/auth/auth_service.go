package auth

import (
	"context"
	autherrors "go-esyleave/internal/auth/errors"
	"go-esyleave/internal/store"
	"go-esyleave/internal/user"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login verifies the credentials and, on success, persists the user
	// snapshot as the current session and returns it with an access token.
	// On failure the existing session is left untouched.
	Login(ctx context.Context, username, password string) (accessToken string, resp AuthResponse, err error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (AuthResponse, error)
}

type service struct {
	st       *store.Store
	userRepo user.Repository
	creds    user.CredentialRepository
	sessions SessionRepository
	logger   *zap.Logger
}

func NewService(
	st *store.Store,
	userRepo user.Repository,
	creds user.CredentialRepository,
	sessions SessionRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{st: st, userRepo: userRepo, creds: creds, sessions: sessions, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (string, AuthResponse, error) {
	var snapshot user.User

	err := s.st.Update(ctx, func(tx *store.Tx) error {
		u, err := s.userRepo.WithTx(tx).FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			return autherrors.ErrInvalidCredentials
		}

		// Plaintext comparison against the credentials table, preserved
		// behavior. Swapping in hashing only touches this service.
		secret, ok, err := s.creds.WithTx(tx).Get(ctx, username)
		if err != nil {
			return err
		}
		if !ok || secret != password {
			return autherrors.ErrInvalidCredentials
		}

		snapshot = *u
		return s.sessions.WithTx(tx).Put(ctx, snapshot)
	})
	if err != nil {
		s.logger.Warn("login failed", zap.String("username", username))
		return "", AuthResponse{}, err
	}

	token, err := s.generateToken(snapshot.ID, snapshot.Role, 24*time.Hour)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("user_id", snapshot.ID),
		zap.String("role", snapshot.Role),
	)
	return token, mapToResponse(snapshot), nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("logout")
	return nil
}

// CurrentUser returns the persisted session snapshot. It does not re-read
// the users table: edits after login are invisible until the next login.
func (s *service) CurrentUser(ctx context.Context) (AuthResponse, error) {
	snapshot, err := s.sessions.Get(ctx)
	if err != nil {
		return AuthResponse{}, err
	}
	if snapshot == nil {
		return AuthResponse{}, autherrors.ErrNoSession
	}
	return mapToResponse(*snapshot), nil
}

func (s *service) generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(u user.User) AuthResponse {
	return AuthResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Username:     u.Username,
		Role:         u.Role,
		Department:   u.Department,
		Status:       u.Status,
		LeaveBalance: u.LeaveBalance,
	}
}
