package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"

	"studio-crm/internal/config"
	"studio-crm/pkg/utils"

	"go.uber.org/zap"
)

// Session is what the rest of the app consumes: who is signed in and since
// when. Credential validation never leaves this package.
type Session struct {
	User          SessionUser `json:"user"`
	EstablishedAt time.Time   `json:"established_at"`
}

type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	SessionFromClaims(claims *utils.UserClaims) Session
}

type AuthServiceImpl struct {
	Config *config.Config
	Logger *zap.Logger
}

func NewAuthService(cfg *config.Config, logger *zap.Logger) AuthService {
	utils.SetSecret(cfg.JWTSecret)
	return &AuthServiceImpl{Config: cfg, Logger: logger}
}

// Login checks the configured studio credentials and issues a JWT. This is a
// single-tenant app; there is no user table.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if !constantTimeEqual(email, s.Config.AdminEmail) || !constantTimeEqual(password, s.Config.AdminPassword) {
		return "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(s.Config.AdminEmail, s.Config.AdminEmail, s.Config.AdminName)
	if err != nil {
		return "", err
	}

	s.Logger.Info("user logged in", zap.String("email", s.Config.AdminEmail))
	return token, nil
}

func (s *AuthServiceImpl) SessionFromClaims(claims *utils.UserClaims) Session {
	establishedAt := time.Now()
	if claims.IssuedAt != nil {
		establishedAt = claims.IssuedAt.Time
	}
	return Session{
		User:          SessionUser{Email: claims.Email, Name: claims.Name},
		EstablishedAt: establishedAt,
	}
}

// constantTimeEqual hashes first so length differences leak nothing.
func constantTimeEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
