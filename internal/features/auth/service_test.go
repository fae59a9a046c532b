package auth

import (
	"context"
	"testing"

	"studio-crm/internal/config"
	"studio-crm/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuth() AuthService {
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "owner@studio.local",
		AdminPassword: "hunter2",
		AdminName:     "Studio Owner",
	}
	return NewAuthService(cfg, zap.NewNop())
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestAuth()

	token, err := svc.Login(context.Background(), "owner@studio.local", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@studio.local", claims.Email)
	assert.Equal(t, "Studio Owner", claims.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "owner@studio.local", "wrong"},
		{"wrong email", "intruder@x.com", "hunter2"},
		{"both wrong", "intruder@x.com", "wrong"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestSessionFromClaims(t *testing.T) {
	svc := newTestAuth()

	session := svc.SessionFromClaims(&utils.UserClaims{
		Email: "owner@studio.local",
		Name:  "Studio Owner",
	})
	assert.Equal(t, "owner@studio.local", session.User.Email)
	assert.Equal(t, "Studio Owner", session.User.Name)
	assert.False(t, session.EstablishedAt.IsZero())
}
