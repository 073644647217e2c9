package services

import (
	"context"
	"testing"
	"time"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *auth.TokenManager) {
	t.Helper()

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	admin := &models.User{Email: "admin@example.com", PasswordHash: hash}
	admin.ID = 7
	repo := newFakeUserRepo(admin)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, tokens), repo, tokens
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), nil, &dto.LoginRequest{Email: " Admin@Example.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := tokens.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), nil, &dto.LoginRequest{Email: "nobody@example.com", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, nil, 7, &dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "short"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	err = svc.ChangePassword(ctx, nil, 7, &dto.ChangePasswordRequest{CurrentPassword: "nope-nope", NewPassword: "new-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, nil, 7, &dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "new-password"}))
	assert.True(t, auth.CheckPasswordHash("new-password", repo.users["admin@example.com"].PasswordHash))
}

func TestEnsureAdmin(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, nil, "admin@example.com", "whatever1")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = svc.EnsureAdmin(ctx, nil, "Owner@Example.com", "owner-pass")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Contains(t, repo.users, "owner@example.com")
}
