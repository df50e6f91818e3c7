package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/pkg/helpers"
)

func newAuth() *AuthService {
	jwt := helpers.NewJWTManager("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthService(newFakeUserRepo(), jwt, nil, nil)
}

func TestAuthService_Register(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()

	u, pair, err := svc.Register(ctx, "Alice", "Alice@Example.COM", "password123")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email, "email is stored lowercased")
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, "password123", u.Password, "password must be hashed")

	// The same email in a different case is a conflict.
	_, _, err = svc.Register(ctx, "Mallory", "ALICE@example.com", "password456")
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	u, pair, err := svc.Login(ctx, "ALICE@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
	require.NotEmpty(t, pair.AccessToken)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()

	_, pair, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	rotated, userID, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, userID)
	require.NotEmpty(t, rotated.AccessToken)

	_, _, err = svc.Refresh(ctx, "not-a-token")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// An access token is signed with the wrong secret for refresh.
	_, _, err = svc.Refresh(ctx, pair.AccessToken)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_PrivatePassword(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	valid, msg, err := svc.ValidatePrivatePassword(ctx, u.ID, "anything")
	require.NoError(t, err)
	require.False(t, valid)
	require.Equal(t, "no private password set", msg)

	err = svc.SetPrivatePassword(ctx, u.ID, "hunter22", "different")
	require.ErrorIs(t, err, ErrPasswordMismatch)

	require.NoError(t, svc.SetPrivatePassword(ctx, u.ID, "hunter22", "hunter22"))

	valid, _, err = svc.ValidatePrivatePassword(ctx, u.ID, "hunter22")
	require.NoError(t, err)
	require.True(t, valid)

	valid, _, err = svc.ValidatePrivatePassword(ctx, u.ID, "wrong")
	require.NoError(t, err)
	require.False(t, valid)
}

func TestAuthService_GetProfile(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)

	_, err = svc.GetProfile(ctx, "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
