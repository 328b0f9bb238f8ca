package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
	"github.com/Sumit9819/digital-marketing-cms/internal/testutil"
)

func setupAuth(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	s := testutil.TestStore(t)
	return NewAuthService(s, auth.NewVerifier(testutil.TokenConfig(), s)), s
}

func TestLogin(t *testing.T) {
	svc, s := setupAuth(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, s, "editor@example.com", "correct-horse", model.RoleEditor)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "editor@example.com", Password: "nope"})
		assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
	})

	t.Run("unknown email has same message", func(t *testing.T) {
		_, wrongPass := svc.Login(ctx, LoginInput{Email: "editor@example.com", Password: "nope"})
		_, unknown := svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "nope"})
		require.True(t, errors.Is(unknown, apperr.ErrUnauthenticated))
		assert.Equal(t, apperr.As(wrongPass).Message, apperr.As(unknown).Message)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "not-an-email", Password: "x"})
		assert.True(t, errors.Is(err, apperr.ErrInvalid))
	})

	t.Run("success round trip", func(t *testing.T) {
		res, err := svc.Login(ctx, LoginInput{Email: "  Editor@Example.com ", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, user.ID, res.User.ID)
		assert.Equal(t, model.RoleEditor, res.User.Role)
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)

		verified, err := svc.VerifyToken(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, verified.ID)
		assert.Equal(t, user.Email, verified.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.VerifyToken(ctx, "not.a.token")
		assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
	})
}

func TestLogin_UpgradesLegacyHash(t *testing.T) {
	svc, s := setupAuth(t)
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now().UTC()
	user, err := s.CreateUser(ctx, store.CreateUserParams{
		Email:        "legacy@example.com",
		PasswordHash: string(legacy),
		Role:         model.RoleAuthor,
		Name:         "Legacy",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "legacy@example.com", Password: "old-password"})
	require.NoError(t, err)

	stored, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, string(legacy), stored.PasswordHash)
	assert.False(t, auth.NeedsRehash(stored.PasswordHash))

	_, err = svc.Login(ctx, LoginInput{Email: "legacy@example.com", Password: "old-password"})
	assert.NoError(t, err, "upgraded hash must still verify")
}
