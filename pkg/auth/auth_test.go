package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssueVerify(t *testing.T) {
	tokens, err := auth.NewTokens([]byte("test-secret"))
	require.NoError(t, err)

	signed, err := tokens.Issue(&domain.User{ID: "u1", Email: "ada@example.com"})
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestTokens_Rejects(t *testing.T) {
	tokens, err := auth.NewTokens([]byte("test-secret"))
	require.NoError(t, err)
	other, err := auth.NewTokens([]byte("other-secret"))
	require.NoError(t, err)

	signed, err := other.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestTokens_Expired(t *testing.T) {
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := issued
	tokens, err := auth.NewTokens([]byte("test-secret"),
		auth.WithTTL(time.Hour),
		auth.WithClock(func() time.Time { return clock }),
	)
	require.NoError(t, err)

	signed, err := tokens.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	clock = issued.Add(2 * time.Hour)
	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestNewTokens_EmptySecret(t *testing.T) {
	_, err := auth.NewTokens(nil)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, auth.CheckPassword(hash, "s3cret!"))
	assert.ErrorIs(t, auth.CheckPassword(hash, "wrong"), domain.ErrInvalidCredentials)

	_, err = auth.HashPassword("short")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	_, ok := auth.FromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, auth.UserID(ctx))

	ctx = auth.WithIdentity(ctx, auth.Identity{UserID: "u1", Email: "a@b.c"})
	id, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "u1", auth.UserID(ctx))
}
