package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCore() *Core {
	conf := config.Config{}
	conf.Auth.JWT.Secret = "test-secret"
	conf.Auth.JWT.Issuer = "zedasignal"
	return New(conf)
}

func TestCore_GenPair(t *testing.T) {
	ctx := context.Background()
	c := newCore()
	uid := uuid.New()

	access, refresh, err := c.GenPair(ctx, uid)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := c.ParseClaims(ctx, access)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, AccessToken, claims.Type)
	assert.NotEmpty(t, claims.ID)

	claims, err = c.ParseClaims(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, RefreshToken, claims.Type)
	assert.WithinDuration(t, time.Now().Add(config.RefreshTokenDuration), claims.ExpiresAt.Time, time.Minute)
}

func TestCore_ParseClaims(t *testing.T) {
	ctx := context.Background()
	c := newCore()
	uid := uuid.New()

	t.Run("Expired", func(t *testing.T) {
		token, err := c.NewToken(ctx, uid, AccessToken, -time.Minute)
		require.NoError(t, err)

		_, err = c.ParseClaims(ctx, token)
		assert.Error(t, err)
	})

	t.Run("ForeignSecret", func(t *testing.T) {
		other := &Core{secret: []byte("other"), issuer: c.issuer}
		token, err := other.NewToken(ctx, uid, AccessToken, time.Minute)
		require.NoError(t, err)

		_, err = c.ParseClaims(ctx, token)
		assert.Error(t, err)
	})

	t.Run("ForeignIssuer", func(t *testing.T) {
		other := &Core{secret: c.secret, issuer: "someone-else"}
		token, err := other.NewToken(ctx, uid, AccessToken, time.Minute)
		require.NoError(t, err)

		_, err = c.ParseClaims(ctx, token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := c.ParseClaims(ctx, "not.a.token")
		assert.Error(t, err)
	})
}
