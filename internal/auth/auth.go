package auth

import (
	"context"

	"github.com/JMURv/zedasignal/internal/auth/captcha"
	"github.com/JMURv/zedasignal/internal/auth/jwt"
	"github.com/JMURv/zedasignal/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

type Core struct {
	tokens  jwt.Port
	captcha captcha.Port
}

func New(conf config.Config) *Core {
	return &Core{
		tokens:  jwt.New(conf),
		captcha: captcha.New(conf),
	}
}

func (c *Core) Hash(val string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(val), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (c *Core) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (c *Core) GenPair(ctx context.Context, uid uuid.UUID) (string, string, error) {
	return c.tokens.GenPair(ctx, uid)
}

func (c *Core) ParseClaims(ctx context.Context, token string) (jwt.Claims, error) {
	return c.tokens.ParseClaims(ctx, token)
}

// ParseRefresh accepts only unexpired refresh tokens.
func (c *Core) ParseRefresh(ctx context.Context, token string) (jwt.Claims, error) {
	claims, err := c.tokens.ParseClaims(ctx, token)
	if err != nil {
		return claims, ErrInvalidToken
	}
	if claims.Type != jwt.RefreshToken {
		return claims, ErrInvalidToken
	}
	return claims, nil
}

func (c *Core) VerifyRecaptcha(ctx context.Context, token string, action captcha.Actions) (bool, error) {
	return c.captcha.VerifyRecaptcha(ctx, token, action)
}
