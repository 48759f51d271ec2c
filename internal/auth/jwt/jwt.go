package jwt

import (
	"context"
	"time"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Port interface {
	GenPair(ctx context.Context, uid uuid.UUID) (string, string, error)
	NewToken(ctx context.Context, uid uuid.UUID, t TokenType, d time.Duration) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Core struct {
	secret []byte
	issuer string
}

type Claims struct {
	UID  uuid.UUID `json:"uid"`
	Type TokenType `json:"typ"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{secret: []byte(conf.Auth.JWT.Secret), issuer: conf.Auth.JWT.Issuer}
}

func (c *Core) GenPair(ctx context.Context, uid uuid.UUID) (string, string, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.NewToken(ctx, uid, AccessToken, config.AccessTokenDuration)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	refresh, err := c.NewToken(ctx, uid, RefreshToken, config.RefreshTokenDuration)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	return access, refresh, nil
}

func (c *Core) NewToken(ctx context.Context, uid uuid.UUID, t TokenType, d time.Duration) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := time.Now()
	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID:  uid,
			Type: t,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				ExpiresAt: jwt.NewNumericDate(now.Add(d)),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
		jwt.WithIssuer(c.issuer),
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, err
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
