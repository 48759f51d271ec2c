package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/zedasignal/internal/auth"
	"github.com/JMURv/zedasignal/internal/auth/captcha"
	"github.com/JMURv/zedasignal/internal/cache"
	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error)
	Logout(ctx context.Context, req *dto.RefreshRequest) error
	SendVerificationCode(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, req *dto.VerifyRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) error
	ConfirmPasswordReset(ctx context.Context, req *dto.ConfirmResetRequest) error
}

type authRepo interface {
	CreateVerificationCode(ctx context.Context, email, code string) error
	ListVerificationCodes(ctx context.Context, email string) ([]*md.VerificationCode, error)
	ConsumeVerificationCode(ctx context.Context, codeID int64, email string) (uuid.UUID, error)
	CreateResetToken(ctx context.Context, t *md.PasswordResetToken) error
	GetResetToken(ctx context.Context, key string) (*md.PasswordResetToken, error)
	DeleteResetTokens(ctx context.Context, userID int64) error
}

const blacklistKey = "token-blacklist:%s"

func (c *Controller) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	const op = "auth.Login.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ok, err := c.au.VerifyRecaptcha(ctx, req.Token, captcha.PassAuth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, captcha.ErrVerificationFailed
	}

	u, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err = c.au.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	access, refresh, err := c.au.GenPair(ctx, u.UUID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:   u,
		Tokens: dto.TokenPair{Access: access, Refresh: refresh},
	}, nil
}

// Refresh rotates a refresh token. The presented token is revoked.
func (c *Controller) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error) {
	const op = "auth.Refresh.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefresh(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}

	if c.isRevoked(ctx, claims.ID) {
		zap.L().Info("refresh token is revoked", zap.String("op", op), zap.String("uid", claims.UID.String()))
		return nil, auth.ErrTokenRevoked
	}

	u, err := c.user(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	access, refresh, err := c.au.GenPair(ctx, u.UUID)
	if err != nil {
		return nil, err
	}

	c.revoke(ctx, claims.ID, claims.ExpiresAt.Time, u.UUID.String())
	return &dto.TokenPair{Access: access, Refresh: refresh}, nil
}

// Logout blacklists the refresh token until it expires.
func (c *Controller) Logout(ctx context.Context, req *dto.RefreshRequest) error {
	const op = "auth.Logout.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefresh(ctx, req.Refresh)
	if err != nil {
		return err
	}

	c.revoke(ctx, claims.ID, claims.ExpiresAt.Time, claims.UID.String())
	return nil
}

func (c *Controller) isRevoked(ctx context.Context, jti string) bool {
	var uid string
	err := c.cache.GetToStruct(ctx, fmt.Sprintf(blacklistKey, jti), &uid)
	return err == nil || !errors.Is(err, cache.ErrNotFoundInCache)
}

func (c *Controller) revoke(ctx context.Context, jti string, exp time.Time, uid string) {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return
	}

	if bytes, err := json.Marshal(uid); err == nil {
		c.cache.Set(ctx, ttl, fmt.Sprintf(blacklistKey, jti), bytes)
	}
}

func (c *Controller) SendVerificationCode(ctx context.Context, email string) error {
	const op = "auth.SendVerificationCode.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	code, err := newVerificationCode()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to generate verification code", zap.String("op", op), zap.Error(err))
		return err
	}

	if err = c.repo.CreateVerificationCode(ctx, email, code); err != nil {
		return err
	}

	return c.sender.Send(
		ctx, md.Contact{Email: email}, notify.KindUserVerification, map[string]any{
			"email":             email,
			"verification_code": code,
			"request_datetime":  time.Now().UTC().Format(time.RFC1123),
			"domain_name":       c.conf.DomainName,
		}, notify.ChannelEmail,
	)
}

// VerifyEmail consumes a verification code. A code can be consumed once;
// every other code issued to the same email is dropped on success.
func (c *Controller) VerifyEmail(ctx context.Context, req *dto.VerifyRequest) error {
	const op = "auth.VerifyEmail.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(req.Code) != config.VerificationCodeLength {
		return ErrInvalidCode
	}

	codes, err := c.repo.ListVerificationCodes(ctx, req.Email)
	if err != nil {
		return err
	}

	var found *md.VerificationCode
	for _, v := range codes {
		if v.Code == req.Code {
			found = v
			break
		}
	}

	if found == nil {
		return ErrInvalidCode
	}
	if found.Used {
		return ErrCodeUsed
	}

	uid, err := c.repo.ConsumeVerificationCode(ctx, found.ID, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCodeUsed
		}
		return err
	}

	if uid != uuid.Nil {
		c.cache.Delete(ctx, fmt.Sprintf(userCacheKey, uid))
	}
	go c.cache.InvalidateKeysByPattern(detach(ctx), usersPattern)
	return nil
}

func (c *Controller) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "auth.RequestPasswordReset.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUnknownEmail
		}
		return err
	}
	if !u.IsActive {
		return ErrUnknownEmail
	}

	key, err := newResetKey()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to generate reset key", zap.String("op", op), zap.Error(err))
		return err
	}

	ip, _ := ctx.Value(config.IpKey).(string)
	ua, _ := ctx.Value(config.UaKey).(string)
	err = c.repo.CreateResetToken(
		ctx, &md.PasswordResetToken{
			UserID:    u.ID,
			Key:       key,
			IPAddress: ip,
			UserAgent: ua,
		},
	)
	if err != nil {
		return err
	}

	return c.sender.Send(
		ctx, u, notify.KindPasswordReset, map[string]any{
			"user":        u,
			"reset_code":  key,
			"domain_name": c.conf.DomainName,
		}, notify.ChannelEmail,
	)
}

func (c *Controller) ValidateResetToken(ctx context.Context, token string) error {
	const op = "auth.ValidateResetToken.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := c.resetToken(ctx, token)
	return err
}

func (c *Controller) ConfirmPasswordReset(ctx context.Context, req *dto.ConfirmResetRequest) error {
	const op = "auth.ConfirmPasswordReset.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	t, err := c.resetToken(ctx, req.Token)
	if err != nil {
		return err
	}

	hash, err := c.au.Hash(req.Password)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to hash password", zap.String("op", op), zap.Error(err))
		return err
	}

	if err = c.repo.UpdatePassword(ctx, t.UserID, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return c.repo.DeleteResetTokens(ctx, t.UserID)
}

// resetToken returns ErrNotFound for unknown and expired tokens alike.
func (c *Controller) resetToken(ctx context.Context, key string) (*md.PasswordResetToken, error) {
	t, err := c.repo.GetResetToken(ctx, key)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ttl := time.Duration(c.conf.Auth.ResetTokenHours) * time.Hour
	if time.Since(t.CreatedAt) > ttl {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, ErrTokenExpired)
	}
	return t, nil
}
