package ctrl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/JMURv/zedasignal/internal/auth"
	"github.com/JMURv/zedasignal/internal/auth/captcha"
	"github.com/JMURv/zedasignal/internal/auth/jwt"
	"github.com/JMURv/zedasignal/internal/cache"
	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/repo"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_VerifyEmail(t *testing.T) {
	ctx := context.Background()
	const email = "trader@example.com"
	uid := uuid.New()

	tests := []struct {
		name  string
		code  string
		setup func(d *testDeps)
		err   error
	}{
		{
			name:  "WrongLength",
			code:  "12345",
			setup: func(d *testDeps) {},
			err:   ErrInvalidCode,
		},
		{
			name: "NoCodesForEmail",
			code: "012345",
			setup: func(d *testDeps) {
				d.repo.EXPECT().ListVerificationCodes(gomock.Any(), email).Return([]*md.VerificationCode{}, nil)
			},
			err: ErrInvalidCode,
		},
		{
			name: "UnknownCode",
			code: "012345",
			setup: func(d *testDeps) {
				d.repo.EXPECT().ListVerificationCodes(gomock.Any(), email).Return(
					[]*md.VerificationCode{{ID: 1, Code: "999999", Email: email}}, nil,
				)
			},
			err: ErrInvalidCode,
		},
		{
			name: "UsedCodeCannotBeReused",
			code: "012345",
			setup: func(d *testDeps) {
				d.repo.EXPECT().ListVerificationCodes(gomock.Any(), email).Return(
					[]*md.VerificationCode{{ID: 1, Code: "012345", Email: email, Used: true}}, nil,
				)
			},
			err: ErrCodeUsed,
		},
		{
			name: "ConsumedConcurrently",
			code: "012345",
			setup: func(d *testDeps) {
				d.repo.EXPECT().ListVerificationCodes(gomock.Any(), email).Return(
					[]*md.VerificationCode{{ID: 1, Code: "012345", Email: email}}, nil,
				)
				d.repo.EXPECT().ConsumeVerificationCode(gomock.Any(), int64(1), email).Return(uuid.Nil, repo.ErrNotFound)
			},
			err: ErrCodeUsed,
		},
		{
			name: "Success",
			code: "012345",
			setup: func(d *testDeps) {
				d.repo.EXPECT().ListVerificationCodes(gomock.Any(), email).Return(
					[]*md.VerificationCode{
						{ID: 3, Code: "111111", Email: email},
						{ID: 2, Code: "012345", Email: email},
					}, nil,
				)
				d.repo.EXPECT().ConsumeVerificationCode(gomock.Any(), int64(2), email).Return(uid, nil)
				d.cache.EXPECT().Delete(gomock.Any(), "user:"+uid.String())
			},
		},
		{
			name: "VerifiedWithoutAccount",
			code: "012345",
			setup: func(d *testDeps) {
				d.repo.EXPECT().ListVerificationCodes(gomock.Any(), email).Return(
					[]*md.VerificationCode{{ID: 4, Code: "012345", Email: email}}, nil,
				)
				d.repo.EXPECT().ConsumeVerificationCode(gomock.Any(), int64(4), email).Return(uuid.Nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newTestCtrl(t)
			tt.setup(d)

			err := c.VerifyEmail(ctx, &dto.VerifyRequest{Email: email, Code: tt.code})
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestController_SendVerificationCode(t *testing.T) {
	ctx := context.Background()
	const email = "trader@example.com"

	t.Run("Success", func(t *testing.T) {
		c, d := newTestCtrl(t)

		var stored string
		d.repo.EXPECT().CreateVerificationCode(gomock.Any(), email, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, code string) error {
				stored = code
				return nil
			},
		)
		d.sender.EXPECT().
			Send(gomock.Any(), md.Contact{Email: email}, notify.KindUserVerification, gomock.Any(), notify.ChannelEmail).
			DoAndReturn(
				func(_ context.Context, _ notify.Recipient, _ notify.Kind, data map[string]any, _ notify.Channel) error {
					assert.Equal(t, stored, data["verification_code"])
					assert.Equal(t, "https://zedasignal.com", data["domain_name"])
					return nil
				},
			)

		require.NoError(t, c.SendVerificationCode(ctx, email))
		assert.Len(t, stored, config.VerificationCodeLength)
	})

	t.Run("MailError", func(t *testing.T) {
		c, d := newTestCtrl(t)
		testErr := errors.New("smtp down")

		d.repo.EXPECT().CreateVerificationCode(gomock.Any(), email, gomock.Any()).Return(nil)
		d.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(testErr)

		assert.ErrorIs(t, c.SendVerificationCode(ctx, email), testErr)
	})
}

func TestController_Login(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 1, UUID: uuid.New(), Email: "trader@example.com", Password: "hash", IsActive: true}
	req := &dto.LoginRequest{Email: u.Email, Password: "password1", Token: "captcha"}

	tests := []struct {
		name  string
		setup func(d *testDeps)
		err   error
	}{
		{
			name: "CaptchaRejected",
			setup: func(d *testDeps) {
				d.auth.EXPECT().VerifyRecaptcha(gomock.Any(), "captcha", captcha.PassAuth).Return(false, nil)
			},
			err: captcha.ErrVerificationFailed,
		},
		{
			name: "UnknownUser",
			setup: func(d *testDeps) {
				d.auth.EXPECT().VerifyRecaptcha(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), u.Email).Return(nil, repo.ErrNotFound)
			},
			err: auth.ErrInvalidCredentials,
		},
		{
			name: "WrongPassword",
			setup: func(d *testDeps) {
				d.auth.EXPECT().VerifyRecaptcha(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), u.Email).Return(u, nil)
				d.auth.EXPECT().ComparePasswords([]byte("hash"), []byte("password1")).Return(auth.ErrInvalidCredentials)
			},
			err: auth.ErrInvalidCredentials,
		},
		{
			name: "InactiveUser",
			setup: func(d *testDeps) {
				inactive := *u
				inactive.IsActive = false
				d.auth.EXPECT().VerifyRecaptcha(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), u.Email).Return(&inactive, nil)
				d.auth.EXPECT().ComparePasswords(gomock.Any(), gomock.Any()).Return(nil)
			},
			err: ErrUserInactive,
		},
		{
			name: "Success",
			setup: func(d *testDeps) {
				d.auth.EXPECT().VerifyRecaptcha(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), u.Email).Return(u, nil)
				d.auth.EXPECT().ComparePasswords(gomock.Any(), gomock.Any()).Return(nil)
				d.auth.EXPECT().GenPair(gomock.Any(), u.UUID).Return("access", "refresh", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newTestCtrl(t)
			tt.setup(d)

			res, err := c.Login(ctx, req)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, u, res.User)
			assert.Equal(t, dto.TokenPair{Access: "access", Refresh: "refresh"}, res.Tokens)
		})
	}
}

func refreshClaims(uid uuid.UUID) jwt.Claims {
	return jwt.Claims{
		UID:  uid,
		Type: jwt.RefreshToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestController_Refresh(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 1, UUID: uuid.New(), IsActive: true}
	claims := refreshClaims(u.UUID)
	key := fmt.Sprintf(blacklistKey, claims.ID)

	t.Run("InvalidToken", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.auth.EXPECT().ParseRefresh(gomock.Any(), "bad").Return(jwt.Claims{}, auth.ErrInvalidToken)

		_, err := c.Refresh(ctx, &dto.RefreshRequest{Refresh: "bad"})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Revoked", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.auth.EXPECT().ParseRefresh(gomock.Any(), "refresh").Return(claims, nil)
		d.cache.EXPECT().GetToStruct(gomock.Any(), key, gomock.Any()).Return(nil)

		_, err := c.Refresh(ctx, &dto.RefreshRequest{Refresh: "refresh"})
		assert.ErrorIs(t, err, auth.ErrTokenRevoked)
	})

	t.Run("RotatesToken", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.auth.EXPECT().ParseRefresh(gomock.Any(), "refresh").Return(claims, nil)
		d.cache.EXPECT().GetToStruct(gomock.Any(), key, gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.auth.EXPECT().GenPair(gomock.Any(), u.UUID).Return("access2", "refresh2", nil)
		d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), key, gomock.Any())

		res, err := c.Refresh(ctx, &dto.RefreshRequest{Refresh: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, &dto.TokenPair{Access: "access2", Refresh: "refresh2"}, res)
	})
}

func TestController_Logout(t *testing.T) {
	ctx := context.Background()
	claims := refreshClaims(uuid.New())

	c, d := newTestCtrl(t)
	d.auth.EXPECT().ParseRefresh(gomock.Any(), "refresh").Return(claims, nil)
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), fmt.Sprintf(blacklistKey, claims.ID), gomock.Any()).Do(
		func(_ context.Context, ttl time.Duration, _ string, _ any) {
			assert.Greater(t, ttl, time.Duration(0))
			assert.LessOrEqual(t, ttl, time.Hour)
		},
	)

	assert.NoError(t, c.Logout(ctx, &dto.RefreshRequest{Refresh: "refresh"}))
}

func TestController_RequestPasswordReset(t *testing.T) {
	ctx := context.WithValue(context.Background(), config.IpKey, "10.0.0.1")
	u := &md.User{ID: 7, UUID: uuid.New(), Email: "trader@example.com", IsActive: true}

	t.Run("UnknownEmail", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, repo.ErrNotFound)

		assert.ErrorIs(t, c.RequestPasswordReset(ctx, "nobody@example.com"), ErrUnknownEmail)
	})

	t.Run("Success", func(t *testing.T) {
		c, d := newTestCtrl(t)

		var key string
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), u.Email).Return(u, nil)
		d.repo.EXPECT().CreateResetToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tok *md.PasswordResetToken) error {
				assert.Equal(t, u.ID, tok.UserID)
				assert.Equal(t, "10.0.0.1", tok.IPAddress)
				assert.NotEmpty(t, tok.Key)
				key = tok.Key
				return nil
			},
		)
		d.sender.EXPECT().Send(gomock.Any(), u, notify.KindPasswordReset, gomock.Any(), notify.ChannelEmail).DoAndReturn(
			func(_ context.Context, _ notify.Recipient, _ notify.Kind, data map[string]any, _ notify.Channel) error {
				assert.Equal(t, key, data["reset_code"])
				return nil
			},
		)

		assert.NoError(t, c.RequestPasswordReset(ctx, u.Email))
	})
}

func TestController_ValidateResetToken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		tok  *md.PasswordResetToken
		err  error
	}{
		{name: "Fresh", tok: &md.PasswordResetToken{UserID: 1, CreatedAt: time.Now().Add(-time.Hour)}},
		{name: "Expired", tok: &md.PasswordResetToken{UserID: 1, CreatedAt: time.Now().Add(-25 * time.Hour)}, err: ErrNotFound},
		{name: "Unknown", err: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newTestCtrl(t)
			if tt.tok != nil {
				d.repo.EXPECT().GetResetToken(gomock.Any(), "key").Return(tt.tok, nil)
			} else {
				d.repo.EXPECT().GetResetToken(gomock.Any(), "key").Return(nil, repo.ErrNotFound)
			}

			err := c.ValidateResetToken(ctx, "key")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestController_ConfirmPasswordReset(t *testing.T) {
	ctx := context.Background()
	c, d := newTestCtrl(t)

	d.repo.EXPECT().GetResetToken(gomock.Any(), "key").Return(
		&md.PasswordResetToken{UserID: 4, CreatedAt: time.Now()}, nil,
	)
	d.auth.EXPECT().Hash("new-password").Return("hashed", nil)
	d.repo.EXPECT().UpdatePassword(gomock.Any(), int64(4), "hashed").Return(nil)
	d.repo.EXPECT().DeleteResetTokens(gomock.Any(), int64(4)).Return(nil)

	assert.NoError(t, c.ConfirmPasswordReset(ctx, &dto.ConfirmResetRequest{Token: "key", Password: "new-password"}))
}
