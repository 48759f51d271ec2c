package captcha

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	VerifyRecaptcha(ctx context.Context, token string, action Actions) (bool, error)
}

type Actions string

const (
	PassAuth Actions = "pass_auth"
)

const (
	captchaScore = 0.1
	verifyURL    = "https://www.google.com/recaptcha/api/siteverify"
)

type Core struct {
	enabled bool
	secret  string
	url     string
	http    *http.Client
}

func New(conf config.Config) *Core {
	return &Core{
		enabled: conf.Auth.Captcha.Enabled,
		secret:  conf.Auth.Captcha.Secret,
		url:     verifyURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Core) VerifyRecaptcha(ctx context.Context, token string, action Actions) (bool, error) {
	const op = "auth.VerifyRecaptcha.captcha"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if !c.enabled {
		return true, nil
	}

	if token == "" {
		return false, ErrVerificationFailed
	}

	form := url.Values{
		"secret":   {c.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to verify recaptcha", zap.String("op", op), zap.Error(err))
		return false, err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			zap.L().Error("failed to close body", zap.String("op", op), zap.Error(err))
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to read body", zap.String("op", op), zap.Error(err))
		return false, err
	}

	var result dto.RecaptchaResponse
	if err = json.Unmarshal(body, &result); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to unmarshal body", zap.String("op", op), zap.Error(err))
		return false, ErrValidationFailed
	}

	score := result.Success && result.Score > captchaScore
	if !score {
		zap.L().Debug("not enough score", zap.Float64("score", result.Score))
	}
	return score && result.Action == string(action), nil
}
