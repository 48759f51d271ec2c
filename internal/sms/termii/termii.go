package termii

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

var ErrGateway = errors.New("termii sms sender failed")

const (
	sendPath = "/api/sms/send"
	channel  = "dnd"
	msgType  = "plain"
)

type SendResponse struct {
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
	Balance   any    `json:"balance"`
	User      string `json:"user"`
}

type Client struct {
	baseURL string
	apiKey  string
	sender  string
	http    *http.Client
}

func New(conf config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.Termii.BaseURL, "/"),
		apiKey:  conf.Termii.APIKey,
		sender:  conf.Termii.SenderID,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers one SMS. The gateway expects numbers without a leading plus.
func (c *Client) Send(ctx context.Context, to, message string) (*SendResponse, error) {
	const op = "sms.Send.termii"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	params := url.Values{
		"to":      {strings.TrimPrefix(to, "+")},
		"from":    {c.sender},
		"sms":     {message},
		"channel": {channel},
		"type":    {msgType},
		"api_key": {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath+"?"+params.Encode(), nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(span, op, req)
}

func (c *Client) do(span opentracing.Span, op string, req *http.Request) (*SendResponse, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to reach termii", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			zap.L().Debug("failed to close body", zap.String("op", op), zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Warn("termii rejected request", zap.String("op", op), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w with error code: %d", ErrGateway, resp.StatusCode)
	}

	res := &SendResponse{}
	if err = json.NewDecoder(resp.Body).Decode(res); err != nil && !errors.Is(err, io.EOF) {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to decode termii response", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}
