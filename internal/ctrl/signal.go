package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type signalCtrl interface {
	ListSignals(ctx context.Context, page, size int) (*dto.PaginatedResponse[*md.Signal], error)
	GetSignal(ctx context.Context, uid uuid.UUID) (*md.Signal, error)
	CreateSignal(ctx context.Context, author uuid.UUID, req *dto.CreateSignalRequest) (*md.Signal, error)
	DeactivateSignal(ctx context.Context, uid uuid.UUID) error
}

type signalRepo interface {
	ListSignals(ctx context.Context, page, size int) (*dto.PaginatedResponse[*md.Signal], error)
	GetSignal(ctx context.Context, uid uuid.UUID) (*md.Signal, error)
	CreateSignal(ctx context.Context, s *md.Signal) error
	DeactivateSignal(ctx context.Context, uid uuid.UUID) error
}

const (
	signalCacheKey = "signal:%v"
	signalsListKey = "signals-list:%v:%v"
	signalsPattern = "signals-*"
)

func (c *Controller) ListSignals(ctx context.Context, page, size int) (*dto.PaginatedResponse[*md.Signal], error) {
	const op = "signals.ListSignals.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedResponse[*md.Signal]{}
	cacheKey := fmt.Sprintf(signalsListKey, page, size)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListSignals(ctx, page, size)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetSignal(ctx context.Context, uid uuid.UUID) (*md.Signal, error) {
	const op = "signals.GetSignal.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.Signal{}
	cacheKey := fmt.Sprintf(signalCacheKey, uid)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetSignal(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

// CreateSignal stores the signal and publishes it to subscribers. A failed
// publication is logged and counted; the signal stays stored.
func (c *Controller) CreateSignal(
	ctx context.Context,
	author uuid.UUID,
	req *dto.CreateSignalRequest,
) (*md.Signal, error) {
	const op = "signals.CreateSignal.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, author)
	if err != nil {
		return nil, err
	}

	s := &md.Signal{
		Entry:       req.Entry,
		TakeProfit:  req.TakeProfit,
		StopLoss:    req.StopLoss,
		Term:        req.Term,
		Action:      req.Action,
		PairBase:    req.PairBase,
		PairQuote:   req.PairQuote,
		Description: plainText(req.Description),
		Targets:     req.Targets,
		IsActive:    true,
		AuthorID:    u.ID,
		Author: md.SignalAuthor{
			UUID:      u.UUID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		},
	}
	if s.Term == "" {
		s.Term = md.TermLong
	}
	if s.Action == "" {
		s.Action = md.ActionBuy
	}

	if err = c.repo.CreateSignal(ctx, s); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create signal", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	c.cache.Delete(ctx, statsCacheKey)
	go c.cache.InvalidateKeysByPattern(detach(ctx), signalsPattern)

	c.onSignalCreated(ctx, s)
	return s, nil
}

func (c *Controller) DeactivateSignal(ctx context.Context, uid uuid.UUID) error {
	const op = "signals.DeactivateSignal.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeactivateSignal(ctx, uid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(signalCacheKey, uid))
	c.cache.Delete(ctx, statsCacheKey)
	go c.cache.InvalidateKeysByPattern(detach(ctx), signalsPattern)
	return nil
}
