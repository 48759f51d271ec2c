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
)

type botCtrl interface {
	ListBots(ctx context.Context, topPerforming bool) ([]*md.Bot, error)
	GetBot(ctx context.Context, uid uuid.UUID) (*md.Bot, error)
	CreateBot(ctx context.Context, req *dto.CreateBotRequest) (*md.Bot, error)
	ListBotlabBots(ctx context.Context) ([]*md.BotlabBot, error)
	GetBotlabBot(ctx context.Context, uid uuid.UUID) (*md.BotlabBot, error)
	CreateBotlabBot(ctx context.Context, req *dto.CreateBotlabBotRequest) (*md.BotlabBot, error)
	GetGuideByBot(ctx context.Context, botUID uuid.UUID) (*md.CopyTradingGuide, error)
	CreateGuide(ctx context.Context, req *dto.CreateGuideRequest) (*md.CopyTradingGuide, error)
}

type botRepo interface {
	ListBots(ctx context.Context, topPerforming bool) ([]*md.Bot, error)
	GetBot(ctx context.Context, uid uuid.UUID) (*md.Bot, error)
	CreateBot(ctx context.Context, b *md.Bot) error
	ListBotlabBots(ctx context.Context) ([]*md.BotlabBot, error)
	GetBotlabBot(ctx context.Context, uid uuid.UUID) (*md.BotlabBot, error)
	CreateBotlabBot(ctx context.Context, b *md.BotlabBot) error
	GetGuideByBot(ctx context.Context, botUID uuid.UUID) (*md.CopyTradingGuide, error)
	CreateGuide(ctx context.Context, g *md.CopyTradingGuide) error
}

const (
	botsListKey   = "bots-list:%v"
	botlabListKey = "bots-lab-list"
	botsPattern   = "bots-*"
)

func (c *Controller) ListBots(ctx context.Context, topPerforming bool) ([]*md.Bot, error) {
	const op = "bots.ListBots.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.Bot, 0)
	cacheKey := fmt.Sprintf(botsListKey, topPerforming)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListBots(ctx, topPerforming)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetBot(ctx context.Context, uid uuid.UUID) (*md.Bot, error) {
	const op = "bots.GetBot.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetBot(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) CreateBot(ctx context.Context, req *dto.CreateBotRequest) (*md.Bot, error) {
	const op = "bots.CreateBot.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	b := &md.Bot{
		Name:                req.Name,
		MinInvestmentAmount: req.MinInvestmentAmount,
		MaxInvestmentAmount: req.MaxInvestmentAmount,
		PerformanceFee:      req.PerformanceFee,
		Overall:             req.Overall,
		IsActive:            req.IsActive == nil || *req.IsActive,
		IsTopPerforming:     req.IsTopPerforming,
	}
	if err := c.repo.CreateBot(ctx, b); err != nil {
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(detach(ctx), botsPattern)
	return b, nil
}

func (c *Controller) ListBotlabBots(ctx context.Context) ([]*md.BotlabBot, error) {
	const op = "bots.ListBotlabBots.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.BotlabBot, 0)
	if err := c.cache.GetToStruct(ctx, botlabListKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListBotlabBots(ctx)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, botlabListKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetBotlabBot(ctx context.Context, uid uuid.UUID) (*md.BotlabBot, error) {
	const op = "bots.GetBotlabBot.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetBotlabBot(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) CreateBotlabBot(ctx context.Context, req *dto.CreateBotlabBotRequest) (*md.BotlabBot, error) {
	const op = "bots.CreateBotlabBot.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	b := &md.BotlabBot{
		Name:                 req.Name,
		NameOfBroker:         req.NameOfBroker,
		ServerName:           req.ServerName,
		InvestorLogin:        req.InvestorLogin,
		InvestorPassword:     req.InvestorPassword,
		Terminal:             req.Terminal,
		TestCommencementDate: req.TestCommencementDate,
	}
	if err := c.repo.CreateBotlabBot(ctx, b); err != nil {
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(detach(ctx), botsPattern)
	return b, nil
}

func (c *Controller) GetGuideByBot(ctx context.Context, botUID uuid.UUID) (*md.CopyTradingGuide, error) {
	const op = "bots.GetGuideByBot.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetGuideByBot(ctx, botUID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// CreateGuide attaches a guide to a bot. Each bot has at most one guide and
// its HTML is reduced to user-content safe markup.
func (c *Controller) CreateGuide(ctx context.Context, req *dto.CreateGuideRequest) (*md.CopyTradingGuide, error) {
	const op = "bots.CreateGuide.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	b, err := c.repo.GetBot(ctx, req.Bot)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	g := &md.CopyTradingGuide{
		BotID:       b.ID,
		BotUUID:     b.UUID,
		Description: ugcPolicy.Sanitize(req.Description),
	}
	if err = c.repo.CreateGuide(ctx, g); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return g, nil
}
