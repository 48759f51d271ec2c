package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/zedasignal/internal/config"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) ListBots(ctx context.Context, topPerforming bool) ([]*md.Bot, error) {
	const op = "bots.ListBots.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q := botListActiveQ
	if topPerforming {
		q = botListTopPerformingQ
	}

	res := make([]*md.Bot, 0)
	if err := r.conn.SelectContext(ctx, &res, q); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list bots", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetBot(ctx context.Context, uid uuid.UUID) (*md.Bot, error) {
	const op = "bots.GetBot.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Bot{}
	if err := r.conn.GetContext(ctx, res, botGetActiveQ, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get bot", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateBot(ctx context.Context, b *md.Bot) error {
	const op = "bots.CreateBot.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(
		ctx, botCreateQ,
		b.Name,
		b.MinInvestmentAmount,
		b.MaxInvestmentAmount,
		b.PerformanceFee,
		b.Overall,
		b.IsActive,
		b.IsTopPerforming,
	).Scan(&b.ID, &b.UUID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create bot", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) ListBotlabBots(ctx context.Context) ([]*md.BotlabBot, error) {
	const op = "bots.ListBotlabBots.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.BotlabBot, 0)
	if err := r.conn.SelectContext(ctx, &res, botlabListQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list botlab bots", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetBotlabBot(ctx context.Context, uid uuid.UUID) (*md.BotlabBot, error) {
	const op = "bots.GetBotlabBot.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.BotlabBot{}
	if err := r.conn.GetContext(ctx, res, botlabGetQ, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get botlab bot", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateBotlabBot(ctx context.Context, b *md.BotlabBot) error {
	const op = "bots.CreateBotlabBot.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(
		ctx, botlabCreateQ,
		b.Name,
		b.NameOfBroker,
		b.ServerName,
		b.InvestorLogin,
		b.InvestorPassword,
		b.Terminal,
		b.TestCommencementDate,
	).Scan(&b.ID, &b.UUID, &b.IsDelisted, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create botlab bot", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) GetGuideByBot(ctx context.Context, botUID uuid.UUID) (*md.CopyTradingGuide, error) {
	const op = "bots.GetGuideByBot.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.CopyTradingGuide{}
	if err := r.conn.GetContext(ctx, res, guideGetByBotQ, botUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get guide", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateGuide(ctx context.Context, g *md.CopyTradingGuide) error {
	const op = "bots.CreateGuide.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(ctx, guideCreateQ, g.BotID, g.Description).
		Scan(&g.ID, &g.UUID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create guide", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
