package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) ListSignals(
	ctx context.Context,
	page, size int,
) (*dto.PaginatedResponse[*md.Signal], error) {
	const op = "signals.ListSignals.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var count int64
	if err := r.conn.QueryRowContext(ctx, signalCountActiveQ).Scan(&count); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count signals", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	res := make([]*md.Signal, 0, size)
	if err := r.conn.SelectContext(ctx, &res, signalListActiveQ, size, offset(page, size)); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list signals", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return dto.NewPaginatedResponse(res, count, page, size), nil
}

func (r *Repository) GetSignal(ctx context.Context, uid uuid.UUID) (*md.Signal, error) {
	const op = "signals.GetSignal.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Signal{}
	if err := r.conn.GetContext(ctx, res, signalGetActiveQ, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get signal", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateSignal(ctx context.Context, s *md.Signal) error {
	const op = "signals.CreateSignal.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(
		ctx, signalCreateQ,
		s.Entry,
		s.TakeProfit,
		s.StopLoss,
		s.Term,
		s.Action,
		s.PairBase,
		s.PairQuote,
		s.Description,
		s.Targets,
		s.IsActive,
		s.AuthorID,
	).Scan(&s.ID, &s.UUID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create signal", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) DeactivateSignal(ctx context.Context, uid uuid.UUID) error {
	const op = "signals.DeactivateSignal.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, signalDeactivateQ, uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to deactivate signal", zap.String("op", op), zap.Error(err))
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
