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

// CreateScreeningRequest stores the request and removes the user's other pending ones.
// Approved requests are kept.
func (r *Repository) CreateScreeningRequest(ctx context.Context, req *md.AccountScreeningRequest) error {
	const op = "requests.CreateScreeningRequest.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to begin transaction", zap.String("op", op), zap.Error(err))
		return err
	}
	defer rollback(span, op, tx)

	err = tx.QueryRowContext(
		ctx, screeningCreateQ,
		req.UserID,
		req.Name,
		req.Email,
		req.PhoneNumber,
		req.ScheduleDate,
		req.ScheduleTime,
		req.Country,
		req.TradingCapitalAmount,
		req.HasTradingExperience,
		req.PreviouslyUsedForexBroker,
	).Scan(&req.ID, &req.UUID, &req.IsApproved, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create screening request", zap.String("op", op), zap.Error(err))
		return err
	}

	if _, err = tx.ExecContext(ctx, screeningDeletePendingQ, req.UserID, req.ID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete pending requests", zap.String("op", op), zap.Error(err))
		return err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit transaction", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) ApproveScreeningRequest(ctx context.Context, uid uuid.UUID) error {
	const op = "requests.ApproveScreeningRequest.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to begin transaction", zap.String("op", op), zap.Error(err))
		return err
	}
	defer rollback(span, op, tx)

	var id, userID int64
	if err = tx.QueryRowContext(ctx, screeningApproveQ, uid).Scan(&id, &userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to approve screening request", zap.String("op", op), zap.Error(err))
		return err
	}

	if _, err = tx.ExecContext(ctx, screeningDeletePendingQ, userID, id); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete pending requests", zap.String("op", op), zap.Error(err))
		return err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit transaction", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) GetScreeningStatus(ctx context.Context, userID int64) (requested, approved bool, err error) {
	const op = "requests.GetScreeningStatus.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err = r.conn.QueryRowContext(ctx, screeningStatusQ, userID).Scan(&requested, &approved); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get screening status", zap.String("op", op), zap.Error(err))
		return false, false, err
	}

	return requested, approved, nil
}

func (r *Repository) CreateUpgradeRequest(ctx context.Context, req *md.AccountUpgradePaymentRequest) error {
	const op = "requests.CreateUpgradeRequest.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(ctx, upgradeCreateQ, req.UserID, req.PlanID).
		Scan(&req.ID, &req.UUID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create upgrade request", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
