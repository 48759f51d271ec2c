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

func (r *Repository) ListPlans(ctx context.Context) ([]*md.SubscriptionPlan, error) {
	const op = "plans.ListPlans.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.SubscriptionPlan, 0)
	if err := r.conn.SelectContext(ctx, &res, planListVisibleQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list plans", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetPlan(ctx context.Context, uid uuid.UUID) (*md.SubscriptionPlan, error) {
	const op = "plans.GetPlan.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.SubscriptionPlan{}
	if err := r.conn.GetContext(ctx, res, planGetQ, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get plan", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreatePlan(ctx context.Context, p *md.SubscriptionPlan) error {
	const op = "plans.CreatePlan.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(
		ctx, planCreateQ,
		p.Name,
		p.Description,
		p.MonthlyPrice,
		p.YearlyPrice,
		p.Currency,
		p.NotificationChannels,
		p.IsActive,
		p.ComingSoon,
		p.IsSpecial,
		p.ButtonCTA,
		p.Ordering,
		p.CreatedByID,
	).Scan(&p.ID, &p.UUID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create plan", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) ListActivePlanIDs(ctx context.Context, userID int64) ([]int64, error) {
	const op = "plans.ListActivePlanIDs.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]int64, 0)
	if err := r.conn.SelectContext(ctx, &res, subscriptionActivePlanIDsQ, userID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list active plan ids", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) HasActiveSubscription(ctx context.Context, userID int64) (bool, error) {
	const op = "plans.HasActiveSubscription.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var exists bool
	if err := r.conn.QueryRowContext(ctx, subscriptionHasActiveQ, userID).Scan(&exists); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to check subscription", zap.String("op", op), zap.Error(err))
		return false, err
	}

	return exists, nil
}

// ListActiveSubscribers returns one row per active subscription of an active user.
// The subscription window is not consulted.
func (r *Repository) ListActiveSubscribers(ctx context.Context) ([]*md.Subscriber, error) {
	const op = "plans.ListActiveSubscribers.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Subscriber, 0)
	if err := r.conn.SelectContext(ctx, &res, subscriptionActiveSubscribersQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list subscribers", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) ActivateSubscription(ctx context.Context, s *md.Subscription) error {
	const op = "plans.ActivateSubscription.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to begin transaction", zap.String("op", op), zap.Error(err))
		return err
	}
	defer rollback(span, op, tx)

	if _, err = tx.ExecContext(ctx, subscriptionDeactivateForUserQ, s.UserID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to deactivate subscriptions", zap.String("op", op), zap.Error(err))
		return err
	}

	err = tx.QueryRowContext(
		ctx, subscriptionCreateQ,
		s.UserID,
		s.PlanID,
		s.StartTimestamp,
		s.EndTimestamp,
	).Scan(&s.ID, &s.UUID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create subscription", zap.String("op", op), zap.Error(err))
		return err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit transaction", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) GetDashboardStats(ctx context.Context) (*md.DashboardStats, error) {
	const op = "plans.GetDashboardStats.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.DashboardStats{}
	if err := r.conn.GetContext(ctx, res, dashboardStatsQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get dashboard stats", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}
