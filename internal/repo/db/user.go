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
	"github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type subscriberPlan struct {
	SubscriberID int64 `db:"subscriber_id"`
	md.SubscriptionPlan
}

func (r *Repository) ListUsersWithPlans(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedResponse[*dto.UserWithPlan], error) {
	const op = "users.ListUsersWithPlans.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildUserListQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.QueryRowContext(ctx, q.countQ, q.countArgs...).Scan(&count); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count users", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	users := make([]*md.User, 0, size)
	if err = r.conn.SelectContext(ctx, &users, q.dataQ, q.dataArgs...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list users", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	plans, err := r.activePlansByUser(ctx, users)
	if err != nil {
		return nil, err
	}

	data := make([]*dto.UserWithPlan, 0, len(users))
	for _, u := range users {
		data = append(data, &dto.UserWithPlan{User: u, SubscriptionPlan: plans[u.ID]})
	}

	return dto.NewPaginatedResponse(data, count, page, size), nil
}

func (r *Repository) GetUserWithPlan(ctx context.Context, uid uuid.UUID) (*dto.UserWithPlan, error) {
	const op = "users.GetUserWithPlan.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := r.GetUserByUUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	plans, err := r.activePlansByUser(ctx, []*md.User{u})
	if err != nil {
		return nil, err
	}

	return &dto.UserWithPlan{User: u, SubscriptionPlan: plans[u.ID]}, nil
}

func (r *Repository) activePlansByUser(
	ctx context.Context,
	users []*md.User,
) (map[int64]*md.SubscriptionPlan, error) {
	const op = "users.activePlansByUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make(map[int64]*md.SubscriptionPlan, len(users))
	if len(users) == 0 {
		return res, nil
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	rows := make([]*subscriberPlan, 0, len(ids))
	if err := r.conn.SelectContext(ctx, &rows, userActivePlansQ, pq.Array(ids)); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list active plans", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	for _, row := range rows {
		plan := row.SubscriptionPlan
		res[row.SubscriberID] = &plan
	}

	return res, nil
}

func (r *Repository) GetUserByUUID(ctx context.Context, uid uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByUUID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByUUIDQ, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get user", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByEmailQ, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get user", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error) {
	const op = "users.CreateUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx, userCreateQ,
		u.Username,
		u.Email,
		u.PhoneNumber,
		u.FirstName,
		u.LastName,
		u.Password,
		u.Type,
		u.IsActive,
		u.IsVerified,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create user", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) UpdateUser(ctx context.Context, uid uuid.UUID, req *dto.UpdateUserRequest) error {
	const op = "users.UpdateUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userUpdateQ, req.FirstName, req.LastName, req.PhoneNumber, uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to update user", zap.String("op", op), zap.Error(err))
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

func (r *Repository) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	const op = "users.UpdatePassword.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userUpdatePasswordQ, hash, userID)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to update password", zap.String("op", op), zap.Error(err))
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

func (r *Repository) GetProfile(ctx context.Context, userID int64) (*md.Profile, error) {
	const op = "users.GetProfile.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Profile{}
	err := r.conn.GetContext(ctx, res, profileGetQ, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get profile", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) UpsertProfile(
	ctx context.Context,
	userID int64,
	req *dto.UpdateProfileRequest,
) (*md.Profile, error) {
	const op = "users.UpsertProfile.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Profile{}
	err := r.conn.GetContext(
		ctx, res, profileUpsertQ,
		userID,
		req.HasTradingExperience,
		req.RefID,
		req.AmountRangeToTradeWith,
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to upsert profile", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}
