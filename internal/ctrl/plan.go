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

type planCtrl interface {
	ListPlans(ctx context.Context) ([]*md.SubscriptionPlan, error)
	GetPlan(ctx context.Context, uid uuid.UUID) (*md.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, author uuid.UUID, req *dto.CreatePlanRequest) (*md.SubscriptionPlan, error)
	ListPlansForUser(ctx context.Context, uid uuid.UUID) ([]*dto.PlanWithStatus, error)
	ListUsersWithPlans(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedResponse[*dto.UserWithPlan], error)
	GetUserWithPlan(ctx context.Context, uid uuid.UUID) (*dto.UserWithPlan, error)
	ActivateSubscription(ctx context.Context, req *dto.ActivateSubscriptionRequest) (*md.Subscription, error)
	GetDashboardStats(ctx context.Context) (*md.DashboardStats, error)
}

type planRepo interface {
	ListPlans(ctx context.Context) ([]*md.SubscriptionPlan, error)
	GetPlan(ctx context.Context, uid uuid.UUID) (*md.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, p *md.SubscriptionPlan) error
	ListActivePlanIDs(ctx context.Context, userID int64) ([]int64, error)
	HasActiveSubscription(ctx context.Context, userID int64) (bool, error)
	ListActiveSubscribers(ctx context.Context) ([]*md.Subscriber, error)
	ActivateSubscription(ctx context.Context, s *md.Subscription) error
	GetDashboardStats(ctx context.Context) (*md.DashboardStats, error)
}

const (
	planCacheKey  = "plan:%v"
	plansListKey  = "plans-list"
	plansPattern  = "plans-*"
	statsCacheKey = "dashboard-stats"
)

func (c *Controller) ListPlans(ctx context.Context) ([]*md.SubscriptionPlan, error) {
	const op = "plans.ListPlans.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.SubscriptionPlan, 0)
	if err := c.cache.GetToStruct(ctx, plansListKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, plansListKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetPlan(ctx context.Context, uid uuid.UUID) (*md.SubscriptionPlan, error) {
	const op = "plans.GetPlan.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.SubscriptionPlan{}
	cacheKey := fmt.Sprintf(planCacheKey, uid)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetPlan(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) CreatePlan(
	ctx context.Context,
	author uuid.UUID,
	req *dto.CreatePlanRequest,
) (*md.SubscriptionPlan, error) {
	const op = "plans.CreatePlan.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, author)
	if err != nil {
		return nil, err
	}

	p := &md.SubscriptionPlan{
		Name:                 req.Name,
		Description:          plainText(req.Description),
		MonthlyPrice:         req.MonthlyPrice,
		YearlyPrice:          req.YearlyPrice,
		Currency:             req.Currency,
		NotificationChannels: req.NotificationChannels,
		IsActive:             req.IsActive == nil || *req.IsActive,
		ComingSoon:           req.ComingSoon,
		IsSpecial:            req.IsSpecial,
		ButtonCTA:            req.ButtonCTA,
		Ordering:             req.Ordering,
		CreatedByID:          &u.ID,
	}
	if p.NotificationChannels == nil {
		p.NotificationChannels = []string{}
	}

	if err = c.repo.CreatePlan(ctx, p); err != nil {
		return nil, err
	}

	c.cache.Delete(ctx, plansListKey)
	go c.cache.InvalidateKeysByPattern(detach(ctx), plansPattern)
	return p, nil
}

// ListPlansForUser returns every visible plan flagged with whether uid holds
// an active subscription to it.
func (c *Controller) ListPlansForUser(ctx context.Context, uid uuid.UUID) ([]*dto.PlanWithStatus, error) {
	const op = "plans.ListPlansForUser.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
	if err != nil {
		return nil, err
	}

	plans, err := c.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := c.repo.ListActivePlanIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	active := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		active[id] = struct{}{}
	}

	res := make([]*dto.PlanWithStatus, 0, len(plans))
	for _, p := range plans {
		_, ok := active[p.ID]
		res = append(res, &dto.PlanWithStatus{SubscriptionPlan: p, Active: ok})
	}

	return res, nil
}

func (c *Controller) ListUsersWithPlans(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedResponse[*dto.UserWithPlan], error) {
	const op = "users.ListUsersWithPlans.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedResponse[*dto.UserWithPlan]{}
	cacheKey := fmt.Sprintf(usersListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListUsersWithPlans(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetUserWithPlan(ctx context.Context, uid uuid.UUID) (*dto.UserWithPlan, error) {
	const op = "users.GetUserWithPlan.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetUserWithPlan(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// ActivateSubscription makes the given window the user's only active subscription.
func (c *Controller) ActivateSubscription(
	ctx context.Context,
	req *dto.ActivateSubscriptionRequest,
) (*md.Subscription, error) {
	const op = "plans.ActivateSubscription.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, req.User)
	if err != nil {
		return nil, err
	}

	p, err := c.repo.GetPlan(ctx, req.SubscriptionPlan)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownPlan
		}
		return nil, err
	}

	s := &md.Subscription{
		UserID:         u.ID,
		PlanID:         p.ID,
		StartTimestamp: req.StartTimestamp,
		EndTimestamp:   req.EndTimestamp,
	}
	if err = c.repo.ActivateSubscription(ctx, s); err != nil {
		return nil, err
	}

	c.cache.Delete(ctx, statsCacheKey)
	go c.cache.InvalidateKeysByPattern(detach(ctx), usersPattern)
	return s, nil
}

func (c *Controller) GetDashboardStats(ctx context.Context) (*md.DashboardStats, error) {
	const op = "plans.GetDashboardStats.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.DashboardStats{}
	if err := c.cache.GetToStruct(ctx, statsCacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.MinCacheTime, statsCacheKey, bytes)
	}

	return res, nil
}
