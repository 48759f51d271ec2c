package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/zedasignal/internal/cache"
	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_ListPlans(t *testing.T) {
	ctx := context.Background()
	plans := []*md.SubscriptionPlan{{UUID: uuid.New(), Name: "Gold"}}

	t.Run("CacheMiss", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.cache.EXPECT().GetToStruct(gomock.Any(), plansListKey, gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().ListPlans(gomock.Any()).Return(plans, nil)
		d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), plansListKey, gomock.Any())

		res, err := c.ListPlans(ctx)
		require.NoError(t, err)
		assert.Equal(t, plans, res)
	})

	t.Run("CacheHit", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.cache.EXPECT().GetToStruct(gomock.Any(), plansListKey, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dest any) error {
				bytes, _ := json.Marshal(plans)
				return json.Unmarshal(bytes, dest)
			},
		)

		res, err := c.ListPlans(ctx)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Gold", res[0].Name)
	})
}

func TestController_CreatePlan(t *testing.T) {
	ctx := context.Background()
	author := &md.User{ID: 1, UUID: uuid.New(), Type: md.AdminUser}

	c, d := newTestCtrl(t)
	d.repo.EXPECT().GetUserByUUID(gomock.Any(), author.UUID).Return(author, nil)
	d.repo.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *md.SubscriptionPlan) error {
			assert.True(t, p.IsActive)
			assert.Equal(t, int64(1), *p.CreatedByID)
			assert.NotNil(t, p.NotificationChannels)
			return nil
		},
	)
	d.cache.EXPECT().Delete(gomock.Any(), plansListKey)

	res, err := c.CreatePlan(ctx, author.UUID, &dto.CreatePlanRequest{Name: "Gold", Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "Gold", res.Name)
}

func TestController_ListPlansForUser(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 4, UUID: uuid.New()}
	gold := &md.SubscriptionPlan{ID: 1, Name: "Gold"}
	silver := &md.SubscriptionPlan{ID: 2, Name: "Silver"}

	c, d := newTestCtrl(t)
	d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
	d.repo.EXPECT().ListPlans(gomock.Any()).Return([]*md.SubscriptionPlan{gold, silver}, nil)
	d.repo.EXPECT().ListActivePlanIDs(gomock.Any(), int64(4)).Return([]int64{2}, nil)

	res, err := c.ListPlansForUser(ctx, u.UUID)
	require.NoError(t, err)
	assert.Equal(t, []*dto.PlanWithStatus{
		{SubscriptionPlan: gold, Active: false},
		{SubscriptionPlan: silver, Active: true},
	}, res)
}

func TestController_ActivateSubscription(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 4, UUID: uuid.New()}
	plan := &md.SubscriptionPlan{ID: 2, UUID: uuid.New()}
	start := time.Now()
	req := &dto.ActivateSubscriptionRequest{
		User:             u.UUID,
		SubscriptionPlan: plan.UUID,
		StartTimestamp:   start,
		EndTimestamp:     start.Add(30 * 24 * time.Hour),
	}

	t.Run("UnknownUser", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(nil, repo.ErrNotFound)

		_, err := c.ActivateSubscription(ctx, req)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UnknownPlan", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.repo.EXPECT().GetPlan(gomock.Any(), plan.UUID).Return(nil, repo.ErrNotFound)

		_, err := c.ActivateSubscription(ctx, req)
		assert.ErrorIs(t, err, ErrUnknownPlan)
	})

	t.Run("Success", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.repo.EXPECT().GetPlan(gomock.Any(), plan.UUID).Return(plan, nil)
		d.repo.EXPECT().ActivateSubscription(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *md.Subscription) error {
				assert.Equal(t, int64(4), s.UserID)
				assert.Equal(t, int64(2), s.PlanID)
				assert.Equal(t, req.EndTimestamp, s.EndTimestamp)
				s.IsActive = true
				return nil
			},
		)
		d.cache.EXPECT().Delete(gomock.Any(), statsCacheKey)

		res, err := c.ActivateSubscription(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsActive)
	})
}

func TestController_GetDashboardStats(t *testing.T) {
	ctx := context.Background()
	stats := &md.DashboardStats{TotalUsers: 10, ActiveSubscriptions: 3, TotalSignals: 7, ActiveSignals: 5}

	t.Run("Success", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.cache.EXPECT().GetToStruct(gomock.Any(), statsCacheKey, gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().GetDashboardStats(gomock.Any()).Return(stats, nil)
		d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), statsCacheKey, gomock.Any())

		res, err := c.GetDashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, res)
	})

	t.Run("RepoError", func(t *testing.T) {
		c, d := newTestCtrl(t)
		testErr := errors.New("db down")
		d.cache.EXPECT().GetToStruct(gomock.Any(), statsCacheKey, gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().GetDashboardStats(gomock.Any()).Return(nil, testErr)

		_, err := c.GetDashboardStats(ctx)
		assert.ErrorIs(t, err, testErr)
	})
}
