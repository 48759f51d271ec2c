package ctrl

import (
	"context"
	"testing"

	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_CheckScreeningApproval(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 5, UUID: uuid.New()}

	tests := []struct {
		name      string
		requested bool
		approved  bool
		err       error
	}{
		{name: "NoRequest", err: ErrNoScreening},
		{name: "Pending", requested: true, err: ErrScreeningQueued},
		{name: "Approved", requested: true, approved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newTestCtrl(t)
			d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
			d.repo.EXPECT().GetScreeningStatus(gomock.Any(), int64(5)).Return(tt.requested, tt.approved, nil)

			err := c.CheckScreeningApproval(ctx, u.UUID)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestController_CreateScreeningRequest(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 5, UUID: uuid.New()}
	req := &dto.ScreeningRequest{
		Name:                 "Ada Obi",
		Email:                "ada@example.com",
		PhoneNumber:          "+234 803 123 4567",
		ScheduleDate:         "2024-05-01",
		ScheduleTime:         "10:30",
		Country:              "Nigeria",
		TradingCapitalAmount: "5000",
	}

	c, d := newTestCtrl(t)
	d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
	d.repo.EXPECT().CreateScreeningRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *md.AccountScreeningRequest) error {
			assert.Equal(t, int64(5), r.UserID)
			assert.Equal(t, "+2348031234567", r.PhoneNumber)
			r.ID = 10
			return nil
		},
	)
	d.sender.EXPECT().Send(
		gomock.Any(),
		md.Contact{Email: "support@zedasignal.com"},
		notify.KindAccountScreening,
		gomock.Any(),
		notify.ChannelEmail,
	).Return(nil)

	res, err := c.CreateScreeningRequest(ctx, u.UUID, req)
	require.NoError(t, err)
	assert.False(t, res.IsApproved)
}

func TestController_ApproveScreeningRequest(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	c, d := newTestCtrl(t)
	d.repo.EXPECT().ApproveScreeningRequest(gomock.Any(), uid).Return(repo.ErrNotFound)
	assert.ErrorIs(t, c.ApproveScreeningRequest(ctx, uid), ErrNotFound)
}

func TestController_CreateUpgradeRequest(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 5, UUID: uuid.New()}
	plan := &md.SubscriptionPlan{ID: 2, UUID: uuid.New(), Name: "Gold"}

	t.Run("UnknownPlan", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.repo.EXPECT().GetPlan(gomock.Any(), plan.UUID).Return(nil, repo.ErrNotFound)

		_, err := c.CreateUpgradeRequest(ctx, u.UUID, &dto.UpgradePaymentRequest{SubscriptionPlan: plan.UUID})
		assert.ErrorIs(t, err, ErrUnknownPlan)
	})

	t.Run("Success", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.repo.EXPECT().GetPlan(gomock.Any(), plan.UUID).Return(plan, nil)
		d.repo.EXPECT().CreateUpgradeRequest(gomock.Any(), &md.AccountUpgradePaymentRequest{UserID: 5, PlanID: 2}).Return(nil)
		d.sender.EXPECT().Send(gomock.Any(), gomock.Any(), notify.KindAccountUpgrade, gomock.Any(), notify.ChannelEmail).DoAndReturn(
			func(_ context.Context, _ notify.Recipient, _ notify.Kind, data map[string]any, _ notify.Channel) error {
				assert.Equal(t, plan, data["subscription_plan"])
				assert.Equal(t, u, data["user"])
				return nil
			},
		)

		_, err := c.CreateUpgradeRequest(ctx, u.UUID, &dto.UpgradePaymentRequest{SubscriptionPlan: plan.UUID})
		assert.NoError(t, err)
	})
}

func TestController_SendHelpSupportRequest(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 5, UUID: uuid.New(), Username: "ada"}

	c, d := newTestCtrl(t)
	d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
	d.sender.EXPECT().Send(
		gomock.Any(),
		md.Contact{Email: "support@zedasignal.com"},
		notify.KindHelpSupport,
		gomock.Any(),
		notify.ChannelEmail,
	).Return(nil)

	err := c.SendHelpSupportRequest(ctx, u.UUID, &dto.HelpSupportRequest{Name: "Ada", Email: "ada@example.com", Message: "Help"})
	assert.NoError(t, err)
}
