package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type requestCtrl interface {
	CreateScreeningRequest(
		ctx context.Context,
		uid uuid.UUID,
		req *dto.ScreeningRequest,
	) (*md.AccountScreeningRequest, error)
	CheckScreeningApproval(ctx context.Context, uid uuid.UUID) error
	ApproveScreeningRequest(ctx context.Context, uid uuid.UUID) error
	SendHelpSupportRequest(ctx context.Context, uid uuid.UUID, req *dto.HelpSupportRequest) error
	CreateUpgradeRequest(
		ctx context.Context,
		uid uuid.UUID,
		req *dto.UpgradePaymentRequest,
	) (*md.AccountUpgradePaymentRequest, error)
}

type requestRepo interface {
	CreateScreeningRequest(ctx context.Context, req *md.AccountScreeningRequest) error
	ApproveScreeningRequest(ctx context.Context, uid uuid.UUID) error
	GetScreeningStatus(ctx context.Context, userID int64) (requested, approved bool, err error)
	CreateUpgradeRequest(ctx context.Context, req *md.AccountUpgradePaymentRequest) error
}

// CreateScreeningRequest stores the request, drops the user's older pending
// ones and notifies support.
func (c *Controller) CreateScreeningRequest(
	ctx context.Context,
	uid uuid.UUID,
	req *dto.ScreeningRequest,
) (*md.AccountScreeningRequest, error) {
	const op = "requests.CreateScreeningRequest.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
	if err != nil {
		return nil, err
	}

	phone, err := normalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	r := &md.AccountScreeningRequest{
		UserID:                    u.ID,
		Name:                      req.Name,
		Email:                     req.Email,
		PhoneNumber:               phone,
		ScheduleDate:              req.ScheduleDate,
		ScheduleTime:              req.ScheduleTime,
		Country:                   req.Country,
		TradingCapitalAmount:      req.TradingCapitalAmount,
		HasTradingExperience:      req.HasTradingExperience,
		PreviouslyUsedForexBroker: req.PreviouslyUsedForexBroker,
	}
	if err = c.repo.CreateScreeningRequest(ctx, r); err != nil {
		return nil, err
	}

	err = c.sender.Send(
		ctx, c.support(), notify.KindAccountScreening, map[string]any{
			"name":                         r.Name,
			"email":                        r.Email,
			"phone_number":                 r.PhoneNumber,
			"schedule_date":                r.ScheduleDate,
			"schedule_time":                r.ScheduleTime,
			"country":                      r.Country,
			"trading_capital_amount":       r.TradingCapitalAmount,
			"has_trading_experience":       r.HasTradingExperience,
			"previously_used_forex_broker": r.PreviouslyUsedForexBroker,
			"domain_name":                  c.conf.DomainName,
		}, notify.ChannelEmail,
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// CheckScreeningApproval returns nil only when uid has an approved screening.
func (c *Controller) CheckScreeningApproval(ctx context.Context, uid uuid.UUID) error {
	const op = "requests.CheckScreeningApproval.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
	if err != nil {
		return err
	}

	requested, approved, err := c.repo.GetScreeningStatus(ctx, u.ID)
	if err != nil {
		return err
	}

	switch {
	case !requested:
		return ErrNoScreening
	case !approved:
		return ErrScreeningQueued
	}
	return nil
}

func (c *Controller) ApproveScreeningRequest(ctx context.Context, uid uuid.UUID) error {
	const op = "requests.ApproveScreeningRequest.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.ApproveScreeningRequest(ctx, uid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (c *Controller) SendHelpSupportRequest(ctx context.Context, uid uuid.UUID, req *dto.HelpSupportRequest) error {
	const op = "requests.SendHelpSupportRequest.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
	if err != nil {
		return err
	}

	return c.sender.Send(
		ctx, c.support(), notify.KindHelpSupport, map[string]any{
			"user":        u,
			"name":        req.Name,
			"email":       req.Email,
			"message":     req.Message,
			"domain_name": c.conf.DomainName,
		}, notify.ChannelEmail,
	)
}

func (c *Controller) CreateUpgradeRequest(
	ctx context.Context,
	uid uuid.UUID,
	req *dto.UpgradePaymentRequest,
) (*md.AccountUpgradePaymentRequest, error) {
	const op = "requests.CreateUpgradeRequest.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
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

	r := &md.AccountUpgradePaymentRequest{UserID: u.ID, PlanID: p.ID}
	if err = c.repo.CreateUpgradeRequest(ctx, r); err != nil {
		return nil, err
	}

	err = c.sender.Send(
		ctx, c.support(), notify.KindAccountUpgrade, map[string]any{
			"user":              u,
			"subscription_plan": p,
			"created_at":        r.CreatedAt.Format(time.RFC1123),
			"domain_name":       c.conf.DomainName,
		}, notify.ChannelEmail,
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (c *Controller) support() md.Contact {
	return md.Contact{Email: c.conf.SupportEmail}
}
