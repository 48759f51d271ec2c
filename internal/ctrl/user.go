package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/zedasignal/internal/access"
	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type userCtrl interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	GetUserByUUID(ctx context.Context, uid uuid.UUID) (*md.User, error)
	UpdateUser(ctx context.Context, uid uuid.UUID, req *dto.UpdateUserRequest) (*md.User, error)
	GetProfile(ctx context.Context, uid uuid.UUID) (*md.Profile, error)
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *dto.UpdateProfileRequest) (*md.Profile, error)
	GetAccessSubject(ctx context.Context, uid uuid.UUID) (access.Subject, error)
}

type userRepo interface {
	ListUsersWithPlans(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedResponse[*dto.UserWithPlan], error)
	GetUserWithPlan(ctx context.Context, uid uuid.UUID) (*dto.UserWithPlan, error)
	GetUserByUUID(ctx context.Context, uid uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error)
	UpdateUser(ctx context.Context, uid uuid.UUID, req *dto.UpdateUserRequest) error
	UpdatePassword(ctx context.Context, userID int64, hash string) error
	GetProfile(ctx context.Context, userID int64) (*md.Profile, error)
	UpsertProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*md.Profile, error)
}

const (
	userCacheKey = "user:%v"
	usersListKey = "users-list:%v:%v:%v"
	usersPattern = "users-*"
)

func (c *Controller) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	const op = "users.Register.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	phone, err := normalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	hash, err := c.au.Hash(req.Password)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to hash password", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	first, last := splitFullName(req.FullName)
	uid, err := c.repo.CreateUser(
		ctx, &md.User{
			Username:    req.Email,
			Email:       req.Email,
			PhoneNumber: phone,
			FirstName:   first,
			LastName:    last,
			Password:    hash,
			Type:        md.RegularUser,
			IsActive:    true,
		},
	)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(detach(ctx), usersPattern)

	return &dto.RegisterResponse{UUID: uid}, nil
}

func (c *Controller) GetUserByUUID(ctx context.Context, uid uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByUUID.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.User{}
	cacheKey := fmt.Sprintf(userCacheKey, uid)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetUserByUUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

// user loads uid from the database. Cached users lack internal ids.
func (c *Controller) user(ctx context.Context, uid uuid.UUID) (*md.User, error) {
	res, err := c.repo.GetUserByUUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (c *Controller) UpdateUser(ctx context.Context, uid uuid.UUID, req *dto.UpdateUserRequest) (*md.User, error) {
	const op = "users.UpdateUser.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	phone, err := normalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	req.PhoneNumber = phone

	if err = c.repo.UpdateUser(ctx, uid, req); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c.cache.Delete(ctx, fmt.Sprintf(userCacheKey, uid))
	go c.cache.InvalidateKeysByPattern(detach(ctx), usersPattern)

	return c.GetUserByUUID(ctx, uid)
}

func (c *Controller) GetProfile(ctx context.Context, uid uuid.UUID) (*md.Profile, error) {
	const op = "users.GetProfile.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
	if err != nil {
		return nil, err
	}

	res, err := c.repo.GetProfile(ctx, u.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return c.repo.UpsertProfile(ctx, u.ID, &dto.UpdateProfileRequest{})
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Controller) UpdateProfile(
	ctx context.Context,
	uid uuid.UUID,
	req *dto.UpdateProfileRequest,
) (*md.Profile, error) {
	const op = "users.UpdateProfile.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
	if err != nil {
		return nil, err
	}

	return c.repo.UpsertProfile(ctx, u.ID, req)
}

// GetAccessSubject collects what capability checks need to know about uid.
func (c *Controller) GetAccessSubject(ctx context.Context, uid uuid.UUID) (access.Subject, error) {
	const op = "users.GetAccessSubject.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.user(ctx, uid)
	if err != nil {
		return access.Subject{}, err
	}

	res := access.Subject{
		Type:       u.Type,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
	}
	if u.Type == md.AdminUser {
		return res, nil
	}

	res.HasActiveSubscription, err = c.repo.HasActiveSubscription(ctx, u.ID)
	if err != nil {
		return access.Subject{}, err
	}

	return res, nil
}
