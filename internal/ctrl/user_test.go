package ctrl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JMURv/zedasignal/internal/access"
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

func TestController_Register(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	tests := []struct {
		name  string
		req   *dto.RegisterRequest
		setup func(d *testDeps)
		err   error
	}{
		{
			name: "Success",
			req: &dto.RegisterRequest{
				Email:       "ada@example.com",
				Password:    "password1",
				PhoneNumber: "0803 123 4567",
				FullName:    "Ada Lovelace Obi",
			},
			setup: func(d *testDeps) {
				d.auth.EXPECT().Hash("password1").Return("hashed", nil)
				d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *md.User) (uuid.UUID, error) {
						assert.Equal(t, "ada@example.com", u.Username)
						assert.Equal(t, "ada@example.com", u.Email)
						assert.Equal(t, "+2348031234567", u.PhoneNumber)
						assert.Equal(t, "Ada", u.FirstName)
						assert.Equal(t, "Lovelace Obi", u.LastName)
						assert.Equal(t, "hashed", u.Password)
						assert.Equal(t, md.RegularUser, u.Type)
						assert.True(t, u.IsActive)
						return uid, nil
					},
				)
			},
		},
		{
			name:  "InvalidPhone",
			req:   &dto.RegisterRequest{Email: "ada@example.com", Password: "password1", PhoneNumber: "12"},
			setup: func(d *testDeps) {},
			err:   ErrInvalidPhone,
		},
		{
			name: "Duplicate",
			req:  &dto.RegisterRequest{Email: "ada@example.com", Password: "password1"},
			setup: func(d *testDeps) {
				d.auth.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(uuid.Nil, repo.ErrAlreadyExists)
			},
			err: ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newTestCtrl(t)
			tt.setup(d)

			res, err := c.Register(ctx, tt.req)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid, res.UUID)
		})
	}
}

func TestController_GetUserByUUID(t *testing.T) {
	ctx := context.Background()
	u := &md.User{UUID: uuid.New(), Email: "ada@example.com"}
	key := fmt.Sprintf(userCacheKey, u.UUID)

	t.Run("CacheHit", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.cache.EXPECT().GetToStruct(gomock.Any(), key, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dest any) error {
				bytes, _ := json.Marshal(u)
				return json.Unmarshal(bytes, dest)
			},
		)

		res, err := c.GetUserByUUID(ctx, u.UUID)
		require.NoError(t, err)
		assert.Equal(t, u.Email, res.Email)
	})

	t.Run("CacheMiss", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.cache.EXPECT().GetToStruct(gomock.Any(), key, gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), key, gomock.Any())

		res, err := c.GetUserByUUID(ctx, u.UUID)
		require.NoError(t, err)
		assert.Equal(t, u, res)
	})

	t.Run("NotFound", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.cache.EXPECT().GetToStruct(gomock.Any(), key, gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(nil, repo.ErrNotFound)

		_, err := c.GetUserByUUID(ctx, u.UUID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestController_GetProfile(t *testing.T) {
	ctx := context.Background()
	u := &md.User{ID: 3, UUID: uuid.New()}

	t.Run("CreatedOnFirstRead", func(t *testing.T) {
		c, d := newTestCtrl(t)
		profile := &md.Profile{UserID: 3}
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.repo.EXPECT().GetProfile(gomock.Any(), int64(3)).Return(nil, repo.ErrNotFound)
		d.repo.EXPECT().UpsertProfile(gomock.Any(), int64(3), &dto.UpdateProfileRequest{}).Return(profile, nil)

		res, err := c.GetProfile(ctx, u.UUID)
		require.NoError(t, err)
		assert.Equal(t, profile, res)
	})

	t.Run("RepoError", func(t *testing.T) {
		c, d := newTestCtrl(t)
		testErr := errors.New("db down")
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.repo.EXPECT().GetProfile(gomock.Any(), int64(3)).Return(nil, testErr)

		_, err := c.GetProfile(ctx, u.UUID)
		assert.ErrorIs(t, err, testErr)
	})
}

func TestController_GetAccessSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminSkipsSubscriptionLookup", func(t *testing.T) {
		c, d := newTestCtrl(t)
		u := &md.User{ID: 1, UUID: uuid.New(), Type: md.AdminUser, IsActive: true}
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)

		res, err := c.GetAccessSubject(ctx, u.UUID)
		require.NoError(t, err)
		assert.Equal(t, access.Subject{Type: md.AdminUser, IsActive: true}, res)
	})

	t.Run("Subscriber", func(t *testing.T) {
		c, d := newTestCtrl(t)
		u := &md.User{ID: 2, UUID: uuid.New(), Type: md.RegularUser, IsActive: true, IsVerified: true}
		d.repo.EXPECT().GetUserByUUID(gomock.Any(), u.UUID).Return(u, nil)
		d.repo.EXPECT().HasActiveSubscription(gomock.Any(), int64(2)).Return(true, nil)

		res, err := c.GetAccessSubject(ctx, u.UUID)
		require.NoError(t, err)
		assert.True(t, res.HasActiveSubscription)
		assert.True(t, access.Can(res, access.ReadSignals))
		assert.False(t, access.Can(res, access.PublishSignals))
	})
}
