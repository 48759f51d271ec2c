package ctrl

import (
	"context"
	"testing"

	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/JMURv/zedasignal/internal/repo/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_CreateGuide(t *testing.T) {
	ctx := context.Background()
	bot := &md.Bot{ID: 3, UUID: uuid.New(), Name: "Scalper"}
	req := &dto.CreateGuideRequest{
		Bot:         bot.UUID,
		Description: `<p onclick="steal()">Step <b>one</b></p><script>alert(1)</script>`,
	}

	t.Run("SanitisesHTML", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetBot(gomock.Any(), bot.UUID).Return(bot, nil)
		d.repo.EXPECT().CreateGuide(gomock.Any(), gomock.Any()).Return(nil)

		res, err := c.CreateGuide(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "<p>Step <b>one</b></p>", res.Description)
		assert.Equal(t, bot.UUID, res.BotUUID)
		assert.Equal(t, int64(3), res.BotID)
	})

	t.Run("SecondGuideConflicts", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetBot(gomock.Any(), bot.UUID).Return(bot, nil)
		d.repo.EXPECT().CreateGuide(gomock.Any(), gomock.Any()).Return(repo.ErrAlreadyExists)

		_, err := c.CreateGuide(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("UnknownBot", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().GetBot(gomock.Any(), bot.UUID).Return(nil, repo.ErrNotFound)

		_, err := c.CreateGuide(ctx, req)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestController_CreateBot(t *testing.T) {
	ctx := context.Background()
	inactive := false

	c, d := newTestCtrl(t)
	d.repo.EXPECT().CreateBot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *md.Bot) error {
			assert.False(t, b.IsActive)
			assert.True(t, b.IsTopPerforming)
			return nil
		},
	)

	_, err := c.CreateBot(ctx, &dto.CreateBotRequest{Name: "Grid", IsActive: &inactive, IsTopPerforming: true})
	assert.NoError(t, err)
}

func TestController_CreateAcademyVideo(t *testing.T) {
	ctx := context.Background()
	file := &s3.UploadFileRequest{File: []byte("png"), Filename: "thumb.png", ContentType: "image/png"}

	t.Run("WithThumbnail", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.s3.EXPECT().UploadFile(gomock.Any(), file).Return("http://minio/bucket/thumb.png", nil)
		d.repo.EXPECT().CreateAcademyVideo(gomock.Any(), gomock.Any()).Return(nil)
		d.cache.EXPECT().Delete(gomock.Any(), videosListKey)

		res, err := c.CreateAcademyVideo(
			ctx, &dto.CreateAcademyVideoRequest{Title: "Basics", VideoLink: "https://youtu.be/x"}, file,
		)
		require.NoError(t, err)
		assert.Equal(t, "http://minio/bucket/thumb.png", res.Thumbnail)
	})

	t.Run("WithoutThumbnail", func(t *testing.T) {
		c, d := newTestCtrl(t)
		d.repo.EXPECT().CreateAcademyVideo(gomock.Any(), gomock.Any()).Return(nil)
		d.cache.EXPECT().Delete(gomock.Any(), videosListKey)

		res, err := c.CreateAcademyVideo(
			ctx, &dto.CreateAcademyVideoRequest{Title: "Basics", VideoLink: "https://youtu.be/x"}, nil,
		)
		require.NoError(t, err)
		assert.Empty(t, res.Thumbnail)
	})
}

func TestController_CreateWebinar(t *testing.T) {
	ctx := context.Background()

	c, d := newTestCtrl(t)
	d.repo.EXPECT().CreateWebinar(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *md.Webinar) error {
			assert.Equal(t, "2024-06-01", w.Date)
			assert.Equal(t, "18:00", w.Time)
			return nil
		},
	)
	d.cache.EXPECT().Delete(gomock.Any(), webinarsListKey)

	_, err := c.CreateWebinar(
		ctx, &dto.CreateWebinarRequest{Name: "Live", Date: "2024-06-01", Time: "18:00"}, nil,
	)
	assert.NoError(t, err)
}
