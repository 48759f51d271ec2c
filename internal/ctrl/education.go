package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/JMURv/zedasignal/internal/repo/s3"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type educationCtrl interface {
	ListAcademyVideos(ctx context.Context) ([]*md.AcademyVideo, error)
	GetAcademyVideo(ctx context.Context, uid uuid.UUID) (*md.AcademyVideo, error)
	CreateAcademyVideo(
		ctx context.Context,
		req *dto.CreateAcademyVideoRequest,
		file *s3.UploadFileRequest,
	) (*md.AcademyVideo, error)
	ListWebinars(ctx context.Context) ([]*md.Webinar, error)
	GetWebinar(ctx context.Context, uid uuid.UUID) (*md.Webinar, error)
	CreateWebinar(ctx context.Context, req *dto.CreateWebinarRequest, file *s3.UploadFileRequest) (*md.Webinar, error)
}

type educationRepo interface {
	ListAcademyVideos(ctx context.Context) ([]*md.AcademyVideo, error)
	GetAcademyVideo(ctx context.Context, uid uuid.UUID) (*md.AcademyVideo, error)
	CreateAcademyVideo(ctx context.Context, v *md.AcademyVideo) error
	ListWebinars(ctx context.Context) ([]*md.Webinar, error)
	GetWebinar(ctx context.Context, uid uuid.UUID) (*md.Webinar, error)
	CreateWebinar(ctx context.Context, w *md.Webinar) error
}

const (
	videosListKey   = "education-videos"
	webinarsListKey = "education-webinars"
)

func (c *Controller) ListAcademyVideos(ctx context.Context) ([]*md.AcademyVideo, error) {
	const op = "education.ListAcademyVideos.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.AcademyVideo, 0)
	if err := c.cache.GetToStruct(ctx, videosListKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListAcademyVideos(ctx)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, videosListKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetAcademyVideo(ctx context.Context, uid uuid.UUID) (*md.AcademyVideo, error) {
	const op = "education.GetAcademyVideo.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetAcademyVideo(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (c *Controller) CreateAcademyVideo(
	ctx context.Context,
	req *dto.CreateAcademyVideoRequest,
	file *s3.UploadFileRequest,
) (*md.AcademyVideo, error) {
	const op = "education.CreateAcademyVideo.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	v := &md.AcademyVideo{
		Title:       req.Title,
		Description: plainText(req.Description),
		VideoLink:   req.VideoLink,
	}

	if file != nil && len(file.File) > 0 {
		url, err := c.s3.UploadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		v.Thumbnail = url
	}

	if err := c.repo.CreateAcademyVideo(ctx, v); err != nil {
		return nil, err
	}

	c.cache.Delete(ctx, videosListKey)
	return v, nil
}

func (c *Controller) ListWebinars(ctx context.Context) ([]*md.Webinar, error) {
	const op = "education.ListWebinars.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.Webinar, 0)
	if err := c.cache.GetToStruct(ctx, webinarsListKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListWebinars(ctx)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, webinarsListKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetWebinar(ctx context.Context, uid uuid.UUID) (*md.Webinar, error) {
	const op = "education.GetWebinar.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetWebinar(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (c *Controller) CreateWebinar(
	ctx context.Context,
	req *dto.CreateWebinarRequest,
	file *s3.UploadFileRequest,
) (*md.Webinar, error) {
	const op = "education.CreateWebinar.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	w := &md.Webinar{
		Name:        req.Name,
		Description: plainText(req.Description),
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
	}

	if file != nil && len(file.File) > 0 {
		url, err := c.s3.UploadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		w.Image = url
	}

	if err := c.repo.CreateWebinar(ctx, w); err != nil {
		return nil, err
	}

	c.cache.Delete(ctx, webinarsListKey)
	return w, nil
}
