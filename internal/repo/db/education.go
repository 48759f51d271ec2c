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

func (r *Repository) ListAcademyVideos(ctx context.Context) ([]*md.AcademyVideo, error) {
	const op = "education.ListAcademyVideos.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.AcademyVideo, 0)
	if err := r.conn.SelectContext(ctx, &res, videoListQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list academy videos", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetAcademyVideo(ctx context.Context, uid uuid.UUID) (*md.AcademyVideo, error) {
	const op = "education.GetAcademyVideo.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.AcademyVideo{}
	if err := r.conn.GetContext(ctx, res, videoGetQ, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get academy video", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateAcademyVideo(ctx context.Context, v *md.AcademyVideo) error {
	const op = "education.CreateAcademyVideo.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(ctx, videoCreateQ, v.Title, v.Description, v.VideoLink, v.Thumbnail).
		Scan(&v.ID, &v.UUID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create academy video", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) ListWebinars(ctx context.Context) ([]*md.Webinar, error) {
	const op = "education.ListWebinars.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Webinar, 0)
	if err := r.conn.SelectContext(ctx, &res, webinarListQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list webinars", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetWebinar(ctx context.Context, uid uuid.UUID) (*md.Webinar, error) {
	const op = "education.GetWebinar.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Webinar{}
	if err := r.conn.GetContext(ctx, res, webinarGetQ, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get webinar", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateWebinar(ctx context.Context, w *md.Webinar) error {
	const op = "education.CreateWebinar.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowContext(ctx, webinarCreateQ, w.Name, w.Description, w.Image, w.Date, w.Time, w.Location).
		Scan(&w.ID, &w.UUID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create webinar", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
