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

func (r *Repository) CreateVerificationCode(ctx context.Context, email, code string) error {
	const op = "auth.CreateVerificationCode.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, codeCreateQ, code, email); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create verification code", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) ListVerificationCodes(ctx context.Context, email string) ([]*md.VerificationCode, error) {
	const op = "auth.ListVerificationCodes.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.VerificationCode, 0)
	if err := r.conn.SelectContext(ctx, &res, codeListByEmailQ, email); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list verification codes", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

// ConsumeVerificationCode marks the code used, drops every other code issued
// to the same email and flags the owning user as verified. It returns the
// verified user's uuid, or uuid.Nil when no account uses the email.
func (r *Repository) ConsumeVerificationCode(ctx context.Context, codeID int64, email string) (uuid.UUID, error) {
	const op = "auth.ConsumeVerificationCode.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to begin transaction", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}
	defer rollback(span, op, tx)

	res, err := tx.ExecContext(ctx, codeMarkUsedQ, codeID)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to mark code as used", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return uuid.Nil, err
	}

	if aff == 0 {
		return uuid.Nil, repo.ErrNotFound
	}

	if _, err = tx.ExecContext(ctx, codeDeleteSiblingsQ, email, codeID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete sibling codes", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	uid := uuid.Nil
	if err = tx.QueryRowxContext(ctx, userMarkVerifiedQ, email).Scan(&uid); err != nil && !errors.Is(err, sql.ErrNoRows) {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to mark user as verified", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit transaction", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return uid, nil
}

func (r *Repository) CreateResetToken(ctx context.Context, t *md.PasswordResetToken) error {
	const op = "auth.CreateResetToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, resetTokenCreateQ, t.UserID, t.Key, t.IPAddress, t.UserAgent)
	if err != nil {
		if isUniqueViolation(err) {
			return repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create reset token", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) GetResetToken(ctx context.Context, key string) (*md.PasswordResetToken, error) {
	const op = "auth.GetResetToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.PasswordResetToken{}
	if err := r.conn.GetContext(ctx, res, resetTokenGetQ, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get reset token", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) DeleteResetTokens(ctx context.Context, userID int64) error {
	const op = "auth.DeleteResetTokens.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, resetTokenDeleteByUserQ, userID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete reset tokens", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
