package db

import (
	"context"
	"strconv"

	"github.com/JMURv/zedasignal/internal/config"
	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type listQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildUserListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (listQuery, error) {
	const op = "users.buildUserListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("users u").PlaceholderFormat(sq.Dollar)

	if isActive, ok := boolFilter(filters, "is_active"); ok {
		query = query.Where(sq.Eq{"u.is_active": isActive})
	}

	if isVerified, ok := boolFilter(filters, "is_verified"); ok {
		query = query.Where(sq.Eq{"u.is_verified": isVerified})
	}

	if userType, ok := filters["type"].(string); ok && userType != "" {
		query = query.Where(sq.Eq{"u.type": userType})
	}

	if search, ok := filters["search"].(string); ok && search != "" {
		query = query.Where(
			sq.Or{
				sq.ILike{"u.email": "%" + search + "%"},
				sq.ILike{"u.username": "%" + search + "%"},
			},
		)
	}

	countSql, countArgs, err := query.Columns("COUNT(u.id)").ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"u.id",
			"u.uuid",
			"u.username",
			"u.email",
			"u.phone_number",
			"u.first_name",
			"u.last_name",
			"u.password",
			"u.type",
			"u.is_active",
			"u.is_verified",
			"u.is_staff",
			"u.created_at",
			"u.updated_at",
		).
		OrderBy("u.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64(offset(page, size))).
		ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	return listQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}

// boolFilter accepts both typed and query string values.
func boolFilter(filters map[string]any, key string) (bool, bool) {
	switch v := filters[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}
