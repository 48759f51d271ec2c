package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateUser(t *testing.T) {
	u := &md.User{
		Username: "ada@example.com",
		Email:    "ada@example.com",
		Password: "hash",
		Type:     md.RegularUser,
		IsActive: true,
	}
	args := []driver.Value{u.Username, u.Email, "", "", "", u.Password, "user", true, false}
	testErr := errors.New("boom")

	tests := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock, uid uuid.UUID)
		err    error
	}{
		{
			name: "Success",
			expect: func(mock sqlmock.Sqlmock, uid uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(args...).
					WillReturnRows(sqlmock.NewRows([]string{"uuid"}).AddRow(uid.String()))
			},
		},
		{
			name: "Duplicate",
			expect: func(mock sqlmock.Sqlmock, _ uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(args...).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			err: repo.ErrAlreadyExists,
		},
		{
			name: "Other",
			expect: func(mock sqlmock.Sqlmock, _ uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(args...).
					WillReturnError(testErr)
			},
			err: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				r, mock := newMockRepo(t)
				uid := uuid.New()
				tt.expect(mock, uid)

				res, err := r.CreateUser(context.Background(), u)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
					assert.Equal(t, uuid.Nil, res)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, uid, res)
			},
		)
	}
}

func TestRepository_GetUserByEmail(t *testing.T) {
	t.Run(
		"NotFound", func(t *testing.T) {
			r, mock := newMockRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
				WithArgs("nobody@example.com").
				WillReturnRows(sqlmock.NewRows(userCols))

			res, err := r.GetUserByEmail(context.Background(), "nobody@example.com")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
		},
	)

	t.Run(
		"Found", func(t *testing.T) {
			r, mock := newMockRepo(t)
			now := time.Now()
			mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
				WithArgs("ada@example.com").
				WillReturnRows(
					sqlmock.NewRows(userCols).AddRow(
						int64(1), uuid.NewString(), "ada@example.com", "ada@example.com", "",
						"Ada", "Obi", "hash", "admin", true, true, true, now, now,
					),
				)

			res, err := r.GetUserByEmail(context.Background(), "ada@example.com")
			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, md.AdminUser, res.Type)
			assert.Equal(t, "hash", res.Password)
		},
	)
}

func TestBuildUserListQuery(t *testing.T) {
	q, err := buildUserListQuery(
		context.Background(), 2, 10, map[string]any{
			"is_active": "true",
			"search":    "ada",
			"ignored":   "x",
		},
	)
	require.NoError(t, err)
	assert.Contains(t, q.countQ, "u.is_active = $1")
	assert.Contains(t, q.countQ, "ILIKE")
	assert.Equal(t, []any{true, "%ada%", "%ada%"}, q.countArgs)
	assert.Contains(t, q.dataQ, "LIMIT 10 OFFSET 10")
}
