package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateScreeningRequest(t *testing.T) {
	r, mock := newMockRepo(t)
	uid := uuid.New()
	now := time.Now()
	req := &md.AccountScreeningRequest{
		UserID:               3,
		Name:                 "Ada Obi",
		Email:                "ada@example.com",
		PhoneNumber:          "+2348012345678",
		ScheduleDate:         "2024-05-01",
		ScheduleTime:         "10:30",
		Country:              "Nigeria",
		TradingCapitalAmount: "1000",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(screeningCreateQ)).
		WithArgs(
			req.UserID, req.Name, req.Email, req.PhoneNumber, req.ScheduleDate, req.ScheduleTime,
			req.Country, req.TradingCapitalAmount, false, "",
		).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "uuid", "is_approved", "created_at", "updated_at"}).
				AddRow(int64(12), uid.String(), false, now, now),
		)
	mock.ExpectExec(regexp.QuoteMeta(screeningDeletePendingQ)).
		WithArgs(int64(3), int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.CreateScreeningRequest(context.Background(), req))
	assert.Equal(t, int64(12), req.ID)
	assert.Equal(t, uid, req.UUID)
	assert.False(t, req.IsApproved)
}

func TestRepository_ScreeningKeepsApproved(t *testing.T) {
	assert.Contains(t, screeningDeletePendingQ, "is_approved = FALSE")
	assert.Contains(t, screeningDeletePendingQ, "id <> $2")
}

func TestRepository_ApproveScreeningRequest(t *testing.T) {
	uid := uuid.New()

	t.Run(
		"NotFound", func(t *testing.T) {
			r, mock := newMockRepo(t)
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(screeningApproveQ)).
				WithArgs(uid).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))
			mock.ExpectRollback()

			assert.ErrorIs(t, r.ApproveScreeningRequest(context.Background(), uid), repo.ErrNotFound)
		},
	)

	t.Run(
		"DropsOtherPending", func(t *testing.T) {
			r, mock := newMockRepo(t)
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(screeningApproveQ)).
				WithArgs(uid).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(int64(5), int64(3)))
			mock.ExpectExec(regexp.QuoteMeta(screeningDeletePendingQ)).
				WithArgs(int64(3), int64(5)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			assert.NoError(t, r.ApproveScreeningRequest(context.Background(), uid))
		},
	)
}

func TestRepository_GetScreeningStatus(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(screeningStatusQ)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"requested", "approved"}).AddRow(true, false))

	requested, approved, err := r.GetScreeningStatus(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, requested)
	assert.False(t, approved)
}
