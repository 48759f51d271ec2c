package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JMURv/zedasignal/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_ConsumeVerificationCode(t *testing.T) {
	const email = "ada@example.com"
	const codeID = int64(7)
	testErr := errors.New("boom")
	uid := uuid.New()

	tests := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock)
		uid    uuid.UUID
		err    error
	}{
		{
			name: "Success",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(codeMarkUsedQ)).
					WithArgs(codeID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(codeDeleteSiblingsQ)).
					WithArgs(email, codeID).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectQuery(regexp.QuoteMeta(userMarkVerifiedQ)).
					WithArgs(email).
					WillReturnRows(sqlmock.NewRows([]string{"uuid"}).AddRow(uid.String()))
				mock.ExpectCommit()
			},
			uid: uid,
		},
		{
			name: "NoAccountForEmail",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(codeMarkUsedQ)).
					WithArgs(codeID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(codeDeleteSiblingsQ)).
					WithArgs(email, codeID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(userMarkVerifiedQ)).
					WithArgs(email).
					WillReturnRows(sqlmock.NewRows([]string{"uuid"}))
				mock.ExpectCommit()
			},
			uid: uuid.Nil,
		},
		{
			name: "AlreadyUsed",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(codeMarkUsedQ)).
					WithArgs(codeID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			err: repo.ErrNotFound,
		},
		{
			name: "SiblingsFail",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(codeMarkUsedQ)).
					WithArgs(codeID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(codeDeleteSiblingsQ)).
					WithArgs(email, codeID).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			err: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				r, mock := newMockRepo(t)
				tt.expect(mock)

				res, err := r.ConsumeVerificationCode(context.Background(), codeID, email)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
					assert.Equal(t, uuid.Nil, res)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.uid, res)
			},
		)
	}
}

func TestRepository_MarkUsedOnlyUnused(t *testing.T) {
	assert.Contains(t, codeMarkUsedQ, "used = FALSE")
	assert.Contains(t, codeDeleteSiblingsQ, "id <> $2")
	assert.Contains(t, userMarkVerifiedQ, "RETURNING uuid")
}

func TestRepository_GetResetToken(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(resetTokenGetQ)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "key", "ip_address", "user_agent", "created_at"}))

	res, err := r.GetResetToken(context.Background(), "missing")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
