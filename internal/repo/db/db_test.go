package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var userCols = []string{
	"id", "uuid", "username", "email", "phone_number", "first_name", "last_name",
	"password", "type", "is_active", "is_verified", "is_staff", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(
		func() {
			require.NoError(t, mock.ExpectationsWereMet())
			_ = db.Close()
		},
	)

	return &Repository{conn: sqlx.NewDb(db, "sqlmock")}, mock
}
