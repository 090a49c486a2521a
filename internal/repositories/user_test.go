package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	username := "john"

	t.Run("found by username", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "username", "email", "password_hash", "is_admin", "created_at", "updated_at"}).
			AddRow(userID, "john", "john@example.com", "hash", false, time.Now(), time.Now())
		mock.ExpectQuery("SELECT user_id, username, email, password_hash, is_admin").
			WithArgs(&username, nil).
			WillReturnRows(rows)

		user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "john", user.Username)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, username, email, password_hash, is_admin").
			WithArgs(&username, nil).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "username", "email", "password_hash", "is_admin", "created_at", "updated_at"}).
			AddRow(userID, "john", "john@example.com", "hash", true, time.Now(), time.Now())
		mock.ExpectQuery("SELECT user_id, username, email, password_hash, is_admin").
			WithArgs(userID).
			WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), userID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.True(t, user.IsAdmin)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, username, email, password_hash, is_admin").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		user, err := repo.GetByID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "john@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID))

	got, err := repo.Save(context.Background(), "john", "hash", "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_SaveError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "john@example.com", "hash").
		WillReturnError(assert.AnError)

	_, err := repo.Save(context.Background(), "john", "hash", "john@example.com")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
