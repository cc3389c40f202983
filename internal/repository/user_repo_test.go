package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"wanderwith/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	user := &model.User{
		Name: "Travel Enthusiast", Email: "user@example.com", Phone: "+91 98765 43210",
		PasswordHash: "hash", CreatedAt: time.Now(),
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.Phone, user.PasswordHash, user.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, 1, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	user := &model.User{Name: "Second", Email: "user@example.com", Phone: "+91 90000 00000", PasswordHash: "hash", CreatedAt: time.Now()}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.Phone, user.PasswordHash, user.CreatedAt).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_email_key"`))

	err := repo.Create(context.Background(), user)
	assert.ErrorContains(t, err, "users_email_key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone", "password_hash", "created_at"}).
			AddRow(1, "Travel Enthusiast", "user@example.com", "+91 98765 43210", "hash", createdAt))

	user, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, createdAt, user.CreatedAt)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone", "password_hash", "created_at"}))

	user, err := repo.FindByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_Count(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
}
