package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ecotourism/internal/models"
)

func newMockUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewUserRepository(sqlxDB), mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock := newMockUserRepo(t)
	ctx := context.Background()

	user := &models.User{
		Email:        "admin@ecotourism.kz",
		Role:         "Admin",
		RefreshToken: "refresh_token",
	}

	mock.ExpectExec(`
		INSERT INTO users (user_id, email, password_hash, role, refresh_token, refresh_token_expiry_time)
		VALUES (?, ?, ?, ?, ?, ?)
	`).
		WithArgs(
			sqlmock.AnyArg(), // user_id генерируется в репозитории
			"admin@ecotourism.kz",
			sqlmock.AnyArg(), // password_hash
			"Admin",
			"refresh_token",
			time.Time{},
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(ctx, user, "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	repo, mock := newMockUserRepo(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	columns := []string{"user_id", "email", "password_hash", "role", "refresh_token", "refresh_token_expiry_time"}

	t.Run("Верный пароль", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs("admin@ecotourism.kz").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("u1", "admin@ecotourism.kz", string(hash), "Admin", "", time.Time{}))

		user, err := repo.VerifyPassword(ctx, "admin@ecotourism.kz", "password123")

		assert.NoError(t, err)
		assert.Equal(t, "u1", user.UserID)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs("admin@ecotourism.kz").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("u1", "admin@ecotourism.kz", string(hash), "Admin", "", time.Time{}))

		_, err := repo.VerifyPassword(ctx, "admin@ecotourism.kz", "wrong")

		assert.Error(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs("ghost@ecotourism.kz").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.VerifyPassword(ctx, "ghost@ecotourism.kz", "password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "не найден")
	})
}
