package repository

import (
	"context"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepo_CreateUser_AssignsGeneratedID(t *testing.T) {
	gdb, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gdb.DB()
		sqlDB.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	repo := NewUserRepo(gdb)
	created, err := repo.CreateUser(context.Background(), model.User{
		Username:  "somchai",
		Email:     "somchai@example.com",
		CreatedAt: time.Now().UTC(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetUser_NotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gdb.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = `).
		WithArgs("99", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

	repo := NewUserRepo(gdb)
	_, err := repo.GetUser(context.Background(), "99")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_DeleteUser_NotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gdb.DB()
		sqlDB.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users" WHERE id = `).
		WithArgs("99").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewUserRepo(gdb)
	err := repo.DeleteUser(context.Background(), "99")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
