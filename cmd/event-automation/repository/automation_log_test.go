package repository

import (
	"context"
	"promo-tracking-backend/cmd/event-automation/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAutomationLogRepo_AppendLog_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewAutomationLogRepo(gormDB)

	log := model.AutomationLog{
		ID:        "log-1",
		EventID:   "event-1",
		Status:    model.AutomationSuccess,
		Timestamp: time.Now(),
	}

	eventRows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("event-1", "Promo")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = `).
		WithArgs("event-1", 1).
		WillReturnRows(eventRows)
	mock.ExpectExec(`INSERT INTO "automation_logs"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.AppendLog(ctx, log)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationLogRepo_AppendLog_UnknownEvent(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewAutomationLogRepo(gormDB)

	log := model.AutomationLog{
		ID:      "log-1",
		EventID: "ghost",
		Status:  model.AutomationFailed,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = `).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.AppendLog(ctx, log)

	assert.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
