package repository

import (
	"context"
	"errors"
	"promo-tracking-backend/cmd/event-automation/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		t.Fatalf("Failed to create GORM instance: %v", err)
	}

	return gormDB, mock
}

func TestEventRepo_ListEvents_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "event_type", "tracking_status", "start_date", "end_date"}).
		AddRow("event-1", 1, "Promo One", "general", "active", now, now).
		AddRow("event-2", 2, "Promo Two", "credit_card", "completed", now, now)

	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(rows)

	ctx := context.Background()
	events, err := repo.ListEvents(ctx)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "event-1", events[0].ID)
	assert.Equal(t, model.TrackingActive, events[0].TrackingStatus)
	assert.Equal(t, "event-2", events[1].ID)
	assert.Equal(t, model.TrackingCompleted, events[1].TrackingStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListEvents_DatabaseError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnError(errors.New("database connection failed"))

	ctx := context.Background()
	events, err := repo.ListEvents(ctx)

	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetEvent_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	rows := sqlmock.NewRows([]string{"id", "name"})

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = `).
		WithArgs("missing", 1).
		WillReturnRows(rows)

	ctx := context.Background()
	_, err := repo.GetEvent(ctx, "missing")

	assert.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_CreateEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	now := time.Now()
	event := model.Event{
		ID:                 "event-123",
		UserID:             1,
		Name:               "New Promo",
		EventType:          "general",
		StartDate:          now,
		EndDate:            now.Add(24 * time.Hour),
		TrackingStatus:     model.TrackingActive,
		RegistrationStatus: model.RegistrationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "events"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.CreateEvent(ctx, event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_CreateEvent_DatabaseError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	event := model.Event{
		ID:   "event-123",
		Name: "Doomed Promo",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "events"`).
		WillReturnError(errors.New("database insert failed"))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.CreateEvent(ctx, event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database insert failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_UpdateEvent_StampsUpdatedAt(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	stale := time.Now().Add(-time.Hour)
	event := model.Event{
		ID:        "event-123",
		Name:      "Renamed Promo",
		UpdatedAt: stale,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	updated, err := repo.UpdateEvent(ctx, event)

	assert.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(stale))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_DeleteEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events"`).
		WithArgs("event-123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.DeleteEvent(ctx, "event-123")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_DeleteEvent_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events"`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.DeleteEvent(ctx, "missing")

	assert.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
