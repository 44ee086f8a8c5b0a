package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultgate/vaultgate/internal/outbox/domain"
)

func TestMySQLOutboxEventRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := testEvent()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID.String(), event.EventType, event.Payload, event.Status,
			event.Retries, event.LastError, event.ProcessedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMySQLOutboxEventRepository(db)
	err = repo.Create(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLOutboxEventRepository_GetPendingEvents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	eventID := uuid.Must(uuid.NewV7())
	rows := sqlmock.NewRows([]string{
		"id", "event_type", "payload", "status", "retries",
		"last_error", "processed_at", "created_at", "updated_at",
	}).AddRow(eventID.String(), "registry.administrator_changed", "{}", "pending", 0, nil, nil, now, now)

	mock.ExpectQuery("SELECT id, event_type, payload, status, retries, last_error, processed_at, created_at, updated_at").
		WithArgs(domain.OutboxEventStatusPending, 10).
		WillReturnRows(rows)

	repo := NewMySQLOutboxEventRepository(db)
	events, err := repo.GetPendingEvents(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLOutboxEventRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := testEvent()
	event.Retries = 1
	lastError := "downstream unavailable"
	event.LastError = &lastError

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(event.EventType, event.Payload, event.Status,
			event.Retries, event.LastError, event.ProcessedAt, event.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMySQLOutboxEventRepository(db)
	err = repo.Update(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
