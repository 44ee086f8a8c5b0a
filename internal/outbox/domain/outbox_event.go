// Package domain defines the transactional outbox entity used for registry
// change notifications.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus tracks an event's delivery lifecycle. Events move from
// pending to processed on delivery, or to failed once retries are exhausted.
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// OutboxEvent represents a registry notification recorded in the transactional
// outbox. The row is written inside the mutation's transaction, so notifications
// exist exactly when the mutation committed.
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
