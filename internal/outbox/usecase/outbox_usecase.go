// Package usecase implements the outbox event processing loop that drains the
// registry's membership and administrator change notifications.
package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/vaultgate/vaultgate/internal/database"
	"github.com/vaultgate/vaultgate/internal/outbox/domain"
	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
)

// Config tunes the polling loop: how often to poll, how many events per
// batch, how many delivery attempts before an event is parked as failed, and
// how long a failed event waits before its next attempt.
type Config struct {
	Interval      time.Duration
	BatchSize     int
	MaxRetries    int
	RetryInterval time.Duration
}

// OutboxEventRepository is the persistence surface the processor needs.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
}

// EventProcessor delivers a drained event to its destination.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

// UseCase exposes the processing loop and a single-batch entry point for the
// process-outbox command.
type UseCase interface {
	Start(ctx context.Context) error
	ProcessEvents(ctx context.Context) error
}

// OutboxUseCase drains pending registry notifications in batches.
type OutboxUseCase struct {
	config         Config
	txManager      database.TxManager
	outboxRepo     OutboxEventRepository
	eventProcessor EventProcessor
	logger         *slog.Logger
}

// NewOutboxUseCase creates the processor with its repository and delivery
// target.
func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	eventProcessor EventProcessor,
	logger *slog.Logger,
) *OutboxUseCase {
	return &OutboxUseCase{
		config:         config,
		txManager:      txManager,
		outboxRepo:     outboxRepo,
		eventProcessor: eventProcessor,
		logger:         logger,
	}
}

// Start polls for pending events until the context is cancelled. Processing
// errors are logged and the loop keeps running; only cancellation stops it.
func (uc *OutboxUseCase) Start(ctx context.Context) error {
	if uc.logger != nil {
		uc.logger.Info("starting outbox event processor",
			slog.Duration("interval", uc.config.Interval),
			slog.Int("batch_size", uc.config.BatchSize),
		)
	}

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if uc.logger != nil {
				uc.logger.Info("stopping outbox event processor")
			}
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil {
				if uc.logger != nil {
					uc.logger.Error("failed to process events", slog.Any("error", err))
				}
			}
		}
	}
}

// ProcessEvents drains one batch inside a single transaction. Claimed rows
// stay locked until commit, so a crashed worker leaves its batch pending for
// the next poll. A delivery failure marks that event for retry and the batch
// continues; a repository failure aborts and rolls back the whole batch.
func (uc *OutboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.outboxRepo.GetPendingEvents(ctx, uc.config.BatchSize)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		if uc.logger != nil {
			uc.logger.Info("processing events", slog.Int("count", len(events)))
		}

		for _, event := range events {
			if uc.shouldDefer(event) {
				continue
			}

			if err := uc.processEvent(ctx, event); err != nil {
				uc.recordFailure(event, err)
			} else {
				now := time.Now()
				event.Status = domain.OutboxEventStatusProcessed
				event.ProcessedAt = &now
			}

			if err := uc.outboxRepo.Update(ctx, event); err != nil {
				return err
			}
		}

		return nil
	})
}

func (uc *OutboxUseCase) processEvent(ctx context.Context, event *domain.OutboxEvent) error {
	if uc.logger != nil {
		uc.logger.Info("processing event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.EventType),
		)
	}

	return uc.eventProcessor.Process(ctx, event)
}

// shouldDefer holds back an event that failed within the retry interval so a
// flapping destination is not hammered on every poll. Fresh events always run.
func (uc *OutboxUseCase) shouldDefer(event *domain.OutboxEvent) bool {
	return event.Retries > 0 && time.Since(event.UpdatedAt) < uc.config.RetryInterval
}

// recordFailure bumps the retry count and parks the event as failed once the
// retry budget is spent.
func (uc *OutboxUseCase) recordFailure(event *domain.OutboxEvent, err error) {
	if uc.logger != nil {
		uc.logger.Error("failed to process event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.EventType),
			slog.Any("error", err),
		)
	}

	event.Retries++
	errorMsg := err.Error()
	event.LastError = &errorMsg

	if event.Retries >= uc.config.MaxRetries {
		event.Status = domain.OutboxEventStatusFailed
	}
}

// LoggingEventProcessor logs registry notifications as they are drained. Downstream
// delivery (webhooks, queues, dashboard reconciliation) hangs off this interface.
type LoggingEventProcessor struct {
	logger *slog.Logger
}

// NewLoggingEventProcessor creates a processor that emits each notification
// as a structured log line.
func NewLoggingEventProcessor(logger *slog.Logger) *LoggingEventProcessor {
	return &LoggingEventProcessor{
		logger: logger,
	}
}

// Process handles a registry notification with structured logging
func (p *LoggingEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	switch event.EventType {
	case registryDomain.EventMembershipChanged:
		var payload registryDomain.MembershipChangedEvent
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return err
		}
		if p.logger != nil {
			p.logger.Info("membership changed",
				slog.String("account", payload.Account.String()),
				slog.Bool("allowed", payload.Allowed),
				slog.String("actor", payload.Actor.String()),
			)
		}
	case registryDomain.EventAdministratorChanged:
		var payload registryDomain.AdministratorChangedEvent
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return err
		}
		if p.logger != nil {
			p.logger.Info("administrator changed",
				slog.String("old_administrator", payload.OldAdministrator.String()),
				slog.String("new_administrator", payload.NewAdministrator.String()),
			)
		}
	default:
		if p.logger != nil {
			p.logger.Warn("unknown event type", slog.String("event_type", event.EventType))
		}
	}

	return nil
}
