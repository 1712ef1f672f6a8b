package services

import (
	"context"
	"log/slog"
	"time"

	"bank-console/internal/models"

	"github.com/google/uuid"
)

// ActivityLogger provides structured logging for teller and customer operations
type ActivityLogger struct {
	logger *slog.Logger
}

// NewActivityLogger creates a new activity logger
func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	return &ActivityLogger{
		logger: logger,
	}
}

// LogCustomerCreated logs customer creation
func (al *ActivityLogger) LogCustomerCreated(ctx context.Context, customerID uuid.UUID, name string) {
	al.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.String("customer_id", customerID.String()),
		slog.String("name", name),
		slog.Time("timestamp", time.Now()),
		slog.String("session_id", SessionID(ctx)),
	)
}

// LogCustomerRenamed logs a change of customer name
func (al *ActivityLogger) LogCustomerRenamed(ctx context.Context, customerID uuid.UUID, oldName, newName string) {
	al.logger.InfoContext(ctx, "customer renamed",
		slog.String("event_type", "customer_renamed"),
		slog.String("customer_id", customerID.String()),
		slog.String("old_name", oldName),
		slog.String("new_name", newName),
		slog.Time("timestamp", time.Now()),
		slog.String("session_id", SessionID(ctx)),
	)
}

// LogTransaction logs one posted transaction
func (al *ActivityLogger) LogTransaction(ctx context.Context, customerID uuid.UUID, tx models.Transaction) {
	al.logger.InfoContext(ctx, "transaction posted",
		slog.String("event_type", "transaction_posted"),
		slog.String("customer_id", customerID.String()),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("account", tx.AccountLabel),
		slog.String("kind", tx.Kind),
		slog.String("amount", tx.Amount.StringFixed(2)),
		slog.String("balance_after", tx.BalanceAfter.StringFixed(2)),
		slog.Time("timestamp", tx.Timestamp),
		slog.String("session_id", SessionID(ctx)),
	)
}

// LogOperationFailed logs a rejected operation
func (al *ActivityLogger) LogOperationFailed(ctx context.Context, operation string, customerID uuid.UUID, err error) {
	al.logger.WarnContext(ctx, "operation failed",
		slog.String("event_type", "operation_failed"),
		slog.String("operation", operation),
		slog.String("customer_id", customerID.String()),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("session_id", SessionID(ctx)),
	)
}

// LogEndOfMonth logs month-end processing for one customer
func (al *ActivityLogger) LogEndOfMonth(ctx context.Context, customerID uuid.UUID, period string, postings int) {
	al.logger.InfoContext(ctx, "end of month processed",
		slog.String("event_type", "end_of_month"),
		slog.String("customer_id", customerID.String()),
		slog.String("period", period),
		slog.Int("postings", postings),
		slog.Time("timestamp", time.Now()),
		slog.String("session_id", SessionID(ctx)),
	)
}

// LogTellerAuth logs a teller PIN check. The PIN itself is never logged.
func (al *ActivityLogger) LogTellerAuth(ctx context.Context, success bool, remainingAttempts int) {
	if success {
		al.logger.InfoContext(ctx, "teller authenticated",
			slog.String("event_type", "teller_login"),
			slog.Time("timestamp", time.Now()),
			slog.String("session_id", SessionID(ctx)),
		)
		return
	}
	al.logger.WarnContext(ctx, "teller authentication failed",
		slog.String("event_type", "teller_login_failed"),
		slog.Int("remaining_attempts", remainingAttempts),
		slog.Time("timestamp", time.Now()),
		slog.String("session_id", SessionID(ctx)),
	)
}

// LogAuditWriteFailed logs an audit entry that could not be stored
func (al *ActivityLogger) LogAuditWriteFailed(ctx context.Context, action string, err error) {
	al.logger.ErrorContext(ctx, "audit write failed",
		slog.String("event_type", "audit_write_failed"),
		slog.String("action", action),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("session_id", SessionID(ctx)),
	)
}

func (al *ActivityLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}
