package services

import (
	"context"
	"errors"
	"fmt"

	"bank-console/internal/models"
	"bank-console/internal/repositories"

	"github.com/google/uuid"
)

// AuditService writes the session's audit trail. Writes are skipped while
// the circuit breaker is open so a failing store does not slow the console.
type AuditService struct {
	repo    repositories.AuditLogRepositoryInterface
	breaker CircuitBreakerInterface
	logger  ActivityLoggerInterface
	metrics MetricsRecorderInterface
}

// NewAuditService creates a new audit service
func NewAuditService(
	repo repositories.AuditLogRepositoryInterface,
	breaker CircuitBreakerInterface,
	logger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
) AuditServiceInterface {
	return &AuditService{
		repo:    repo,
		breaker: breaker,
		logger:  logger,
		metrics: metrics,
	}
}

var (
	ErrInvalidCustomerID = errors.New("invalid customer ID")
	ErrInvalidAuditLog   = errors.New("invalid audit log")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionCustomerCreated:   true,
		models.AuditActionCustomerRenamed:   true,
		models.AuditActionDeposit:           true,
		models.AuditActionWithdrawal:        true,
		models.AuditActionLoanPayment:       true,
		models.AuditActionEndOfMonth:        true,
		models.AuditActionTellerLogin:       true,
		models.AuditActionTellerLoginFailed: true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter("audit.write", map[string]string{"status": "skipped"})
		return ErrCircuitBreakerOpen
	}

	if log.SessionID == "" {
		log.SessionID = SessionID(ctx)
	}

	before := s.breaker.GetState()
	if err := s.repo.Create(log); err != nil {
		s.breaker.RecordFailure()
		s.afterWrite(ctx, before, "failed")
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	s.breaker.RecordSuccess()
	s.afterWrite(ctx, before, "success")

	return nil
}

func (s *AuditService) afterWrite(ctx context.Context, before CircuitBreakerState, status string) {
	s.metrics.IncrementCounter("audit.write", map[string]string{"status": status})
	if after := s.breaker.GetState(); after != before {
		s.logger.LogCircuitBreakerStateChange(ctx, "audit_log", before.String(), after.String())
		s.metrics.RecordGauge("circuit_breaker_state", float64(after), map[string]string{"service": "audit_log"})
	}
}

// record writes an entry and only logs a failure; the banking operation it
// describes has already happened
func (s *AuditService) record(ctx context.Context, log *models.AuditLog) {
	if err := s.CreateAuditLog(ctx, log); err != nil && !errors.Is(err, ErrCircuitBreakerOpen) {
		s.logger.LogAuditWriteFailed(ctx, log.Action, err)
	}
}

// LogCustomerCreated audits a new customer
func (s *AuditService) LogCustomerCreated(ctx context.Context, customer *models.Customer) {
	log := &models.AuditLog{
		CustomerID: &customer.ID,
		Action:     models.AuditActionCustomerCreated,
		Resource:   models.AuditResourceCustomer,
		ResourceID: customer.ID.String(),
	}
	log.SetMetadata("name", customer.FullName())
	s.record(ctx, log)
}

// LogCustomerRenamed audits a change of name
func (s *AuditService) LogCustomerRenamed(ctx context.Context, customer *models.Customer, oldName string) {
	log := &models.AuditLog{
		CustomerID: &customer.ID,
		Action:     models.AuditActionCustomerRenamed,
		Resource:   models.AuditResourceCustomer,
		ResourceID: customer.ID.String(),
	}
	log.SetMetadata("old_name", oldName)
	log.SetMetadata("new_name", customer.FullName())
	s.record(ctx, log)
}

// LogTransaction audits a deposit, withdrawal or loan payment
func (s *AuditService) LogTransaction(ctx context.Context, customerID uuid.UUID, tx models.Transaction) {
	log := &models.AuditLog{
		CustomerID: &customerID,
		Action:     auditActionFor(tx.Kind),
		Resource:   models.AuditResourceCustomer,
		ResourceID: tx.AccountLabel,
	}
	log.SetMetadata("transaction_id", tx.ID.String())
	log.SetMetadata("amount", tx.Amount.StringFixed(2))
	log.SetMetadata("balance_after", tx.BalanceAfter.StringFixed(2))
	if !tx.Interest.IsZero() {
		log.SetMetadata("interest", tx.Interest.StringFixed(2))
	}
	s.record(ctx, log)
}

// LogEndOfMonth audits month-end processing with the postings it made
func (s *AuditService) LogEndOfMonth(ctx context.Context, customerID uuid.UUID, period string, charges []models.Transaction) {
	log := &models.AuditLog{
		CustomerID: &customerID,
		Action:     models.AuditActionEndOfMonth,
		Resource:   models.AuditResourceCustomer,
		ResourceID: period,
	}
	for _, tx := range charges {
		log.SetMetadata(tx.Kind, tx.Amount.StringFixed(2))
	}
	s.record(ctx, log)
}

// LogTellerLogin audits a teller PIN check
func (s *AuditService) LogTellerLogin(ctx context.Context, success bool) {
	action := models.AuditActionTellerLogin
	if !success {
		action = models.AuditActionTellerLoginFailed
	}
	s.record(ctx, &models.AuditLog{
		Action:   action,
		Resource: models.AuditResourceTeller,
	})
}

// GetCustomerActivity retrieves activity logs for a specific customer with pagination
func (s *AuditService) GetCustomerActivity(customerID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if customerID == uuid.Nil {
		return nil, 0, ErrInvalidCustomerID
	}
	return s.repo.GetByCustomerID(customerID, offset, limit)
}

// GetRecentActivity returns the newest entries across all customers
func (s *AuditService) GetRecentActivity(limit int) ([]*models.AuditLog, error) {
	return s.repo.GetRecent(limit)
}

func auditActionFor(kind string) string {
	switch kind {
	case models.TransactionKindDeposit:
		return models.AuditActionDeposit
	case models.TransactionKindWithdrawal:
		return models.AuditActionWithdrawal
	case models.TransactionKindPayment:
		return models.AuditActionLoanPayment
	default:
		return models.AuditActionEndOfMonth
	}
}
