package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bank-console/internal/models"
	"bank-console/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodLayout formats the calendar month a statement covers
const PeriodLayout = "2006-01"

var ErrAlreadyProcessed = errors.New("end of month already processed for this period")

type statementService struct {
	customerRepo repositories.CustomerRepositoryInterface
	auditService AuditServiceInterface
	logger       ActivityLoggerInterface
	metrics      MetricsRecorderInterface

	guard     bool
	mu        sync.Mutex
	processed map[uuid.UUID]string
}

// NewStatementService creates the month-end processor. With guard set, a
// customer can be processed at most once per calendar month.
func NewStatementService(
	customerRepo repositories.CustomerRepositoryInterface,
	auditService AuditServiceInterface,
	logger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	guard bool,
) StatementServiceInterface {
	return &statementService{
		customerRepo: customerRepo,
		auditService: auditService,
		logger:       logger,
		metrics:      metrics,
		guard:        guard,
		processed:    make(map[uuid.UUID]string),
	}
}

// RunEndOfMonth credits savings interest, charges loan interest and builds
// the statement for the calendar month containing now
func (s *statementService) RunEndOfMonth(ctx context.Context, customerID uuid.UUID, now time.Time) (*models.Statement, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		s.logger.LogOperationFailed(ctx, OperationEndOfMonth, customerID, err)
		s.metrics.IncrementCounter("end_of_month", map[string]string{"status": "failed"})
		return nil, err
	}

	period := now.Format(PeriodLayout)
	if err := s.claim(customerID, period); err != nil {
		s.logger.LogOperationFailed(ctx, OperationEndOfMonth, customerID, err)
		s.metrics.IncrementCounter("end_of_month", map[string]string{"status": "already_processed"})
		return nil, err
	}

	var charges []models.Transaction
	if tx, ok := customer.Saving().EndOfMonth(); ok {
		charges = append(charges, tx)
	}
	if tx, ok := customer.Loan().EndOfMonth(); ok {
		charges = append(charges, tx)
	}

	startDate, endDate := monthRange(now)
	accounts := customer.Accounts()
	statement := &models.Statement{
		CustomerID:   customer.ID,
		CustomerName: customer.FullName(),
		Year:         now.Year(),
		Month:        now.Month(),
		StartDate:    startDate,
		EndDate:      endDate,
		Charges:      charges,
		Accounts:     make([]models.AccountStatement, 0, len(accounts)),
		GeneratedAt:  now,
	}
	for _, account := range accounts {
		statement.Accounts = append(statement.Accounts, buildAccountStatement(account, startDate, endDate))
	}

	s.auditService.LogEndOfMonth(ctx, customerID, period, charges)
	s.logger.LogEndOfMonth(ctx, customerID, period, len(charges))
	s.metrics.IncrementCounter("end_of_month", map[string]string{"status": "success"})

	return statement, nil
}

func (s *statementService) claim(customerID uuid.UUID, period string) error {
	if !s.guard {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processed[customerID] == period {
		return fmt.Errorf("%w: %s", ErrAlreadyProcessed, period)
	}
	s.processed[customerID] = period
	return nil
}

func monthRange(now time.Time) (time.Time, time.Time) {
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Second)
	return startDate, endDate
}

func buildAccountStatement(account models.Account, startDate, endDate time.Time) models.AccountStatement {
	next := endDate.Add(time.Second)
	var transactions []models.Transaction
	for _, tx := range account.Transactions() {
		if tx.Timestamp.Before(startDate) || !tx.Timestamp.Before(next) {
			continue
		}
		transactions = append(transactions, tx)
	}

	openingBalance, closingBalance := calculateBalances(transactions, account.Balance())
	return models.AccountStatement{
		AccountLabel:   account.Label(),
		OpeningBalance: openingBalance,
		ClosingBalance: closingBalance,
		Transactions:   transactions,
		Summary:        calculateSummary(transactions),
	}
}

func calculateBalances(transactions []models.Transaction, currentBalance decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if len(transactions) == 0 {
		return currentBalance, currentBalance
	}

	openingBalance := transactions[0].BalanceBefore()
	closingBalance := transactions[len(transactions)-1].BalanceAfter

	return openingBalance, closingBalance
}

// calculateSummary classifies by the direction the balance moved, so loan
// interest charges count as credits and loan payments as debits
func calculateSummary(transactions []models.Transaction) models.StatementSummary {
	summary := models.StatementSummary{
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
		NetChange:    decimal.Zero,
	}

	for i := range transactions {
		txn := &transactions[i]
		summary.TransactionCount++

		if txn.IsCredit() {
			summary.TotalCredits = summary.TotalCredits.Add(txn.Applied)
			summary.CreditCount++
		} else if txn.IsDebit() {
			summary.TotalDebits = summary.TotalDebits.Add(txn.Applied.Abs())
			summary.DebitCount++
		}
	}

	summary.NetChange = summary.TotalCredits.Sub(summary.TotalDebits)

	return summary
}
