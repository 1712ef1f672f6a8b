package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"bank-console/internal/models"
	"bank-console/internal/repositories"
	"bank-console/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind selects the deposit account a cash operation targets
type AccountKind string

const (
	AccountKindChecking AccountKind = "checking"
	AccountKindSavings  AccountKind = "savings"
)

const (
	OperationCreateCustomer = "create_customer"
	OperationRenameCustomer = "rename_customer"
	OperationDeposit        = "deposit"
	OperationWithdraw       = "withdraw"
	OperationPayLoan        = "pay_loan"
	OperationEndOfMonth     = "end_of_month"
)

var (
	ErrUnknownAccount = errors.New("unknown account type")
	ErrInvalidName    = errors.New("invalid customer name")
)

type customerName struct {
	FirstName string `json:"first name" validate:"required,max=50,person_name"`
	LastName  string `json:"last name" validate:"required,max=50,person_name"`
}

type cashAccount interface {
	Deposit(amount decimal.Decimal) (models.Transaction, error)
	Withdraw(amount decimal.Decimal) (models.Transaction, error)
}

type bankService struct {
	customerRepo repositories.CustomerRepositoryInterface
	auditService AuditServiceInterface
	logger       ActivityLoggerInterface
	metrics      MetricsRecorderInterface
	validator    *validation.Validator
	terms        models.AccountTerms
	clock        models.Clock
}

// NewBankService creates the teller and customer operations over the directory.
// Every customer it opens gets accounts on the given terms.
func NewBankService(
	customerRepo repositories.CustomerRepositoryInterface,
	auditService AuditServiceInterface,
	logger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	terms models.AccountTerms,
	clock models.Clock,
) BankServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &bankService{
		customerRepo: customerRepo,
		auditService: auditService,
		logger:       logger,
		metrics:      metrics,
		validator:    validation.GetValidator(),
		terms:        terms,
		clock:        clock,
	}
}

func (s *bankService) CreateCustomer(ctx context.Context, firstName, lastName string) (*models.Customer, error) {
	defer s.observe(time.Now())

	name, err := s.validateName(firstName, lastName)
	if err != nil {
		s.fail(ctx, OperationCreateCustomer, uuid.Nil, err)
		return nil, err
	}

	customer, err := models.NewCustomer(name.FirstName, name.LastName, s.terms, s.clock)
	if err != nil {
		err = fmt.Errorf("failed to create customer: %w", err)
		s.fail(ctx, OperationCreateCustomer, uuid.Nil, err)
		return nil, err
	}

	if err := s.customerRepo.Create(customer); err != nil {
		err = fmt.Errorf("failed to add customer: %w", err)
		s.fail(ctx, OperationCreateCustomer, customer.ID, err)
		return nil, err
	}

	s.auditService.LogCustomerCreated(ctx, customer)
	s.logger.LogCustomerCreated(ctx, customer.ID, customer.FullName())
	s.metrics.IncrementCounter("customer_created", nil)
	s.metrics.RecordGauge("customers", float64(s.customerRepo.Count()), nil)
	s.succeed(OperationCreateCustomer)

	return customer, nil
}

func (s *bankService) RenameCustomer(ctx context.Context, customerID uuid.UUID, firstName, lastName string) error {
	defer s.observe(time.Now())

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		s.fail(ctx, OperationRenameCustomer, customerID, err)
		return err
	}

	name, err := s.validateName(firstName, lastName)
	if err != nil {
		s.fail(ctx, OperationRenameCustomer, customerID, err)
		return err
	}

	oldName := customer.FullName()
	if err := s.customerRepo.Rename(customerID, name.FirstName, name.LastName); err != nil {
		s.fail(ctx, OperationRenameCustomer, customerID, err)
		return err
	}

	s.auditService.LogCustomerRenamed(ctx, customer, oldName)
	s.logger.LogCustomerRenamed(ctx, customerID, oldName, customer.FullName())
	s.metrics.IncrementCounter("customer_renamed", nil)
	s.succeed(OperationRenameCustomer)

	return nil
}

func (s *bankService) ListCustomers() []*models.Customer {
	return s.customerRepo.List()
}

// CustomerAt returns the customer at a zero-based position in display order
func (s *bankService) CustomerAt(index int) (*models.Customer, error) {
	return s.customerRepo.GetByIndex(index)
}

func (s *bankService) Deposit(ctx context.Context, customerID uuid.UUID, kind AccountKind, amount decimal.Decimal) (models.Transaction, error) {
	return s.cashOperation(ctx, OperationDeposit, customerID, kind, func(account cashAccount) (models.Transaction, error) {
		return account.Deposit(amount)
	})
}

func (s *bankService) Withdraw(ctx context.Context, customerID uuid.UUID, kind AccountKind, amount decimal.Decimal) (models.Transaction, error) {
	return s.cashOperation(ctx, OperationWithdraw, customerID, kind, func(account cashAccount) (models.Transaction, error) {
		return account.Withdraw(amount)
	})
}

func (s *bankService) cashOperation(
	ctx context.Context,
	operation string,
	customerID uuid.UUID,
	kind AccountKind,
	apply func(cashAccount) (models.Transaction, error),
) (models.Transaction, error) {
	defer s.observe(time.Now())

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		s.fail(ctx, operation, customerID, err)
		return models.Transaction{}, err
	}

	var account cashAccount
	switch kind {
	case AccountKindChecking:
		account = customer.Checking()
	case AccountKindSavings:
		account = customer.Saving()
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownAccount, kind)
		s.fail(ctx, operation, customerID, err)
		return models.Transaction{}, err
	}

	tx, err := apply(account)
	if err != nil {
		s.fail(ctx, operation, customerID, err)
		return models.Transaction{}, err
	}

	s.posted(ctx, operation, customerID, tx)
	return tx, nil
}

func (s *bankService) PayLoan(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) (models.Transaction, error) {
	defer s.observe(time.Now())

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		s.fail(ctx, OperationPayLoan, customerID, err)
		return models.Transaction{}, err
	}

	tx, err := customer.Loan().Pay(amount)
	if err != nil {
		s.fail(ctx, OperationPayLoan, customerID, err)
		return models.Transaction{}, err
	}

	s.posted(ctx, OperationPayLoan, customerID, tx)
	return tx, nil
}

// Amortization projects the customer's loan schedule from its original terms
func (s *bankService) Amortization(ctx context.Context, customerID uuid.UUID) (iter.Seq[models.AmortizationRow], error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	return customer.Loan().Amortization(), nil
}

func (s *bankService) Balances(ctx context.Context, customerID uuid.UUID) (string, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return "", err
	}
	return customer.String(false), nil
}

func (s *bankService) validateName(firstName, lastName string) (customerName, error) {
	name := customerName{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if err := s.validator.Struct(name); err != nil {
		return customerName{}, fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	return name, nil
}

func (s *bankService) posted(ctx context.Context, operation string, customerID uuid.UUID, tx models.Transaction) {
	s.auditService.LogTransaction(ctx, customerID, tx)
	s.logger.LogTransaction(ctx, customerID, tx)
	amount, _ := tx.Amount.Abs().Float64()
	s.metrics.RecordGauge("transaction_amount", amount, map[string]string{"operation": operation})
	s.succeed(operation)
}

func (s *bankService) observe(start time.Time) {
	s.metrics.RecordProcessingTime("operation", time.Since(start))
}

func (s *bankService) succeed(operation string) {
	s.metrics.IncrementCounter("operation.success", map[string]string{"operation": operation})
}

func (s *bankService) fail(ctx context.Context, operation string, customerID uuid.UUID, err error) {
	s.logger.LogOperationFailed(ctx, operation, customerID, err)
	s.metrics.IncrementCounter("operation.failed", map[string]string{
		"operation": operation,
		"reason":    failureReason(err),
	})
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, models.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, models.ErrInsufficientPayment):
		return "insufficient_payment"
	case errors.Is(err, models.ErrLoanPaidOff):
		return "loan_paid_off"
	case errors.Is(err, ErrInvalidName), errors.Is(err, models.ErrNameRequired):
		return "invalid_name"
	case errors.Is(err, ErrUnknownAccount):
		return "unknown_account"
	case errors.Is(err, repositories.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, ErrAlreadyProcessed):
		return "already_processed"
	default:
		return "internal"
	}
}
