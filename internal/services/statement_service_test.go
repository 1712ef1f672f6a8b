package services

import (
	"context"
	"testing"
	"time"

	"bank-console/internal/models"
	"bank-console/internal/repositories"
	"bank-console/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatementServiceTestSuite defines the test suite for StatementServiceInterface
type StatementServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customerRepo repositories.CustomerRepositoryInterface
	auditService *service_mocks.MockAuditServiceInterface
	logger       *service_mocks.MockActivityLoggerInterface
	metrics      *PrometheusMetrics
	now          time.Time
	ctx          context.Context
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repositories.NewCustomerRepository()
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.logger = service_mocks.NewMockActivityLoggerInterface(s.ctrl)
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	s.now = fixedClock()
	s.ctx = context.Background()

	s.logger.EXPECT().LogEndOfMonth(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogOperationFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *StatementServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) service(guard bool) StatementServiceInterface {
	return NewStatementService(s.customerRepo, s.auditService, s.logger, s.metrics, guard)
}

func (s *StatementServiceTestSuite) clock() time.Time {
	return s.now
}

func (s *StatementServiceTestSuite) newCustomer() *models.Customer {
	customer, err := models.NewCustomer("Tony", "Womack", testTerms(), s.clock)
	s.Require().NoError(err)
	s.Require().NoError(s.customerRepo.Create(customer))
	return customer
}

func (s *StatementServiceTestSuite) runs(status string) float64 {
	return testutil.ToFloat64(s.metrics.endOfMonthRuns.WithLabelValues(status))
}

func (s *StatementServiceTestSuite) TestRunEndOfMonth_PostsInterestAndBuildsStatement() {
	customer := s.newCustomer()
	s.auditService.EXPECT().LogEndOfMonth(gomock.Any(), customer.ID, "2025-09", gomock.Len(2))

	stmt, err := s.service(false).RunEndOfMonth(s.ctx, customer.ID, s.now)

	s.Require().NoError(err)
	s.Equal("Tony Womack", stmt.CustomerName)
	s.Equal(2025, stmt.Year)
	s.Equal(time.September, stmt.Month)
	s.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), stmt.StartDate)
	s.Equal(time.Date(2025, time.September, 30, 23, 59, 59, 0, time.UTC), stmt.EndDate)

	s.Require().Len(stmt.Charges, 2)
	s.Equal(models.TransactionKindInterestCredit, stmt.Charges[0].Kind)
	s.True(stmt.Charges[0].Amount.Equal(decimal.NewFromInt(250)))
	s.Equal(models.TransactionKindInterestCharge, stmt.Charges[1].Kind)
	s.True(stmt.Charges[1].Amount.Equal(decimal.NewFromInt(100)))

	s.Require().Len(stmt.Accounts, 3)
	checking, saving, loan := stmt.Accounts[0], stmt.Accounts[1], stmt.Accounts[2]

	s.Equal(models.AccountLabelChecking, checking.AccountLabel)
	s.True(checking.OpeningBalance.IsZero())
	s.True(checking.ClosingBalance.Equal(decimal.NewFromInt(5000)))
	s.Equal(1, checking.Summary.TransactionCount)

	s.Equal(models.AccountLabelSavings, saving.AccountLabel)
	s.True(saving.ClosingBalance.Equal(decimal.NewFromInt(50250)))
	s.True(saving.Summary.TotalCredits.Equal(decimal.NewFromInt(50250)))
	s.Equal(2, saving.Summary.CreditCount)

	s.Equal(models.AccountLabelLoan, loan.AccountLabel)
	s.True(loan.ClosingBalance.Equal(decimal.NewFromInt(10100)))
	s.True(loan.Summary.NetChange.Equal(decimal.NewFromInt(10100)))

	s.Equal(float64(1), s.runs("success"))
}

func (s *StatementServiceTestSuite) TestRunEndOfMonth_OnlyCurrentMonthTransactions() {
	s.now = time.Date(2025, time.August, 15, 9, 30, 0, 0, time.UTC)
	customer := s.newCustomer()
	s.now = time.Date(2025, time.September, 30, 17, 0, 0, 0, time.UTC)
	s.auditService.EXPECT().LogEndOfMonth(gomock.Any(), customer.ID, "2025-09", gomock.Any())

	stmt, err := s.service(false).RunEndOfMonth(s.ctx, customer.ID, s.now)

	s.Require().NoError(err)
	checking, saving := stmt.Accounts[0], stmt.Accounts[1]
	s.Empty(checking.Transactions)
	s.True(checking.OpeningBalance.Equal(decimal.NewFromInt(5000)))
	s.True(checking.ClosingBalance.Equal(decimal.NewFromInt(5000)))

	s.Require().Len(saving.Transactions, 1)
	s.True(saving.OpeningBalance.Equal(decimal.NewFromInt(50000)))
	s.True(saving.ClosingBalance.Equal(decimal.NewFromInt(50250)))
}

func (s *StatementServiceTestSuite) TestRunEndOfMonth_RepeatsWithoutGuard() {
	customer := s.newCustomer()
	s.auditService.EXPECT().LogEndOfMonth(gomock.Any(), customer.ID, "2025-09", gomock.Any()).Times(2)
	service := s.service(false)

	_, err := service.RunEndOfMonth(s.ctx, customer.ID, s.now)
	s.Require().NoError(err)
	_, err = service.RunEndOfMonth(s.ctx, customer.ID, s.now)
	s.Require().NoError(err)

	s.True(customer.Saving().Balance().Equal(decimal.RequireFromString("50501.25")))
	s.Equal(float64(2), s.runs("success"))
}

func (s *StatementServiceTestSuite) TestRunEndOfMonth_GuardRejectsSecondRun() {
	customer := s.newCustomer()
	s.auditService.EXPECT().LogEndOfMonth(gomock.Any(), customer.ID, "2025-09", gomock.Any())
	s.auditService.EXPECT().LogEndOfMonth(gomock.Any(), customer.ID, "2025-10", gomock.Any())
	service := s.service(true)

	_, err := service.RunEndOfMonth(s.ctx, customer.ID, s.now)
	s.Require().NoError(err)

	_, err = service.RunEndOfMonth(s.ctx, customer.ID, s.now)
	s.ErrorIs(err, ErrAlreadyProcessed)
	s.True(customer.Saving().Balance().Equal(decimal.NewFromInt(50250)))
	s.Equal(float64(1), s.runs("already_processed"))

	s.now = s.now.AddDate(0, 0, 1)
	_, err = service.RunEndOfMonth(s.ctx, customer.ID, s.now)
	s.NoError(err)
}

func (s *StatementServiceTestSuite) TestRunEndOfMonth_CustomerNotFound() {
	_, err := s.service(true).RunEndOfMonth(s.ctx, uuid.New(), s.now)

	s.ErrorIs(err, repositories.ErrCustomerNotFound)
	s.Equal(float64(1), s.runs("failed"))
}

func TestCalculateSummary(t *testing.T) {
	transactions := []models.Transaction{
		{Applied: decimal.NewFromInt(100)},
		{Applied: decimal.RequireFromString("-40.50")},
		{Applied: decimal.RequireFromString("-9.50")},
		{Applied: decimal.Zero},
	}

	summary := calculateSummary(transactions)

	if summary.TransactionCount != 4 || summary.CreditCount != 1 || summary.DebitCount != 2 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if !summary.TotalDebits.Equal(decimal.NewFromInt(50)) {
		t.Errorf("TotalDebits = %s, want 50", summary.TotalDebits)
	}
	if !summary.NetChange.Equal(decimal.NewFromInt(50)) {
		t.Errorf("NetChange = %s, want 50", summary.NetChange)
	}
}
