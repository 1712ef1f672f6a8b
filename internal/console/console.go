package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	customerMenuMin = 1
	customerMenuMax = 8

	auditLogEntries = 20
)

// Options are the console settings taken from configuration
type Options struct {
	BankName       string
	MinTransaction decimal.Decimal
	MaxTransaction decimal.Decimal
}

// Console drives the teller menus over a Prompter
type Console struct {
	prompter   *Prompter
	bank       services.BankServiceInterface
	statements services.StatementServiceInterface
	audit      services.AuditServiceInterface
	teller     services.TellerAuthInterface
	options    Options
	clock      models.Clock
}

// New creates the console
func New(
	prompter *Prompter,
	bank services.BankServiceInterface,
	statements services.StatementServiceInterface,
	audit services.AuditServiceInterface,
	teller services.TellerAuthInterface,
	options Options,
	clock models.Clock,
) *Console {
	if clock == nil {
		clock = time.Now
	}
	return &Console{
		prompter:   prompter,
		bank:       bank,
		statements: statements,
		audit:      audit,
		teller:     teller,
		options:    options,
		clock:      clock,
	}
}

// Run shows the main menu until the teller exits or input ends
func (c *Console) Run(ctx context.Context) error {
	err := c.mainMenu(ctx)
	if err == nil || errors.Is(err, ErrInputClosed) {
		c.prompter.Printf("\nGoodbye banker. Application closed at %s. Have a good day!\n\n", c.now())
		return nil
	}
	return err
}

func (c *Console) now() string {
	return c.clock().Format(models.DateTimeLayout)
}

// report prints a failed operation; the menu it came from carries on
func (c *Console) report(ctx context.Context, err error) {
	c.prompter.Println(apperrors.FromError(err, services.SessionID(ctx)).Line())
}

func (c *Console) mainMenu(ctx context.Context) error {
	p := c.prompter
	for {
		p.Println("\n$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$")
		p.Println("          MAIN MENU")
		p.Println("          " + c.options.BankName)
		p.Println("$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$")
		p.Println("\nPick an option: ")
		p.Rule(28)
		p.Println(" 1 : Customer Management")
		p.Println(" 2 : Customer Transactions")
		p.Rule(28)
		p.Printf(" %d : Exit Banking Application\n", MenuExit)

		option, err := p.Select(1, 2)
		if errors.Is(err, ErrSelectionOutOfRange) {
			p.SelectionError(1, 2)
			continue
		}
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = c.managementMenu(ctx)
		case 2:
			err = c.customerSelectionMenu(ctx, c.customerMenu)
		case MenuExit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) managementMenu(ctx context.Context) error {
	p := c.prompter

	if c.teller.Enabled() {
		pin, err := p.PromptText("Enter teller PIN:")
		if err != nil {
			return err
		}
		if err := c.teller.Authenticate(ctx, pin); err != nil {
			c.report(ctx, err)
			return nil
		}
	}

	for {
		p.Println("\n============================")
		p.Println("    Customer Management")
		p.Println("============================")
		p.Println(" 1 : Enter New Customer")
		p.Println(" 2 : Modify Customer")
		p.Println(" 3 : View Audit Log")
		p.Rule(25)
		p.Printf(" %d : Return to Main Menu\n", MenuExit)

		option, err := p.Select(1, 3)
		if errors.Is(err, ErrSelectionOutOfRange) {
			p.SelectionError(1, 3)
			continue
		}
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = c.enterCustomer(ctx)
		case 2:
			err = c.customerSelectionMenu(ctx, c.updateCustomer)
		case 3:
			c.viewAuditLog(ctx)
		case MenuExit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) enterCustomer(ctx context.Context) error {
	first, err := c.prompter.PromptName("Enter first name:", "first name")
	if err != nil {
		return err
	}
	last, err := c.prompter.PromptName("Enter last name:", "last name")
	if err != nil {
		return err
	}

	customer, err := c.bank.CreateCustomer(ctx, first, last)
	if err != nil {
		c.report(ctx, err)
		return nil
	}
	c.prompter.Printf("\nSuccess, %s created.\n", customer.FullName())
	return nil
}

// updateCustomer renames the selected customer and returns to the management menu
func (c *Console) updateCustomer(ctx context.Context, customer *models.Customer) error {
	oldName := customer.FullName()

	first, err := c.prompter.PromptName("Enter new first name:", "first name")
	if err != nil {
		return err
	}
	last, err := c.prompter.PromptName("Enter new last name:", "last name")
	if err != nil {
		return err
	}

	if err := c.bank.RenameCustomer(ctx, customer.ID, first, last); err != nil {
		c.report(ctx, err)
		return errDone
	}
	c.prompter.Printf("\nSuccess, %s changed to %s\n", oldName, customer.FullName())
	return errDone
}

func (c *Console) viewAuditLog(ctx context.Context) {
	logs, err := c.audit.GetRecentActivity(auditLogEntries)
	if err != nil {
		c.report(ctx, err)
		return
	}

	p := c.prompter
	p.Printf("\nLast %d audit entries (newest first):\n", auditLogEntries)
	p.Rule(75)
	if len(logs) == 0 {
		p.Println("No activity recorded yet.")
		return
	}
	for _, log := range logs {
		p.Println(log.String())
	}
}

// errDone ends a customer selection without leaving the enclosing menu
var errDone = errors.New("selection done")

func (c *Console) customerSelectionMenu(ctx context.Context, action func(context.Context, *models.Customer) error) error {
	p := c.prompter
	for {
		customers := c.bank.ListCustomers()
		if len(customers) == 0 {
			p.Println(apperrors.NewErrorResponse(apperrors.CustomerNoResults, "").Line())
			return nil
		}

		p.Println("\n==============================")
		p.Println("   Customer Login")
		p.Println("   Select Customer:")
		p.Println("==============================")
		for i, customer := range customers {
			p.Printf(" %d : %s\n", i+1, customer.FullName())
		}
		p.Rule(24)
		p.Printf(" %d : Return to Main Menu\n", MenuExit)

		option, err := p.Select(1, len(customers))
		if errors.Is(err, ErrSelectionOutOfRange) {
			p.SelectionError(1, len(customers))
			continue
		}
		if err != nil {
			return err
		}
		if option == MenuExit {
			return nil
		}

		customer, err := c.bank.CustomerAt(option - 1)
		if err != nil {
			c.report(ctx, err)
			continue
		}

		err = action(ctx, customer)
		if errors.Is(err, errDone) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) customerMenu(ctx context.Context, customer *models.Customer) error {
	p := c.prompter
	c.showBalances(ctx, customer)

	for {
		p.Println("\n$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$")
		p.Println("       CUSTOMER TRANSACTION MENU")
		p.Println("                " + c.options.BankName)
		p.Printf("        Welcome %s!\n", customer.FullName())
		p.Println("          " + c.now())
		p.Println("$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$$")
		p.Println("\nPick an option: ")
		p.Rule(29)
		p.Println(" 1 : Deposit to Checking")
		p.Println(" 2 : Deposit to Savings")
		p.Println(" 3 : Withdraw from Checking")
		p.Println(" 4 : Withdraw from Savings")
		p.Println(" 5 : Make a Loan Payment")
		p.Println(" 6 : View Loan amortization")
		p.Println(" 7 : Get Account Balances")
		p.Println(" 8 : Get Monthly Statement")
		p.Rule(29)
		p.Printf(" %d : Return to Customer Login\n", MenuExit)

		option, err := p.Select(customerMenuMin, customerMenuMax)
		if errors.Is(err, ErrSelectionOutOfRange) {
			p.SelectionError(customerMenuMin, customerMenuMax)
			continue
		}
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = c.cashTransaction(ctx, customer, "deposit", services.AccountKindChecking, c.bank.Deposit)
		case 2:
			err = c.cashTransaction(ctx, customer, "deposit", services.AccountKindSavings, c.bank.Deposit)
		case 3:
			err = c.cashTransaction(ctx, customer, "withdraw", services.AccountKindChecking, c.bank.Withdraw)
		case 4:
			err = c.cashTransaction(ctx, customer, "withdraw", services.AccountKindSavings, c.bank.Withdraw)
		case 5:
			err = c.loanPayment(ctx, customer)
		case 6:
			c.showAmortization(ctx, customer)
			c.showBalances(ctx, customer)
		case 7:
			c.showBalances(ctx, customer)
		case 8:
			c.showStatement(ctx, customer)
		case MenuExit:
			p.Printf("\nGoodbye %s. Have a good day!\n\n", customer.FirstName)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

type cashOperation func(ctx context.Context, customerID uuid.UUID, kind services.AccountKind, amount decimal.Decimal) (models.Transaction, error)

func (c *Console) cashTransaction(ctx context.Context, customer *models.Customer, verb string, kind services.AccountKind, apply cashOperation) error {
	amount, err := c.prompter.PromptDecimal(
		fmt.Sprintf("Enter the amount you would like to %s: ", verb),
		c.options.MinTransaction, c.options.MaxTransaction)
	if err != nil {
		return err
	}

	if _, err := apply(ctx, customer.ID, kind, amount); err != nil {
		c.report(ctx, err)
	}
	c.showBalances(ctx, customer)
	return nil
}

func (c *Console) loanPayment(ctx context.Context, customer *models.Customer) error {
	loan := customer.Loan()
	c.prompter.Printf("\nYour minimum monthly payment is %s\n", models.FormatMoney(loan.MonthlyPayment()))

	amount, err := c.prompter.PromptDecimal("Enter the amount you would like to pay on the loan: ",
		c.options.MinTransaction, c.options.MaxTransaction)
	if err != nil {
		return err
	}

	if _, err := c.bank.PayLoan(ctx, customer.ID, amount); err != nil {
		c.report(ctx, err)
	}
	c.showBalances(ctx, customer)
	return nil
}

func (c *Console) showBalances(ctx context.Context, customer *models.Customer) {
	balances, err := c.bank.Balances(ctx, customer.ID)
	if err != nil {
		c.report(ctx, err)
		return
	}
	c.prompter.Println(balances)
}

func (c *Console) showAmortization(ctx context.Context, customer *models.Customer) {
	schedule, err := c.bank.Amortization(ctx, customer.ID)
	if err != nil {
		c.report(ctx, err)
		return
	}

	p := c.prompter
	loan := customer.Loan()
	p.Printf("\nLoan amortization: %s at %s for %d months\n",
		models.FormatMoney(loan.OriginalPrincipal()), models.FormatRate(loan.AnnualRate()), loan.TermMonths())
	p.Printf("\n%-6s %14s %14s %14s %16s\n", "Pmt #", "Payment", "Interest", "Principal", "Balance")
	p.Rule(68)
	for row := range schedule {
		p.Printf("%-6d %14s %14s %14s %16s\n", row.Period,
			models.FormatMoney(row.Payment), models.FormatMoney(row.Interest),
			models.FormatMoney(row.Principal), models.FormatMoney(row.Remaining))
	}
}

func (c *Console) showStatement(ctx context.Context, customer *models.Customer) {
	stmt, err := c.statements.RunEndOfMonth(ctx, customer.ID, c.clock())
	if err != nil {
		c.report(ctx, err)
		return
	}

	p := c.prompter
	banner := strings.Repeat("$", 76)
	p.Println("\n" + banner)
	p.Println(center(c.options.BankName, 76))
	p.Println(center("END OF MONTH STATEMENT", 76))
	p.Println(center("for customer "+stmt.CustomerName, 76))
	p.Println(center(stmt.GeneratedAt.Format(models.DateTimeLayout), 76))
	p.Println(banner)

	p.Println("\nMonthly charges and credits:")
	p.Rule(65)
	if len(stmt.Charges) == 0 {
		p.Println("None this month")
	}
	for _, tx := range stmt.Charges {
		p.Println(tx.Row())
	}

	p.Println("\nDate and Time\t\tAccount\t\tAmount\t\tDescription")
	for _, account := range customer.Accounts() {
		p.Rule(75)
		if err := account.DisplayTransactions(p.Writer()); err != nil {
			c.report(ctx, err)
			return
		}
	}

	p.Printf("\nSummary for %s to %s\n",
		stmt.StartDate.Format(models.DateTimeLayout), stmt.EndDate.Format(models.DateTimeLayout))
	p.Rule(75)
	for _, account := range stmt.Accounts {
		p.Printf("%-10s opening %14s  closing %14s  %d transactions\n", account.AccountLabel,
			models.FormatMoney(account.OpeningBalance), models.FormatMoney(account.ClosingBalance),
			account.Summary.TransactionCount)
	}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}
