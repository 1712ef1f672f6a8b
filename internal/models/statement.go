package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statement is the end-of-month statement for one customer
type Statement struct {
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Year         int                `json:"year"`
	Month        time.Month         `json:"month"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Charges      []Transaction      `json:"charges"`
	Accounts     []AccountStatement `json:"accounts"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// AccountStatement is one account's activity for the statement period
type AccountStatement struct {
	AccountLabel   string           `json:"account"`
	OpeningBalance decimal.Decimal  `json:"opening_balance"`
	ClosingBalance decimal.Decimal  `json:"closing_balance"`
	Transactions   []Transaction    `json:"transactions"`
	Summary        StatementSummary `json:"summary"`
}

// StatementSummary provides aggregate information for the statement period
type StatementSummary struct {
	TotalCredits     decimal.Decimal `json:"total_credits"`
	TotalDebits      decimal.Decimal `json:"total_debits"`
	NetChange        decimal.Decimal `json:"net_change"`
	TransactionCount int             `json:"transaction_count"`
	CreditCount      int             `json:"credit_count"`
	DebitCount       int             `json:"debit_count"`
}
