package models

import "github.com/shopspring/decimal"

const (
	MovementTypeDeposit    = "deposit"
	MovementTypeWithdrawal = "withdrawal"
)

type MovementEntry struct {
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

// AccountSnapshot is everything a view needs to render one account. Movements
// are listed most-recent-first; the summary figures are always derived from
// the full movement history, regardless of the display ordering.
type AccountSnapshot struct {
	Owner     string          `json:"owner"`
	Username  string          `json:"username"`
	Movements []MovementEntry `json:"movements"`
	Balance   decimal.Decimal `json:"balance"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Interest  decimal.Decimal `json:"interest"`
	Sorted    bool            `json:"sorted"`
}
