package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountDirectory is the ordered in-memory collection of accounts. Usernames
// are not guaranteed unique, so every lookup resolves to the first account in
// seed order whose username matches.
type AccountDirectory interface {
	FindByUsername(ctx context.Context, username string) (Account, error)
	All(ctx context.Context) ([]Account, error)
	AppendMovement(ctx context.Context, username string, amount decimal.Decimal) (Account, error)
	// Transfer applies both legs as one atomic mutation: -amount on the
	// sender, then +amount on the recipient, or neither.
	Transfer(ctx context.Context, fromUsername, toUsername string, amount decimal.Decimal) error
	Remove(ctx context.Context, username string) error
}
