package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/bankist-ledger/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type SeedAccount struct {
	Owner        string
	Movements    []int64
	InterestRate decimal.Decimal
	PIN          string
}

// DefaultSeed is the fixed set of demo accounts loaded at process start.
// There is no sign-up flow; the directory only ever shrinks, via closure.
func DefaultSeed() []SeedAccount {
	return []SeedAccount{
		{
			Owner:        "Jonas Schmedtmann",
			Movements:    []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
			InterestRate: decimal.NewFromFloat(1.2),
			PIN:          "1111",
		},
		{
			Owner:        "Jessica Davis",
			Movements:    []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
			InterestRate: decimal.NewFromFloat(1.5),
			PIN:          "2222",
		},
		{
			Owner:        "Steven Thomas Williams",
			Movements:    []int64{200, -200, 340, -300, -20, 50, 400, -460},
			InterestRate: decimal.NewFromFloat(0.7),
			PIN:          "3333",
		},
		{
			Owner:        "Sarah Smith",
			Movements:    []int64{430, 1000, 700, 50, 90},
			InterestRate: decimal.NewFromInt(1),
			PIN:          "4444",
		},
	}
}

// AccountDirectory keeps every account behind one mutex so that cross-account
// mutations (transfers) apply both legs in a single critical section.
type AccountDirectory struct {
	mu       sync.Mutex
	accounts []domain.Account
}

var _ domain.AccountDirectory = (*AccountDirectory)(nil)

// NewAccountDirectory seeds the directory, hashing every PIN and deriving
// every username exactly once, before any login can be attempted.
func NewAccountDirectory(seed []SeedAccount) (*AccountDirectory, error) {
	accounts := make([]domain.Account, 0, len(seed))
	for _, s := range seed {
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash pin for %q: %w", s.Owner, err)
		}

		movements := make([]decimal.Decimal, 0, len(s.Movements))
		for _, mov := range s.Movements {
			movements = append(movements, decimal.NewFromInt(mov))
		}

		accounts = append(accounts, domain.Account{
			Owner:        s.Owner,
			Username:     domain.DeriveUsername(s.Owner),
			PINHash:      string(hashed),
			Movements:    movements,
			InterestRate: s.InterestRate,
		})
	}

	return &AccountDirectory{accounts: accounts}, nil
}

func (d *AccountDirectory) FindByUsername(_ context.Context, username string) (domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(username)
	if idx < 0 {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	return copyAccount(d.accounts[idx]), nil
}

func (d *AccountDirectory) All(_ context.Context) ([]domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.Account, 0, len(d.accounts))
	for _, account := range d.accounts {
		out = append(out, copyAccount(account))
	}
	return out, nil
}

func (d *AccountDirectory) AppendMovement(_ context.Context, username string, amount decimal.Decimal) (domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(username)
	if idx < 0 {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	d.accounts[idx].Movements = append(d.accounts[idx].Movements, amount)
	return copyAccount(d.accounts[idx]), nil
}

func (d *AccountDirectory) Transfer(_ context.Context, fromUsername, toUsername string, amount decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	fromIdx := d.indexOf(fromUsername)
	toIdx := d.indexOf(toUsername)
	if fromIdx < 0 || toIdx < 0 {
		return domain.ErrRecordNotFound
	}

	if domain.Balance(d.accounts[fromIdx].Movements).LessThan(amount) {
		return domain.ErrInsufficientFunds
	}

	// Debit leg first, then credit leg, inside the same critical section.
	d.accounts[fromIdx].Movements = append(d.accounts[fromIdx].Movements, amount.Neg())
	d.accounts[toIdx].Movements = append(d.accounts[toIdx].Movements, amount)
	return nil
}

func (d *AccountDirectory) Remove(_ context.Context, username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(username)
	if idx < 0 {
		return domain.ErrRecordNotFound
	}
	d.accounts = append(d.accounts[:idx], d.accounts[idx+1:]...)
	return nil
}

// indexOf resolves the first account in seed order whose username matches.
// Callers must hold d.mu.
func (d *AccountDirectory) indexOf(username string) int {
	for i, account := range d.accounts {
		if account.Username == username {
			return i
		}
	}
	return -1
}

func copyAccount(account domain.Account) domain.Account {
	cp := account
	cp.Movements = make([]decimal.Decimal, len(account.Movements))
	copy(cp.Movements, account.Movements)
	return cp
}
