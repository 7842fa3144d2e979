package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/bankist-ledger/internal/adapter/http/models"
	"github.com/api-sage/bankist-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/bankist-ledger/internal/domain"
	"github.com/api-sage/bankist-ledger/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newService(t *testing.T) (*services.LedgerService, *memory.AccountDirectory) {
	t.Helper()
	directory, err := memory.NewAccountDirectory(memory.DefaultSeed())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	return services.NewLedgerService(directory, services.NewSession()), directory
}

func login(t *testing.T, svc *services.LedgerService, username, pin string) string {
	t.Helper()
	response, err := svc.Login(context.Background(), models.LoginRequest{Username: username, PIN: pin})
	if err != nil {
		t.Fatalf("login %q: %v", username, err)
	}
	return response.Data.SessionToken
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newService(t)

	response, err := svc.Login(context.Background(), models.LoginRequest{Username: "js", PIN: "1111"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !response.Success {
		t.Fatal("expected success response")
	}
	if response.Data.SessionToken == "" {
		t.Fatal("expected a session token")
	}
	if response.Data.Account.Username != "js" {
		t.Fatalf("expected account js, got %q", response.Data.Account.Username)
	}
	if !response.Data.Account.Balance.Equal(decimal.NewFromInt(3840)) {
		t.Fatalf("expected balance 3840, got %s", response.Data.Account.Balance)
	}
}

func TestLoginWrongPIN(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "js", PIN: "9999"})
	if !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "zz", PIN: "1111"})
	if !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestLoginWhileLoggedInSwitchesAccount(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	firstToken := login(t, svc, "js", "1111")
	secondToken := login(t, svc, "jd", "2222")

	response, err := svc.Snapshot(ctx, secondToken, false)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if response.Data.Username != "jd" {
		t.Fatalf("expected session switched to jd, got %q", response.Data.Username)
	}

	if _, err := svc.Snapshot(ctx, firstToken, false); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected stale token rejected, got %v", err)
	}
}

func TestSnapshotWithoutSession(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Snapshot(context.Background(), "", false)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestSnapshotOrdering(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	token := login(t, svc, "js", "1111")

	unsorted, err := svc.Snapshot(ctx, token, false)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	// Insertion order displayed most-recent-first.
	if !unsorted.Data.Movements[0].Amount.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected newest movement first, got %s", unsorted.Data.Movements[0].Amount)
	}
	if unsorted.Data.Movements[0].Type != models.MovementTypeDeposit {
		t.Fatalf("expected deposit tag, got %q", unsorted.Data.Movements[0].Type)
	}
	if unsorted.Data.Movements[2].Type != models.MovementTypeWithdrawal {
		t.Fatalf("expected withdrawal tag for -130, got %q", unsorted.Data.Movements[2].Type)
	}

	sorted, err := svc.Snapshot(ctx, token, true)
	if err != nil {
		t.Fatalf("sorted snapshot: %v", err)
	}
	if !sorted.Data.Sorted {
		t.Fatal("expected sorted flag set")
	}
	if !sorted.Data.Movements[0].Amount.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected largest movement first when sorted, got %s", sorted.Data.Movements[0].Amount)
	}
	last := sorted.Data.Movements[len(sorted.Data.Movements)-1]
	if !last.Amount.Equal(decimal.NewFromInt(-650)) {
		t.Fatalf("expected smallest movement last when sorted, got %s", last.Amount)
	}

	// Sorting must never reorder the stored history.
	again, err := svc.Snapshot(ctx, token, false)
	if err != nil {
		t.Fatalf("snapshot after sort: %v", err)
	}
	if !again.Data.Movements[0].Amount.Equal(decimal.NewFromInt(1300)) {
		t.Fatal("stored movement order changed after sorted view")
	}
}

func TestTransferMovesFundsBothWays(t *testing.T) {
	svc, directory := newService(t)
	ctx := context.Background()
	token := login(t, svc, "js", "1111")

	response, err := svc.TransferFunds(ctx, token, models.TransferRequest{ToUsername: "jd", Amount: "500"})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if !response.Data.Balance.Equal(decimal.NewFromInt(3340)) {
		t.Fatalf("expected sender balance 3340, got %s", response.Data.Balance)
	}

	sender, _ := directory.FindByUsername(ctx, "js")
	recipient, _ := directory.FindByUsername(ctx, "jd")
	if len(sender.Movements)+len(recipient.Movements) != 18 {
		t.Fatalf("expected exactly two new movements, got %d total", len(sender.Movements)+len(recipient.Movements))
	}
	if !domain.Balance(recipient.Movements).Equal(decimal.NewFromInt(12220)) {
		t.Fatalf("expected recipient balance 12220, got %s", domain.Balance(recipient.Movements))
	}
}

func TestTransferRejections(t *testing.T) {
	cases := []struct {
		name       string
		toUsername string
		amount     string
		wantErr    error
	}{
		{"zero amount", "jd", "0", domain.ErrInvalidAmount},
		{"negative amount", "jd", "-100", domain.ErrInvalidAmount},
		{"non-numeric amount", "jd", "abc", domain.ErrInvalidAmount},
		{"empty amount", "jd", "", domain.ErrInvalidAmount},
		{"unknown recipient", "zz", "100", domain.ErrUnknownRecipient},
		{"insufficient funds", "jd", "999999", domain.ErrInsufficientFunds},
		{"self transfer", "js", "100", domain.ErrSelfTransfer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, directory := newService(t)
			ctx := context.Background()
			token := login(t, svc, "js", "1111")

			_, err := svc.TransferFunds(ctx, token, models.TransferRequest{ToUsername: tc.toUsername, Amount: tc.amount})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			sender, _ := directory.FindByUsername(ctx, "js")
			recipient, _ := directory.FindByUsername(ctx, "jd")
			if len(sender.Movements) != 8 || len(recipient.Movements) != 8 {
				t.Fatal("expected no mutation on rejected transfer")
			}
		})
	}
}

func TestRequestLoanEligible(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	token := login(t, svc, "js", "1111")

	// The 3000 deposit covers a tenth of the requested 1000.
	response, err := svc.RequestLoan(ctx, token, models.LoanRequest{Amount: "1000"})
	if err != nil {
		t.Fatalf("request loan: %v", err)
	}

	if !response.Data.Balance.Equal(decimal.NewFromInt(4840)) {
		t.Fatalf("expected balance 4840 after loan, got %s", response.Data.Balance)
	}
	if len(response.Data.Movements) != 9 {
		t.Fatalf("expected 9 movements after loan, got %d", len(response.Data.Movements))
	}
	if !response.Data.Movements[0].Amount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected disbursement as newest movement, got %s", response.Data.Movements[0].Amount)
	}
}

func TestRequestLoanIneligible(t *testing.T) {
	svc, directory := newService(t)
	ctx := context.Background()
	token := login(t, svc, "js", "1111")

	_, err := svc.RequestLoan(ctx, token, models.LoanRequest{Amount: "50000"})
	if !errors.Is(err, domain.ErrLoanIneligible) {
		t.Fatalf("expected ErrLoanIneligible, got %v", err)
	}

	account, _ := directory.FindByUsername(ctx, "js")
	if len(account.Movements) != 8 {
		t.Fatal("expected no disbursement on rejected loan")
	}
}

func TestRequestLoanInvalidAmount(t *testing.T) {
	svc, _ := newService(t)
	token := login(t, svc, "js", "1111")

	for _, amount := range []string{"", "abc", "0", "-50"} {
		_, err := svc.RequestLoan(context.Background(), token, models.LoanRequest{Amount: amount})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount %q: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestCloseAccountWrongPIN(t *testing.T) {
	svc, directory := newService(t)
	ctx := context.Background()
	token := login(t, svc, "js", "1111")

	_, err := svc.CloseAccount(ctx, token, models.CloseAccountRequest{Username: "js", PIN: "9999"})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	if _, err := directory.FindByUsername(ctx, "js"); err != nil {
		t.Fatalf("expected account untouched, got %v", err)
	}
	if _, err := svc.Snapshot(ctx, token, false); err != nil {
		t.Fatalf("expected session still active, got %v", err)
	}
}

func TestCloseAccountWrongUsername(t *testing.T) {
	svc, directory := newService(t)
	ctx := context.Background()
	token := login(t, svc, "js", "1111")

	_, err := svc.CloseAccount(ctx, token, models.CloseAccountRequest{Username: "jd", PIN: "1111"})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	accounts, _ := directory.All(ctx)
	if len(accounts) != 4 {
		t.Fatalf("expected all 4 accounts intact, got %d", len(accounts))
	}
}

func TestCloseAccountRemovesAndEndsSession(t *testing.T) {
	svc, directory := newService(t)
	ctx := context.Background()
	token := login(t, svc, "js", "1111")

	response, err := svc.CloseAccount(ctx, token, models.CloseAccountRequest{Username: "js", PIN: "1111"})
	if err != nil {
		t.Fatalf("close account: %v", err)
	}
	if !response.Data.Closed {
		t.Fatal("expected closed confirmation")
	}

	if _, err := directory.FindByUsername(ctx, "js"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected account removed, got %v", err)
	}
	if _, err := svc.Snapshot(ctx, token, false); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected session cleared, got %v", err)
	}
}

func TestCommandsRequireSession(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.TransferFunds(ctx, "bogus", models.TransferRequest{ToUsername: "jd", Amount: "10"}); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("transfer: expected ErrSessionExpired, got %v", err)
	}
	if _, err := svc.RequestLoan(ctx, "bogus", models.LoanRequest{Amount: "10"}); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("loan: expected ErrSessionExpired, got %v", err)
	}
	if _, err := svc.CloseAccount(ctx, "bogus", models.CloseAccountRequest{Username: "js", PIN: "1111"}); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("close: expected ErrSessionExpired, got %v", err)
	}
}
