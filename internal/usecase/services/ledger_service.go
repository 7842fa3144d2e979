package services

import (
	"context"
	"errors"
	"strings"

	"github.com/api-sage/bankist-ledger/internal/adapter/http/models"
	"github.com/api-sage/bankist-ledger/internal/commons"
	"github.com/api-sage/bankist-ledger/internal/domain"
	"github.com/api-sage/bankist-ledger/internal/logger"
	"github.com/api-sage/bankist-ledger/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Verify that LedgerService implements the service_interfaces.LedgerService interface
var _ service_interfaces.LedgerService = (*LedgerService)(nil)

var ten = decimal.NewFromInt(10)

type LedgerService struct {
	directory domain.AccountDirectory
	session   *Session
}

func NewLedgerService(directory domain.AccountDirectory, session *Session) *LedgerService {
	return &LedgerService{
		directory: directory,
		session:   session,
	}
}

func (s *LedgerService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("ledger service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service login validation failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error()), err
	}

	username := strings.TrimSpace(req.Username)
	account, err := s.directory.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Info("ledger service login unknown username", logger.Fields{
				"username": username,
			})
			return commons.ErrorResponse[models.LoginResponse]("authentication failed"), domain.ErrAuthenticationFailed
		}
		logger.Error("ledger service login lookup failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	if !pinMatches(account.PINHash, strings.TrimSpace(req.PIN)) {
		logger.Info("ledger service login pin mismatch", logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.LoginResponse]("authentication failed"), domain.ErrAuthenticationFailed
	}

	token := s.session.Start(account.Username)

	response := models.LoginResponse{
		SessionToken: token,
		Account:      buildSnapshot(account, false),
	}

	logger.Info("ledger service login success", logger.Fields{
		"username": account.Username,
	})

	return commons.SuccessResponse("login successful", response), nil
}

func (s *LedgerService) Snapshot(ctx context.Context, sessionToken string, sorted bool) (commons.Response[models.AccountSnapshot], error) {
	account, err := s.currentAccount(ctx, sessionToken)
	if err != nil {
		logger.Error("ledger service snapshot failed", err, nil)
		return commons.ErrorResponse[models.AccountSnapshot]("session expired", err.Error()), err
	}

	return commons.SuccessResponse("account fetched successfully", buildSnapshot(account, sorted)), nil
}

func (s *LedgerService) TransferFunds(ctx context.Context, sessionToken string, req models.TransferRequest) (commons.Response[models.AccountSnapshot], error) {
	logger.Info("ledger service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.AccountSnapshot]("validation failed", err.Error()), err
	}

	sender, err := s.currentAccount(ctx, sessionToken)
	if err != nil {
		return commons.ErrorResponse[models.AccountSnapshot]("session expired", err.Error()), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Info("ledger service transfer invalid amount", logger.Fields{
			"amount": req.Amount,
		})
		return commons.ErrorResponse[models.AccountSnapshot]("invalid amount", err.Error()), err
	}

	toUsername := strings.TrimSpace(req.ToUsername)
	recipient, err := s.directory.FindByUsername(ctx, toUsername)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountSnapshot]("recipient not found"), domain.ErrUnknownRecipient
		}
		logger.Error("ledger service transfer recipient lookup failed", err, nil)
		return commons.ErrorResponse[models.AccountSnapshot]("failed to transfer", "Unable to transfer right now"), err
	}

	if domain.Balance(sender.Movements).LessThan(amount) {
		return commons.ErrorResponse[models.AccountSnapshot]("insufficient funds"), domain.ErrInsufficientFunds
	}
	if sender.Username == recipient.Username {
		return commons.ErrorResponse[models.AccountSnapshot]("self transfer"), domain.ErrSelfTransfer
	}

	if err := s.directory.Transfer(ctx, sender.Username, recipient.Username, amount); err != nil {
		logger.Error("ledger service transfer apply failed", err, logger.Fields{
			"from": sender.Username,
			"to":   recipient.Username,
		})
		return commons.ErrorResponse[models.AccountSnapshot]("failed to transfer", "Unable to transfer right now"), err
	}

	logger.Info("ledger service transfer success", logger.Fields{
		"from":   sender.Username,
		"to":     recipient.Username,
		"amount": amount.String(),
	})

	return s.Snapshot(ctx, sessionToken, false)
}

// RequestLoan grants a loan when any single past movement reaches a tenth of
// the requested amount. The rule is deliberately lenient: one qualifying
// movement, not cumulative deposits.
func (s *LedgerService) RequestLoan(ctx context.Context, sessionToken string, req models.LoanRequest) (commons.Response[models.AccountSnapshot], error) {
	logger.Info("ledger service loan request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, err := s.currentAccount(ctx, sessionToken)
	if err != nil {
		return commons.ErrorResponse[models.AccountSnapshot]("session expired", err.Error()), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Info("ledger service loan invalid amount", logger.Fields{
			"amount": req.Amount,
		})
		return commons.ErrorResponse[models.AccountSnapshot]("invalid amount", err.Error()), err
	}

	threshold := amount.Div(ten)
	eligible := false
	for _, mov := range account.Movements {
		if mov.GreaterThanOrEqual(threshold) {
			eligible = true
			break
		}
	}
	if !eligible {
		logger.Info("ledger service loan ineligible", logger.Fields{
			"username": account.Username,
			"amount":   amount.String(),
		})
		return commons.ErrorResponse[models.AccountSnapshot]("loan ineligible"), domain.ErrLoanIneligible
	}

	updated, err := s.directory.AppendMovement(ctx, account.Username, amount)
	if err != nil {
		logger.Error("ledger service loan apply failed", err, logger.Fields{
			"username": account.Username,
		})
		return commons.ErrorResponse[models.AccountSnapshot]("failed to grant loan", "Unable to grant loan right now"), err
	}

	logger.Info("ledger service loan success", logger.Fields{
		"username": updated.Username,
		"amount":   amount.String(),
	})

	return commons.SuccessResponse("loan granted successfully", buildSnapshot(updated, false)), nil
}

func (s *LedgerService) CloseAccount(ctx context.Context, sessionToken string, req models.CloseAccountRequest) (commons.Response[models.CloseAccountResponse], error) {
	logger.Info("ledger service close account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service close account validation failed", err, nil)
		return commons.ErrorResponse[models.CloseAccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.currentAccount(ctx, sessionToken)
	if err != nil {
		return commons.ErrorResponse[models.CloseAccountResponse]("session expired", err.Error()), err
	}

	username := strings.TrimSpace(req.Username)
	if username != account.Username || !pinMatches(account.PINHash, strings.TrimSpace(req.PIN)) {
		logger.Info("ledger service close account credential mismatch", logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.CloseAccountResponse]("account not found"), domain.ErrAccountNotFound
	}

	// Removal resolves by the confirmed input username, not the session
	// account, even though the two are equal on this path.
	if err := s.directory.Remove(ctx, username); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CloseAccountResponse]("account not found"), domain.ErrAccountNotFound
		}
		logger.Error("ledger service close account remove failed", err, nil)
		return commons.ErrorResponse[models.CloseAccountResponse]("failed to close account", "Unable to close account right now"), err
	}

	s.session.Clear()

	logger.Info("ledger service close account success", logger.Fields{
		"username": username,
	})

	return commons.SuccessResponse("account closed successfully", models.CloseAccountResponse{
		Username: username,
		Closed:   true,
	}), nil
}

func (s *LedgerService) currentAccount(ctx context.Context, sessionToken string) (domain.Account, error) {
	username, err := s.session.Current(sessionToken)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.directory.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Account{}, domain.ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	return account, nil
}

func buildSnapshot(account domain.Account, sorted bool) models.AccountSnapshot {
	working := domain.SortedMovements(account.Movements, sorted)

	// Most-recent-first for display; when sorted, largest-first.
	entries := make([]models.MovementEntry, 0, len(working))
	for i := len(working) - 1; i >= 0; i-- {
		entryType := models.MovementTypeWithdrawal
		if working[i].IsPositive() {
			entryType = models.MovementTypeDeposit
		}
		entries = append(entries, models.MovementEntry{
			Amount: working[i],
			Type:   entryType,
		})
	}

	return models.AccountSnapshot{
		Owner:     account.Owner,
		Username:  account.Username,
		Movements: entries,
		Balance:   domain.Balance(account.Movements),
		Income:    domain.Income(account.Movements),
		Expense:   domain.Expense(account.Movements),
		Interest:  domain.Interest(account.Movements, account.InterestRate),
		Sorted:    sorted,
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}

	return amount, nil
}

func pinMatches(pinHash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(pin)) == nil
}
