package service_interfaces

import (
	"context"

	"github.com/api-sage/bankist-ledger/internal/adapter/http/models"
	"github.com/api-sage/bankist-ledger/internal/commons"
)

type LedgerService interface {
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	Snapshot(ctx context.Context, sessionToken string, sorted bool) (commons.Response[models.AccountSnapshot], error)
	TransferFunds(ctx context.Context, sessionToken string, req models.TransferRequest) (commons.Response[models.AccountSnapshot], error)
	RequestLoan(ctx context.Context, sessionToken string, req models.LoanRequest) (commons.Response[models.AccountSnapshot], error)
	CloseAccount(ctx context.Context, sessionToken string, req models.CloseAccountRequest) (commons.Response[models.CloseAccountResponse], error)
}
