package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrUnknownRecipient     = errors.New("recipient account not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrSelfTransfer         = errors.New("cannot transfer to own account")
	ErrLoanIneligible       = errors.New("no qualifying deposit for requested loan")
	ErrAccountNotFound      = errors.New("account not found")
	ErrSessionExpired       = errors.New("no active session")
)
