package models

import (
	"errors"
	"strings"
)

// Amount is carried as raw text. Non-numeric or empty input must resolve to
// the invalid-amount outcome downstream, never to a transport failure.
type TransferRequest struct {
	ToUsername string `json:"toUsername"`
	Amount     string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	if strings.TrimSpace(r.ToUsername) == "" {
		return errors.New("toUsername is required")
	}
	return nil
}

type LoanRequest struct {
	Amount string `json:"amount"`
}
