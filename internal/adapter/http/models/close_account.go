package models

import (
	"errors"
	"strings"
)

type CloseAccountRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

func (r CloseAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if strings.TrimSpace(r.PIN) == "" {
		errs = append(errs, "pin is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type CloseAccountResponse struct {
	Username string `json:"username"`
	Closed   bool   `json:"closed"`
}
