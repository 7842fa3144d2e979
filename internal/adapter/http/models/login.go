package models

import (
	"errors"
	"strings"
)

type LoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}

	pin := strings.TrimSpace(r.PIN)
	if pin == "" {
		errs = append(errs, "pin is required")
	} else if !digitsOnly(pin) {
		errs = append(errs, "pin must be numeric")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type LoginResponse struct {
	SessionToken string          `json:"sessionToken"`
	Account      AccountSnapshot `json:"account"`
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
