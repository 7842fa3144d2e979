package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Account struct {
	Owner        string
	Username     string
	PINHash      string
	Movements    []decimal.Decimal
	InterestRate decimal.Decimal
}

// DeriveUsername builds the login username from an owner's display name:
// the lower-cased first letter of each word, concatenated in word order.
// Uniqueness across accounts is not guaranteed; lookups are first-match.
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}
