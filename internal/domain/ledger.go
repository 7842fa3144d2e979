package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Balance is the sum of every movement. It is always derived from the
// movement history and never stored on the account.
func Balance(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range movements {
		total = total.Add(mov)
	}
	return total
}

// Income is the sum of the strictly positive movements.
func Income(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range movements {
		if mov.IsPositive() {
			total = total.Add(mov)
		}
	}
	return total
}

// Expense is the absolute value of the sum of the strictly negative movements.
func Expense(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range movements {
		if mov.IsNegative() {
			total = total.Add(mov)
		}
	}
	return total.Abs()
}

// Interest computes rate percent over each deposit individually, discards any
// single interest amount below 1, and sums the remainder. The eligibility
// floor applies per deposit before summation, never to the aggregate.
func Interest(movements []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	total := decimal.Zero
	for _, mov := range movements {
		if !mov.IsPositive() {
			continue
		}
		earned := mov.Mul(rate).Div(hundred)
		if earned.LessThan(one) {
			continue
		}
		total = total.Add(earned)
	}
	return total
}

// SortedMovements returns a numerically ascending copy when ascending is set,
// or the original insertion-order sequence when it is not. The source slice is
// never mutated.
func SortedMovements(movements []decimal.Decimal, ascending bool) []decimal.Decimal {
	if !ascending {
		return movements
	}

	out := make([]decimal.Decimal, len(movements))
	copy(out, movements)
	sort.Slice(out, func(i, j int) bool {
		return out[i].LessThan(out[j])
	})
	return out
}
