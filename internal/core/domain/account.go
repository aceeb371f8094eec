package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is an internal liquidity account holding funds in exactly one currency.
// Balance is never negative after a committed operation.
type Account struct {
	AccountID     string          `json:"id"`
	CurrencyCode  string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// CanCover reports whether the balance is at least amount.
func (a Account) CanCover(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
