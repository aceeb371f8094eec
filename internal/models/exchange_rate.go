package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the multiplier for one direction of a currency pair (key "rates:<base>:<counter>").
type ExchangeRate struct {
	BaseCurrency    string          `json:"baseCurrency"`
	CounterCurrency string          `json:"counterCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
