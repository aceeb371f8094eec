package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the stored record of a liquidity account (key "accounts:<id>").
type Account struct {
	AccountID     string          `json:"id"`
	CurrencyCode  string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
