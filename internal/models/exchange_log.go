package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRequest is the request snapshot embedded in a log entry.
type ExchangeRequest struct {
	BaseCurrency     string          `json:"baseCurrency"`
	CounterCurrency  string          `json:"counterCurrency"`
	BaseAccountID    string          `json:"baseAccountId"`
	CounterAccountID string          `json:"counterAccountId"`
	BaseAmount       decimal.Decimal `json:"baseAmount"`
}

// ExchangeLogEntry is one record of the append-only exchange log.
type ExchangeLogEntry struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"ts"`
	OK            bool            `json:"ok"`
	Request       ExchangeRequest `json:"request"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	CounterAmount decimal.Decimal `json:"counterAmount"`
	Obs           *string         `json:"obs"`
	Reason        string          `json:"reason,omitempty"`
	State         string          `json:"state"`
}
