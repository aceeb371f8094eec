package events

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeEvent is the message published for every logged exchange attempt.
type ExchangeEvent struct {
	ExchangeID       string          `json:"exchangeId"`
	Timestamp        time.Time       `json:"ts"`
	OK               bool            `json:"ok"`
	State            string          `json:"state"`
	Reason           string          `json:"reason,omitempty"`
	BaseCurrency     string          `json:"baseCurrency"`
	CounterCurrency  string          `json:"counterCurrency"`
	BaseAccountID    string          `json:"baseAccountId"`
	CounterAccountID string          `json:"counterAccountId"`
	BaseAmount       decimal.Decimal `json:"baseAmount"`
	CounterAmount    decimal.Decimal `json:"counterAmount"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
}

// NewExchangeEvent flattens a result into its event form.
func NewExchangeEvent(r domain.ExchangeResult) ExchangeEvent {
	return ExchangeEvent{
		ExchangeID:       r.ID,
		Timestamp:        r.Timestamp,
		OK:               r.OK,
		State:            string(r.State),
		Reason:           string(r.Reason),
		BaseCurrency:     r.Request.BaseCurrency,
		CounterCurrency:  r.Request.CounterCurrency,
		BaseAccountID:    r.Request.BaseAccountID,
		CounterAccountID: r.Request.CounterAccountID,
		BaseAmount:       r.Request.BaseAmount,
		CounterAmount:    r.CounterAmount,
		ExchangeRate:     r.ExchangeRate,
	}
}
