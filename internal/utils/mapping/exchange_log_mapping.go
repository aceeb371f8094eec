package mapping

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/models"
)

// ToModelExchangeLogEntry converts a domain log entry to its stored form.
func ToModelExchangeLogEntry(d domain.ExchangeLogEntry) models.ExchangeLogEntry {
	return models.ExchangeLogEntry{
		ID:        d.ID,
		Timestamp: d.Timestamp,
		OK:        d.OK,
		Request: models.ExchangeRequest{
			BaseCurrency:     d.Request.BaseCurrency,
			CounterCurrency:  d.Request.CounterCurrency,
			BaseAccountID:    d.Request.BaseAccountID,
			CounterAccountID: d.Request.CounterAccountID,
			BaseAmount:       d.Request.BaseAmount,
		},
		ExchangeRate:  d.ExchangeRate,
		CounterAmount: d.CounterAmount,
		Obs:           d.Obs,
		Reason:        string(d.Reason),
		State:         string(d.State),
	}
}

// ToDomainExchangeLogEntry converts a stored log entry back to the domain type.
func ToDomainExchangeLogEntry(m models.ExchangeLogEntry) domain.ExchangeLogEntry {
	return domain.ExchangeLogEntry{
		ID:        m.ID,
		Timestamp: m.Timestamp,
		OK:        m.OK,
		Request: domain.ExchangeRequest{
			BaseCurrency:     m.Request.BaseCurrency,
			CounterCurrency:  m.Request.CounterCurrency,
			BaseAccountID:    m.Request.BaseAccountID,
			CounterAccountID: m.Request.CounterAccountID,
			BaseAmount:       m.Request.BaseAmount,
		},
		ExchangeRate:  m.ExchangeRate,
		CounterAmount: m.CounterAmount,
		Obs:           m.Obs,
		Reason:        domain.FailureReason(m.Reason),
		State:         domain.ExchangeState(m.State),
	}
}
