package mapping

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		BaseCurrency:    d.BaseCurrency,
		CounterCurrency: d.CounterCurrency,
		Rate:            d.Rate,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		BaseCurrency:    m.BaseCurrency,
		CounterCurrency: m.CounterCurrency,
		Rate:            m.Rate,
		UpdatedAt:       m.UpdatedAt,
	}
}
