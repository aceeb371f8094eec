package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest defines the structure for setting a directional rate.
// The reciprocal is derived and stored alongside.
type SetExchangeRateRequest struct {
	BaseCurrency    string          `json:"baseCurrency" binding:"required,currency"`
	CounterCurrency string          `json:"counterCurrency" binding:"required,currency,nefield=BaseCurrency"`
	Rate            decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	BaseCurrency    string          `json:"baseCurrency"`
	CounterCurrency string          `json:"counterCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// SetExchangeRateResponse returns both directions written by one SetRate call.
type SetExchangeRateResponse struct {
	Rate       ExchangeRateResponse `json:"rate"`
	Reciprocal ExchangeRateResponse `json:"reciprocal"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		BaseCurrency:    rate.BaseCurrency,
		CounterCurrency: rate.CounterCurrency,
		Rate:            rate.Rate,
		UpdatedAt:       rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
