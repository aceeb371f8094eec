package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the directional rate base→counter, or apperrors.ErrNotFound.
	FindExchangeRate(ctx context.Context, baseCurrency, counterCurrency string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every stored directional rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRatePair persists a rate and its reciprocal in one atomic write.
	SaveExchangeRatePair(ctx context.Context, forward, reverse domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
