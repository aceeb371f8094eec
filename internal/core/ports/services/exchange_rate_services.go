package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRate retrieves the directional rate base→counter. There is no triangulation through a third currency.
	GetRate(ctx context.Context, baseCurrency, counterCurrency string) (*domain.ExchangeRate, error)

	// ListRates retrieves every stored directional rate.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// SetRate stores base→counter and its rounded reciprocal counter→base.
	SetRate(ctx context.Context, baseCurrency, counterCurrency string, rate decimal.Decimal) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
