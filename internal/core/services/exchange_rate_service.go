package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ExchangeRateService is the rate table.
type ExchangeRateService struct {
	BaseService
	rateRepo   portsrepo.ExchangeRateRepositoryFacade
	currencies domain.CurrencySet
	now        func() time.Time
}

// NewExchangeRateService creates a new ExchangeRateService. An empty currency set accepts any
// well-formed code.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencies domain.CurrencySet) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:   rateRepo,
		currencies: currencies,
		now:        time.Now,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// SetRate stores base→counter and counter→base = round(1/rate, 5) in one atomic write.
func (s *ExchangeRateService) SetRate(ctx context.Context, baseCurrency, counterCurrency string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	if err := s.currencies.Validate(baseCurrency); err != nil {
		return nil, err
	}
	if err := s.currencies.Validate(counterCurrency); err != nil {
		return nil, err
	}
	if baseCurrency == counterCurrency {
		return nil, apperrors.NewValidationError("base and counter currency must differ")
	}
	if !rate.IsPositive() {
		return nil, apperrors.NewValidationError("exchange rate must be positive")
	}

	forward := domain.ExchangeRate{
		BaseCurrency:    baseCurrency,
		CounterCurrency: counterCurrency,
		Rate:            rate,
		UpdatedAt:       s.now().UTC(),
	}
	reverse := forward.Reciprocal()

	if err := s.rateRepo.SaveExchangeRatePair(ctx, forward, reverse); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate pair",
			slog.String("base", baseCurrency), slog.String("counter", counterCurrency))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate set",
		slog.String("base", baseCurrency),
		slog.String("counter", counterCurrency),
		slog.String("rate", rate.String()),
		slog.String("reciprocal", reverse.Rate.String()))
	return &forward, nil
}

// GetRate returns the stored directional rate. There is no fallback through a third currency.
func (s *ExchangeRateService) GetRate(ctx context.Context, baseCurrency, counterCurrency string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRate(ctx, baseCurrency, counterCurrency)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get exchange rate",
				slog.String("base", baseCurrency), slog.String("counter", counterCurrency))
		}
		return nil, err
	}
	return rate, nil
}

func (s *ExchangeRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, err
	}
	return rates, nil
}
