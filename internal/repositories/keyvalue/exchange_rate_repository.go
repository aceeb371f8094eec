package keyvalue

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
)

// ExchangeRateRepository stores one entry per direction under "rates:<base>:<counter>".
type ExchangeRateRepository struct {
	store portsrepo.Store
}

func newExchangeRateRepository(store portsrepo.Store) *ExchangeRateRepository {
	return &ExchangeRateRepository{store: store}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

// FindExchangeRate retrieves the directional rate base→counter.
func (r *ExchangeRateRepository) FindExchangeRate(ctx context.Context, baseCurrency, counterCurrency string) (*domain.ExchangeRate, error) {
	key := rateKey(baseCurrency, counterCurrency)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s→%s", apperrors.ErrRateNotFound, baseCurrency, counterCurrency)
		}
		return nil, err
	}
	var m models.ExchangeRate
	if err := decode(key, data, &m); err != nil {
		return nil, err
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

func (r *ExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	entries, err := r.store.ScanPrefix(ctx, ratePrefix)
	if err != nil {
		return nil, err
	}
	rates := make([]domain.ExchangeRate, 0, len(entries))
	for _, e := range entries {
		var m models.ExchangeRate
		if err := decode(e.Key, e.Value, &m); err != nil {
			return nil, err
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	return rates, nil
}

// SaveExchangeRatePair writes both directions with one SetMany call.
func (r *ExchangeRateRepository) SaveExchangeRatePair(ctx context.Context, forward, reverse domain.ExchangeRate) error {
	entries := make([]portsrepo.KeyValue, 0, 2)
	for _, rate := range []domain.ExchangeRate{forward, reverse} {
		data, err := encode(mapping.ToModelExchangeRate(rate))
		if err != nil {
			return err
		}
		entries = append(entries, portsrepo.KeyValue{Key: rateKey(rate.BaseCurrency, rate.CounterCurrency), Value: data})
	}
	return r.store.SetMany(ctx, entries)
}
