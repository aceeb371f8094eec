package keyvalue

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
)

// ExchangeLogRepository is the append-only log on top of the store's log collection.
type ExchangeLogRepository struct {
	store portsrepo.Store
}

func newExchangeLogRepository(store portsrepo.Store) *ExchangeLogRepository {
	return &ExchangeLogRepository{store: store}
}

var _ portsrepo.ExchangeLogRepository = (*ExchangeLogRepository)(nil)

func (r *ExchangeLogRepository) AppendEntry(ctx context.Context, entry domain.ExchangeLogEntry) error {
	data, err := encode(mapping.ToModelExchangeLogEntry(entry))
	if err != nil {
		return err
	}
	return r.store.AppendLog(ctx, data)
}

func (r *ExchangeLogRepository) ListEntries(ctx context.Context, offset, limit int) ([]domain.ExchangeLogEntry, error) {
	raw, err := r.store.ReadLog(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.ExchangeLogEntry, 0, len(raw))
	for i, data := range raw {
		var m models.ExchangeLogEntry
		if err := decode(fmt.Sprintf("log[%d]", offset+i), data, &m); err != nil {
			return nil, err
		}
		entries = append(entries, mapping.ToDomainExchangeLogEntry(m))
	}
	return entries, nil
}
