package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// ExchangeLogRepository is the append-only audit trail of exchange attempts.
type ExchangeLogRepository interface {
	// AppendEntry records one exchange attempt. Entries are never updated afterwards.
	AppendEntry(ctx context.Context, entry domain.ExchangeLogEntry) error

	// ListEntries returns up to limit entries in append order, starting at offset.
	ListEntries(ctx context.Context, offset, limit int) ([]domain.ExchangeLogEntry, error)
}
