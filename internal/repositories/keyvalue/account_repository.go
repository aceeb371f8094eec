package keyvalue

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// AccountRepository stores accounts under "accounts:<id>".
type AccountRepository struct {
	store portsrepo.Store
	now   func() time.Time
}

// newAccountRepository creates a new repository for account data.
func newAccountRepository(store portsrepo.Store) *AccountRepository {
	return &AccountRepository{store: store, now: time.Now}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

// FindAccountByID retrieves an account by its ID.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	key := accountKey(accountID)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
		}
		return nil, err
	}
	var m models.Account
	if err := decode(key, data, &m); err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves every account ordered by ID.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	entries, err := r.store.ScanPrefix(ctx, accountPrefix)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0, len(entries))
	for _, e := range entries {
		var m models.Account
		if err := decode(e.Key, e.Value, &m); err != nil {
			return nil, err
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	return accounts, nil
}

// SaveAccount inserts or replaces an account.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	data, err := encode(mapping.ToModelAccount(account))
	if err != nil {
		return err
	}
	return r.store.Set(ctx, accountKey(account.AccountID), data)
}

// UpdateAccountBalances overwrites the balances of existing accounts in a single store write.
// Callers are expected to hold the account locks.
func (r *AccountRepository) UpdateAccountBalances(ctx context.Context, balances map[string]decimal.Decimal) error {
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	now := r.now().UTC()
	entries := make([]portsrepo.KeyValue, 0, len(ids))
	for _, id := range ids {
		acc, err := r.FindAccountByID(ctx, id)
		if err != nil {
			return err
		}
		acc.Balance = balances[id]
		acc.LastUpdatedAt = now
		data, err := encode(mapping.ToModelAccount(*acc))
		if err != nil {
			return err
		}
		entries = append(entries, portsrepo.KeyValue{Key: accountKey(id), Value: data})
	}
	return r.store.SetMany(ctx, entries)
}
