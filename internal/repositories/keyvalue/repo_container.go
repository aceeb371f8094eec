package keyvalue

import (
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on top of one store handle.
func NewRepositoryProvider(store portsrepo.Store, locker portsrepo.Locker) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newAccountRepository(store),
		ExchangeRateRepo: newExchangeRateRepository(store),
		ExchangeLogRepo:  newExchangeLogRepository(store),
		Locker:           locker,
	}
}
