package services_test

import (
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/repositories/keyvalue"
	"github.com/SscSPs/currency_exchange_app/internal/repositories/memory"
)

func newMemoryRepos() portsrepo.RepositoryProvider {
	return keyvalue.NewRepositoryProvider(memory.NewStore(), memory.NewLocker())
}
