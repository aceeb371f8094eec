package services

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The transferer is passed in so callers can choose the rail; extra options go to the orchestrator.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, transferer portssvc.Transferer, exchangeOpts ...ExchangeOption) (*portssvc.ServiceContainer, error) {
	currencies := domain.NewCurrencySet(cfg.SupportedCurrencies)

	container := &portssvc.ServiceContainer{}
	container.Account = NewAccountService(repos.AccountRepo, repos.Locker, WithAccountCurrencies(currencies))
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, currencies)
	container.Transfer = transferer

	opts := append([]ExchangeOption{WithTransferTimeout(cfg.TransferTimeout)}, exchangeOpts...)
	exchange, err := NewExchangeService(container.ExchangeRate, container.Account, repos, transferer, opts...)
	if err != nil {
		return nil, err
	}
	container.Exchange = exchange

	return container, nil
}

// NewTransferService builds the simulated rail from configuration.
func NewTransferService(cfg *config.Config) *SimulatedTransferService {
	return NewSimulatedTransferService(SimulatedTransferConfig{
		MinLatency:       cfg.TransferMinLatency,
		MaxLatency:       cfg.TransferMaxLatency,
		FailureRate:      cfg.TransferFailureRate,
		OutcomeCapacity:  cfg.TransferOutcomeCapacity,
		OutcomeRetention: cfg.TransferOutcomeRetention,
	})
}
