package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_InitializeStaticData(t *testing.T) {
	ctx := context.Background()
	repos := newMemoryRepos()
	accounts := services.NewAccountService(repos.AccountRepo, repos.Locker)
	rates := services.NewExchangeRateService(repos.ExchangeRateRepo, nil)

	seed := &config.SeedData{
		Accounts: []config.SeedAccount{
			{ID: "1", Currency: "ARS", Balance: decimal.NewFromInt(120000)},
			{ID: "2", Currency: "USD", Balance: decimal.NewFromInt(1000)},
		},
		Rates: []config.SeedRate{
			{Base: "USD", Counter: "ARS", Rate: decimal.NewFromInt(900)},
		},
	}
	svc := services.NewSeedService(seed, accounts, rates)

	require.NoError(t, svc.InitializeStaticData(ctx))

	usd, err := accounts.GetAccountByCurrency(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, usd.Balance.Equal(decimal.NewFromInt(1000)))

	reverse, err := rates.GetRate(ctx, "ARS", "USD")
	require.NoError(t, err)
	assert.Equal(t, "0.00111", reverse.Rate.String())

	// Re-running keeps what is already stored.
	_, err = accounts.SetBalance(ctx, "2", decimal.NewFromInt(5))
	require.NoError(t, err)
	_, err = rates.SetRate(ctx, "USD", "ARS", decimal.NewFromInt(950))
	require.NoError(t, err)

	require.NoError(t, svc.InitializeStaticData(ctx))

	usd, err = accounts.GetAccountByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, usd.Balance.Equal(decimal.NewFromInt(5)))
	forward, err := rates.GetRate(ctx, "USD", "ARS")
	require.NoError(t, err)
	assert.True(t, forward.Rate.Equal(decimal.NewFromInt(950)))
}

func TestSeedService_NilSeed(t *testing.T) {
	repos := newMemoryRepos()
	svc := services.NewSeedService(nil,
		services.NewAccountService(repos.AccountRepo, repos.Locker),
		services.NewExchangeRateService(repos.ExchangeRateRepo, nil))

	assert.NoError(t, svc.InitializeStaticData(context.Background()))
}

func TestSeedService_InvalidSeedFails(t *testing.T) {
	repos := newMemoryRepos()
	svc := services.NewSeedService(
		&config.SeedData{Accounts: []config.SeedAccount{{ID: "1", Currency: "dollars"}}},
		services.NewAccountService(repos.AccountRepo, repos.Locker),
		services.NewExchangeRateService(repos.ExchangeRateRepo, nil))

	assert.Error(t, svc.InitializeStaticData(context.Background()))
}
