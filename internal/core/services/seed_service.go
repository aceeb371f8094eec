package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
)

// seedService applies the startup seed through the ledger and rate table, so seeded records obey the
// same rules as API writes. Records that already exist are kept.
type seedService struct {
	BaseService
	seed     *config.SeedData
	accounts portssvc.AccountSvcFacade
	rates    portssvc.ExchangeRateSvcFacade
}

// NewSeedService creates the StaticDataService for seed.
func NewSeedService(seed *config.SeedData, accounts portssvc.AccountSvcFacade, rates portssvc.ExchangeRateSvcFacade) portssvc.StaticDataService {
	return &seedService{seed: seed, accounts: accounts, rates: rates}
}

func (s *seedService) InitializeStaticData(ctx context.Context) error {
	if s.seed == nil {
		return nil
	}

	created := 0
	for _, a := range s.seed.Accounts {
		_, err := s.accounts.CreateAccount(ctx, dto.CreateAccountRequest{AccountID: a.ID, CurrencyCode: a.Currency, Balance: a.Balance})
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Seed account already present", slog.String("account_id", a.ID))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed account %s: %w", a.ID, err)
		}
		created++
	}

	set := 0
	for _, r := range s.seed.Rates {
		_, err := s.rates.GetRate(ctx, r.Base, r.Counter)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check seed rate %s/%s: %w", r.Base, r.Counter, err)
		}
		if _, err := s.rates.SetRate(ctx, r.Base, r.Counter, r.Rate); err != nil {
			return fmt.Errorf("failed to seed rate %s/%s: %w", r.Base, r.Counter, err)
		}
		set++
	}

	s.LogInfo(ctx, "Static data initialized", slog.Int("accounts_created", created), slog.Int("rates_set", set))
	return nil
}
