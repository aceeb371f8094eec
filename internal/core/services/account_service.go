package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
)

// accountService is the account ledger. Balance writes go through the same per-account
// locks as exchange commits.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	locker      portsrepo.Locker
	currencies  domain.CurrencySet
	now         func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountCurrencies restricts CreateAccount to the given currencies.
func WithAccountCurrencies(set domain.CurrencySet) AccountServiceOption {
	return func(s *accountService) {
		s.currencies = set
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, locker portsrepo.Locker, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		locker:      locker,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Not found is an expected outcome, don't log it as an error
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByCurrency returns the liquidity account for currency. Only one account per currency is
// expected; if the store holds more, the lowest id wins and a warning is logged.
func (s *accountService) GetAccountByCurrency(ctx context.Context, currency string) (*domain.Account, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var found *domain.Account
	matches := 0
	for i := range accounts {
		if accounts[i].CurrencyCode != currency {
			continue
		}
		matches++
		if found == nil || accounts[i].AccountID < found.AccountID {
			found = &accounts[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no liquidity account for %s", apperrors.ErrAccountNotFound, currency)
	}
	if matches > 1 {
		s.LogWarn(ctx, "Multiple liquidity accounts share a currency, using the lowest id",
			slog.String("currency", currency),
			slog.Int("matches", matches),
			slog.String("account_id", found.AccountID))
	}
	return found, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.AccountID == "" {
		return nil, apperrors.NewValidationError("account id is required")
	}
	if err := s.currencies.Validate(req.CurrencyCode); err != nil {
		return nil, err
	}
	if req.Balance.IsNegative() {
		return nil, apperrors.NewValidationError("balance must not be negative")
	}

	unlock, err := s.locker.Lock(ctx, accountLockKey(req.AccountID), currencyLockKey(req.CurrencyCode))
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err == nil {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, req.AccountID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	existing, err := s.GetAccountByCurrency(ctx, req.CurrencyCode)
	if err == nil {
		return nil, fmt.Errorf("%w: account %s already holds %s liquidity", apperrors.ErrDuplicate, existing.AccountID, req.CurrencyCode)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	account := domain.Account{
		AccountID:     req.AccountID,
		CurrencyCode:  req.CurrencyCode,
		Balance:       req.Balance,
		LastUpdatedAt: s.now().UTC(),
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("currency", account.CurrencyCode))
	return &account, nil
}

// SetBalance overwrites a balance. The sign is not checked here; callers validate it.
func (s *accountService) SetBalance(ctx context.Context, accountID string, balance decimal.Decimal) (*domain.Account, error) {
	unlock, err := s.locker.Lock(ctx, accountLockKey(accountID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.accountRepo.UpdateAccountBalances(ctx, map[string]decimal.Decimal{accountID: balance}); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to set balance", slog.String("account_id", accountID))
		}
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Balance set", slog.String("account_id", accountID), slog.String("balance", balance.String()))
	return account, nil
}

// accountLockKey is the lock guarding every balance write of one account.
func accountLockKey(accountID string) string {
	return "account:" + accountID
}

// currencyLockKey serializes account creation per currency.
func currencyLockKey(currency string) string {
	return "currency:" + currency
}
