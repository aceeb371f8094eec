package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for the account ledger
type AccountReaderSvc interface {
	// ListAccounts returns a snapshot of every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountByID returns the account or apperrors.ErrAccountNotFound.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByCurrency returns the liquidity account holding currency, or apperrors.ErrAccountNotFound.
	GetAccountByCurrency(ctx context.Context, currency string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for the account ledger
type AccountWriterSvc interface {
	// CreateAccount registers a new liquidity account. Only one account per currency is allowed.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// SetBalance unconditionally overwrites the balance of an existing account.
	SetBalance(ctx context.Context, accountID string, balance decimal.Decimal) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
