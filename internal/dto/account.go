package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to register a liquidity account.
type CreateAccountRequest struct {
	AccountID    string          `json:"id" binding:"required"`
	CurrencyCode string          `json:"currency" binding:"required,currency"`
	Balance      decimal.Decimal `json:"balance"` // Optional, defaults to zero
}

// SetBalanceRequest overwrites the balance of an account.
type SetBalanceRequest struct {
	Balance decimal.Decimal `json:"balance" binding:"required"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string          `json:"id"`
	CurrencyCode  string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		CurrencyCode:  acc.CurrencyCode,
		Balance:       acc.Balance,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
