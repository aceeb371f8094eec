package dto

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRequest is the body of POST /exchange.
type ExchangeRequest struct {
	BaseCurrency     string          `json:"baseCurrency" binding:"required,currency"`
	CounterCurrency  string          `json:"counterCurrency" binding:"required,currency"`
	BaseAccountID    string          `json:"baseAccountId" binding:"required"`
	CounterAccountID string          `json:"counterAccountId" binding:"required"`
	BaseAmount       decimal.Decimal `json:"baseAmount" binding:"required"`
}

// ToDomain converts the request body into the domain request.
func (r ExchangeRequest) ToDomain() domain.ExchangeRequest {
	return domain.ExchangeRequest{
		BaseCurrency:     r.BaseCurrency,
		CounterCurrency:  r.CounterCurrency,
		BaseAccountID:    r.BaseAccountID,
		CounterAccountID: r.CounterAccountID,
		BaseAmount:       r.BaseAmount,
	}
}

// ListLogParams defines query parameters for reading the exchange log.
type ListLogParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListLogResponse is one page of the exchange log, oldest first.
type ListLogResponse struct {
	Entries   []domain.ExchangeLogEntry `json:"entries"`
	NextToken *string                   `json:"nextToken,omitempty"`
}
