package dto

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest is the body of POST /transfer, a direct call to the transfer rail.
type TransferRequest struct {
	OperationID   string          `json:"operationId"` // Optional, generated when empty
	FromAccountID string          `json:"fromAccountId" binding:"required"`
	ToAccountID   string          `json:"toAccountId" binding:"required,nefield=FromAccountID"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse reports the outcome of one transfer call.
type TransferResponse struct {
	OperationID string `json:"operationId"`
	OK          bool   `json:"ok"`
	Error       string `json:"error,omitempty"`
}

// ToDomain converts the request body into the domain request.
func (r TransferRequest) ToDomain() domain.TransferRequest {
	return domain.TransferRequest{
		OperationID:   r.OperationID,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
	}
}
