package domain

import "github.com/shopspring/decimal"

// TransferRequest describes one funds movement handed to the transfer rail.
// OperationID makes retries safe: the same id is never executed twice.
type TransferRequest struct {
	OperationID   string          `json:"operationId"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
}
