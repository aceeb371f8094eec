package domain

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExchangeRequest is what a client asks for: sell BaseAmount of BaseCurrency from BaseAccountID
// and receive CounterCurrency on CounterAccountID.
type ExchangeRequest struct {
	BaseCurrency     string          `json:"baseCurrency"`
	CounterCurrency  string          `json:"counterCurrency"`
	BaseAccountID    string          `json:"baseAccountId"`
	CounterAccountID string          `json:"counterAccountId"`
	BaseAmount       decimal.Decimal `json:"baseAmount"`
}

// ExchangeState tracks how far one exchange attempt progressed.
type ExchangeState string

const (
	StateStart            ExchangeState = "START"
	StateRateResolved     ExchangeState = "RATE_RESOLVED"
	StateAccountsResolved ExchangeState = "ACCOUNTS_RESOLVED"
	StateFundsChecked     ExchangeState = "FUNDS_CHECKED"
	StateBaseWithdrawn    ExchangeState = "BASE_WITHDRAWN"
	StateCounterPaid      ExchangeState = "COUNTER_PAID"
	StateCompensated      ExchangeState = "COMPENSATED"
	StateFailed           ExchangeState = "FAILED"
)

// FailureReason is the machine-readable counterpart of ExchangeResult.Obs.
type FailureReason string

const (
	ReasonInvalidRequest     FailureReason = "INVALID_REQUEST"
	ReasonRateNotFound       FailureReason = "RATE_NOT_FOUND"
	ReasonAccountNotFound    FailureReason = "ACCOUNT_NOT_FOUND"
	ReasonInsufficientFunds  FailureReason = "INSUFFICIENT_FUNDS"
	ReasonWithdrawFailed     FailureReason = "WITHDRAW_FAILED"
	ReasonPayoutFailed       FailureReason = "PAYOUT_FAILED"
	ReasonCompensationFailed FailureReason = "COMPENSATION_FAILED"
	ReasonStorageUnavailable FailureReason = "STORAGE_UNAVAILABLE"
	ReasonCanceled           FailureReason = "CANCELED"
)

// Observations written to the log for business failures.
const (
	ObsInsufficientFunds  = "insufficient funds on counter currency account"
	ObsWithdrawFailed     = "could not withdraw from client's account"
	ObsPayoutFailed       = "could not transfer to client's account"
	ObsCompensationFailed = "could not transfer to client's account; refund to client's base account failed"
	ObsStorageUnavailable = "storage unavailable"
	ObsCanceled           = "exchange canceled before any funds moved"
)

// ExchangeResult is returned for every exchange attempt and is the immutable log entry for it.
type ExchangeResult struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"ts"`
	OK            bool            `json:"ok"`
	Request       ExchangeRequest `json:"request"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	CounterAmount decimal.Decimal `json:"counterAmount"`
	Obs           *string         `json:"obs"`
	Reason        FailureReason   `json:"reason,omitempty"`
	State         ExchangeState   `json:"state"`
}

// ExchangeLogEntry is an ExchangeResult once appended to the log.
type ExchangeLogEntry = ExchangeResult

// NewExchangeResult starts a result in StateStart with ok=false.
func NewExchangeResult(id string, ts time.Time, req ExchangeRequest) *ExchangeResult {
	return &ExchangeResult{
		ID:            id,
		Timestamp:     ts,
		Request:       req,
		ExchangeRate:  decimal.Zero,
		CounterAmount: decimal.Zero,
		State:         StateStart,
	}
}

// Advance moves the result to the next non-terminal state.
func (r *ExchangeResult) Advance(state ExchangeState) {
	r.State = state
}

// Fail marks the attempt as failed. A failure after a successful refund ends in StateCompensated.
func (r *ExchangeResult) Fail(reason FailureReason, obs string) {
	r.OK = false
	r.Reason = reason
	r.Obs = &obs
	if reason == ReasonPayoutFailed {
		r.State = StateCompensated
		return
	}
	r.State = StateFailed
}

// Succeed marks the attempt as completed.
func (r *ExchangeResult) Succeed() {
	r.OK = true
	r.Reason = ""
	r.Obs = nil
	r.State = StateCounterPaid
}

// Err maps the failure reason onto the apperrors taxonomy; nil for successful results.
func (r *ExchangeResult) Err() error {
	if r.OK {
		return nil
	}
	switch r.Reason {
	case ReasonInvalidRequest:
		return apperrors.ErrValidation
	case ReasonRateNotFound:
		return apperrors.ErrRateNotFound
	case ReasonAccountNotFound:
		return apperrors.ErrAccountNotFound
	case ReasonInsufficientFunds:
		return apperrors.ErrInsufficientFunds
	case ReasonWithdrawFailed, ReasonPayoutFailed:
		return apperrors.ErrTransferFailed
	case ReasonCompensationFailed:
		return apperrors.ErrCompensationFailed
	case ReasonStorageUnavailable:
		return apperrors.ErrStorage
	case ReasonCanceled:
		return context.Canceled
	}
	return nil
}
