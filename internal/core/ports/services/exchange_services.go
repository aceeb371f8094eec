package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

// Transferer moves funds between two account identifiers on an external rail.
// An error means no funds moved.
type Transferer interface {
	Transfer(ctx context.Context, req domain.TransferRequest) error
}

// ExchangeEventPublisher ships logged exchange results to downstream consumers.
type ExchangeEventPublisher interface {
	PublishExchange(ctx context.Context, result domain.ExchangeResult) error
	Close() error
}

// ExchangeObserver receives every finished exchange result, e.g. to update metrics.
type ExchangeObserver interface {
	ObserveExchange(result domain.ExchangeResult)
}

// ExchangeSvc executes exchanges.
type ExchangeSvc interface {
	// Exchange always returns a result. The error is non-nil only for infrastructure failures
	// (apperrors.ErrStorage) or when ctx ends before any funds moved; business failures are
	// reported through result.OK, result.Obs and result.Reason.
	Exchange(ctx context.Context, req domain.ExchangeRequest) (*domain.ExchangeResult, error)
}

// ExchangeLogReaderSvc reads the exchange log.
type ExchangeLogReaderSvc interface {
	ListLog(ctx context.Context, params dto.ListLogParams) (*dto.ListLogResponse, error)
}

// ExchangeSvcFacade combines all exchange-related service interfaces
type ExchangeSvcFacade interface {
	ExchangeSvc
	ExchangeLogReaderSvc
}
