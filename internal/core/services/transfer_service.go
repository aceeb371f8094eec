package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const (
	defaultOutcomeCapacity  = 100_000
	defaultOutcomeRetention = time.Hour
)

// SimulatedTransferConfig shapes the simulated rail.
type SimulatedTransferConfig struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64 // probability in [0,1] that a transfer fails; 0 means always succeed

	// Completed outcomes are kept for OutcomeRetention, at most OutcomeCapacity of them.
	// A retry arriving after eviction executes again.
	OutcomeCapacity  int
	OutcomeRetention time.Duration
}

// SimulatedTransferService stands in for an external funds-movement rail. Completed operation ids
// are remembered for a bounded time, so a retry returns the first outcome instead of moving funds twice.
type SimulatedTransferService struct {
	BaseService
	cfg   SimulatedTransferConfig
	sleep func(ctx context.Context, d time.Duration) error
	rand  func() float64

	group    singleflight.Group
	outcomes *expirable.LRU[string, error]
}

// TransferOption is a functional option for configuring the simulated rail
type TransferOption func(*SimulatedTransferService)

// WithSleep replaces the latency wait, mostly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) TransferOption {
	return func(s *SimulatedTransferService) {
		s.sleep = sleep
	}
}

// WithRandom replaces the [0,1) random source used for latency and failures.
func WithRandom(r func() float64) TransferOption {
	return func(s *SimulatedTransferService) {
		s.rand = r
	}
}

// NewSimulatedTransferService creates the simulated rail.
func NewSimulatedTransferService(cfg SimulatedTransferConfig, options ...TransferOption) *SimulatedTransferService {
	if cfg.MaxLatency < cfg.MinLatency {
		cfg.MaxLatency = cfg.MinLatency
	}
	if cfg.OutcomeCapacity <= 0 {
		cfg.OutcomeCapacity = defaultOutcomeCapacity
	}
	if cfg.OutcomeRetention <= 0 {
		cfg.OutcomeRetention = defaultOutcomeRetention
	}
	svc := &SimulatedTransferService{
		cfg:      cfg,
		sleep:    sleepCtx,
		rand:     rand.Float64,
		outcomes: expirable.NewLRU[string, error](cfg.OutcomeCapacity, nil, cfg.OutcomeRetention),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.Transferer = (*SimulatedTransferService)(nil)

// Transfer moves amount between two accounts on the rail. A canceled or timed out call records
// nothing and can be retried with the same operation id.
func (s *SimulatedTransferService) Transfer(ctx context.Context, req domain.TransferRequest) error {
	if err := validateTransfer(req); err != nil {
		return err
	}
	if req.OperationID == "" {
		req.OperationID = uuid.NewString()
	}

	for {
		_, err, shared := s.group.Do(req.OperationID, func() (any, error) {
			if outcome, done := s.outcomes.Get(req.OperationID); done {
				s.LogDebug(ctx, "Transfer already executed, returning recorded outcome", slog.String("operation_id", req.OperationID))
				return nil, outcome
			}
			return nil, s.execute(ctx, req)
		})
		if !shared {
			return err
		}
		// The call that ran the operation may have been interrupted by its own context. Nothing was
		// recorded then, so a caller whose context is still live runs it again.
		if interrupted(err) && ctx.Err() == nil {
			s.LogDebug(ctx, "Joined transfer was interrupted, retrying", slog.String("operation_id", req.OperationID))
			continue
		}
		s.LogDebug(ctx, "Transfer joined an in-flight operation", slog.String("operation_id", req.OperationID))
		return err
	}
}

func (s *SimulatedTransferService) execute(ctx context.Context, req domain.TransferRequest) error {
	latency := s.cfg.MinLatency + time.Duration(s.rand()*float64(s.cfg.MaxLatency-s.cfg.MinLatency))
	if err := s.sleep(ctx, latency); err != nil {
		s.LogWarn(ctx, "Transfer interrupted before completion",
			slog.String("operation_id", req.OperationID), slog.String("error", err.Error()))
		return fmt.Errorf("%w: operation %s: %w", apperrors.ErrTransferFailed, req.OperationID, err)
	}

	var outcome error
	if s.cfg.FailureRate > 0 && s.rand() < s.cfg.FailureRate {
		outcome = fmt.Errorf("%w: operation %s rejected by rail", apperrors.ErrTransferFailed, req.OperationID)
	}

	s.outcomes.Add(req.OperationID, outcome)

	s.LogDebug(ctx, "Transfer executed",
		slog.String("operation_id", req.OperationID),
		slog.String("from", req.FromAccountID),
		slog.String("to", req.ToAccountID),
		slog.String("amount", req.Amount.String()),
		slog.Duration("latency", latency),
		slog.Bool("ok", outcome == nil))
	return outcome
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func validateTransfer(req domain.TransferRequest) error {
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return apperrors.NewValidationError("transfer requires both account ids")
	}
	if req.FromAccountID == req.ToAccountID {
		return apperrors.NewValidationError("cannot transfer to the same account")
	}
	if !req.Amount.IsPositive() {
		return apperrors.NewValidationError("transfer amount must be positive")
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
