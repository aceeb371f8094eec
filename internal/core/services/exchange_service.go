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
	"github.com/SscSPs/currency_exchange_app/internal/utils/accounting"
	"github.com/SscSPs/currency_exchange_app/internal/utils/pagination"
	"github.com/jaevor/go-nanoid"
)

const (
	defaultTransferTimeout = 2 * time.Second
	publishTimeout         = 5 * time.Second
	exchangeIDLength       = 21

	defaultLogPageSize = 50
	maxLogPageSize     = 500
	logCollection      = "log"
)

// ExchangeService is the exchange orchestrator: it resolves the rate and the liquidity accounts,
// drives the withdraw/payout transfers with a refund on payout failure, commits both balances and
// appends exactly one log entry per call.
type ExchangeService struct {
	BaseService
	rates       portssvc.ExchangeRateReaderSvc
	accounts    portssvc.AccountReaderSvc
	accountRepo portsrepo.AccountRepositoryFacade
	logRepo     portsrepo.ExchangeLogRepository
	locker      portsrepo.Locker
	transferer  portssvc.Transferer

	publisher       portssvc.ExchangeEventPublisher
	observers       []portssvc.ExchangeObserver
	transferTimeout time.Duration
	now             func() time.Time
	newID           func() string
}

// ExchangeOption is a functional option for configuring the exchange service
type ExchangeOption func(*ExchangeService)

// WithEventPublisher publishes every logged result.
func WithEventPublisher(p portssvc.ExchangeEventPublisher) ExchangeOption {
	return func(s *ExchangeService) {
		s.publisher = p
	}
}

// WithExchangeObserver adds an observer called once per result.
func WithExchangeObserver(o portssvc.ExchangeObserver) ExchangeOption {
	return func(s *ExchangeService) {
		s.observers = append(s.observers, o)
	}
}

// WithTransferTimeout bounds every transfer call.
func WithTransferTimeout(d time.Duration) ExchangeOption {
	return func(s *ExchangeService) {
		if d > 0 {
			s.transferTimeout = d
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ExchangeOption {
	return func(s *ExchangeService) {
		s.now = now
	}
}

// WithIDGenerator overrides the result id generator.
func WithIDGenerator(gen func() string) ExchangeOption {
	return func(s *ExchangeService) {
		s.newID = gen
	}
}

// NewExchangeService creates the orchestrator.
func NewExchangeService(
	rates portssvc.ExchangeRateReaderSvc,
	accounts portssvc.AccountReaderSvc,
	repos portsrepo.RepositoryProvider,
	transferer portssvc.Transferer,
	options ...ExchangeOption,
) (*ExchangeService, error) {
	gen, err := nanoid.Standard(exchangeIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange id generator: %w", err)
	}

	svc := &ExchangeService{
		rates:           rates,
		accounts:        accounts,
		accountRepo:     repos.AccountRepo,
		logRepo:         repos.ExchangeLogRepo,
		locker:          repos.Locker,
		transferer:      transferer,
		transferTimeout: defaultTransferTimeout,
		now:             time.Now,
		newID:           gen,
	}
	for _, option := range options {
		option(svc)
	}
	return svc, nil
}

var _ portssvc.ExchangeSvcFacade = (*ExchangeService)(nil)

// Exchange runs one exchange attempt. See portssvc.ExchangeSvc for the error contract.
func (s *ExchangeService) Exchange(ctx context.Context, req domain.ExchangeRequest) (*domain.ExchangeResult, error) {
	result := domain.NewExchangeResult(s.newID(), s.now().UTC(), req)
	logger := s.GetLogger(ctx).With(slog.String("exchange_id", result.ID))

	runErr := s.run(ctx, logger, result)

	// The log append must happen even if the caller went away.
	detached := context.WithoutCancel(ctx)
	logErr := s.logRepo.AppendEntry(detached, *result)
	if logErr != nil {
		logger.Error("Failed to append exchange log entry", slog.String("error", logErr.Error()))
	}

	if result.OK {
		logger.Info("Exchange completed",
			slog.String("counter_amount", result.CounterAmount.String()),
			slog.String("rate", result.ExchangeRate.String()))
	} else {
		logger.Warn("Exchange failed",
			slog.String("reason", string(result.Reason)),
			slog.String("state", string(result.State)))
	}

	for _, o := range s.observers {
		o.ObserveExchange(*result)
	}
	if logErr == nil && s.publisher != nil {
		pubCtx, cancel := context.WithTimeout(detached, publishTimeout)
		if err := s.publisher.PublishExchange(pubCtx, *result); err != nil {
			logger.Warn("Failed to publish exchange event", slog.String("error", err.Error()))
		}
		cancel()
	}

	if runErr != nil {
		return result, runErr
	}
	return result, logErr
}

// run drives the state machine. It returns an error only for infrastructure failures; business
// failures are recorded on result.
func (s *ExchangeService) run(ctx context.Context, logger *slog.Logger, result *domain.ExchangeResult) error {
	req := result.Request

	if msg := validateExchangeRequest(req); msg != "" {
		result.Fail(domain.ReasonInvalidRequest, msg)
		return nil
	}

	rate, err := s.rates.GetRate(ctx, req.BaseCurrency, req.CounterCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			result.Fail(domain.ReasonRateNotFound, fmt.Sprintf("exchange rate not found for %s to %s", req.BaseCurrency, req.CounterCurrency))
			return nil
		}
		return failInfra(result, err)
	}
	result.ExchangeRate = rate.Rate
	result.CounterAmount = rate.Convert(req.BaseAmount)
	s.advance(logger, result, domain.StateRateResolved)

	baseAccount, err := s.accounts.GetAccountByCurrency(ctx, req.BaseCurrency)
	if err != nil {
		return s.failAccountLookup(result, req.BaseCurrency, err)
	}
	counterAccount, err := s.accounts.GetAccountByCurrency(ctx, req.CounterCurrency)
	if err != nil {
		return s.failAccountLookup(result, req.CounterCurrency, err)
	}
	s.advance(logger, result, domain.StateAccountsResolved)

	unlock, err := s.locker.Lock(ctx, accountLockKey(baseAccount.AccountID), accountLockKey(counterAccount.AccountID))
	if err != nil {
		return failInfra(result, err)
	}
	defer unlock()

	// Balances read before the lock may be stale.
	if baseAccount, err = s.accountRepo.FindAccountByID(ctx, baseAccount.AccountID); err != nil {
		return s.failAccountLookup(result, req.BaseCurrency, err)
	}
	if counterAccount, err = s.accountRepo.FindAccountByID(ctx, counterAccount.AccountID); err != nil {
		return s.failAccountLookup(result, req.CounterCurrency, err)
	}

	if !counterAccount.CanCover(result.CounterAmount) {
		result.Fail(domain.ReasonInsufficientFunds, domain.ObsInsufficientFunds)
		return nil
	}
	balances, err := accounting.ExchangeBalances(*baseAccount, *counterAccount, req.BaseAmount, result.CounterAmount)
	if err != nil {
		result.Fail(domain.ReasonInvalidRequest, err.Error())
		return nil
	}
	s.advance(logger, result, domain.StateFundsChecked)

	withdraw := domain.TransferRequest{
		OperationID:   result.ID + "-withdraw",
		FromAccountID: req.BaseAccountID,
		ToAccountID:   baseAccount.AccountID,
		Amount:        req.BaseAmount,
	}
	if err := s.transfer(ctx, withdraw); err != nil {
		logger.Warn("Withdraw from client failed", slog.String("error", err.Error()))
		result.Fail(domain.ReasonWithdrawFailed, domain.ObsWithdrawFailed)
		return nil
	}
	s.advance(logger, result, domain.StateBaseWithdrawn)

	// Funds have moved: the rest must finish even if the caller cancels.
	detached := context.WithoutCancel(ctx)

	payout := domain.TransferRequest{
		OperationID:   result.ID + "-payout",
		FromAccountID: counterAccount.AccountID,
		ToAccountID:   req.CounterAccountID,
		Amount:        result.CounterAmount,
	}
	if err := s.transfer(detached, payout); err != nil {
		logger.Warn("Payout to client failed, refunding", slog.String("error", err.Error()))
		refund := domain.TransferRequest{
			OperationID:   result.ID + "-refund",
			FromAccountID: baseAccount.AccountID,
			ToAccountID:   req.BaseAccountID,
			Amount:        req.BaseAmount,
		}
		if rerr := s.transfer(detached, refund); rerr != nil {
			logger.Error("Refund to client failed, manual reconciliation required",
				slog.String("error", rerr.Error()),
				slog.String("client_account_id", req.BaseAccountID),
				slog.String("amount", req.BaseAmount.String()))
			result.Fail(domain.ReasonCompensationFailed, domain.ObsCompensationFailed)
			return nil
		}
		result.Fail(domain.ReasonPayoutFailed, domain.ObsPayoutFailed)
		return nil
	}

	if err := s.accountRepo.UpdateAccountBalances(detached, balances); err != nil {
		logger.Error("Ledger commit failed after both transfers completed, manual reconciliation required",
			slog.String("error", err.Error()),
			slog.String("base_account_id", baseAccount.AccountID),
			slog.String("counter_account_id", counterAccount.AccountID))
		return failInfra(result, err)
	}

	result.Succeed()
	return nil
}

func (s *ExchangeService) transfer(ctx context.Context, req domain.TransferRequest) error {
	ctx, cancel := context.WithTimeout(ctx, s.transferTimeout)
	defer cancel()
	return s.transferer.Transfer(ctx, req)
}

func (s *ExchangeService) advance(logger *slog.Logger, result *domain.ExchangeResult, state domain.ExchangeState) {
	result.Advance(state)
	logger.Debug("Exchange state changed", slog.String("state", string(state)))
}

func (s *ExchangeService) failAccountLookup(result *domain.ExchangeResult, currency string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		result.Fail(domain.ReasonAccountNotFound, fmt.Sprintf("liquidity account not found for %s", currency))
		return nil
	}
	return failInfra(result, err)
}

// failInfra records a failure that happened before any funds moved and hands the error back.
func failInfra(result *domain.ExchangeResult, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		result.Fail(domain.ReasonCanceled, domain.ObsCanceled)
		return err
	}
	result.Fail(domain.ReasonStorageUnavailable, domain.ObsStorageUnavailable)
	if !errors.Is(err, apperrors.ErrStorage) {
		return apperrors.NewStorageError("exchange", err)
	}
	return err
}

func validateExchangeRequest(req domain.ExchangeRequest) string {
	switch {
	case !domain.IsCurrencyCode(req.BaseCurrency) || !domain.IsCurrencyCode(req.CounterCurrency):
		return "currency codes must be 3 upper-case letters"
	case req.BaseCurrency == req.CounterCurrency:
		return "base and counter currency must differ"
	case req.BaseAccountID == "" || req.CounterAccountID == "":
		return "client account ids are required"
	case !req.BaseAmount.IsPositive():
		return "base amount must be positive"
	}
	return ""
}

// ListLog pages through the exchange log, oldest first.
func (s *ExchangeService) ListLog(ctx context.Context, params dto.ListLogParams) (*dto.ListLogResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLogPageSize
	}
	limit = min(limit, maxLogPageSize)

	offset := 0
	if params.NextToken != "" {
		var err error
		offset, err = pagination.DecodeOffsetToken(logCollection, params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	// One extra entry tells whether another page exists.
	entries, err := s.logRepo.ListEntries(ctx, offset, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to read exchange log")
		return nil, err
	}

	resp := &dto.ListLogResponse{Entries: entries}
	if len(entries) > limit {
		resp.Entries = entries[:limit]
		next := pagination.EncodeOffsetToken(logCollection, offset+limit)
		resp.NextToken = &next
	}
	return resp, nil
}
