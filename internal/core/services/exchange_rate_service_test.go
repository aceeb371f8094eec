package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, baseCurrency, counterCurrency string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrency, counterCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRatePair(ctx context.Context, forward, reverse domain.ExchangeRate) error {
	return m.Called(ctx, forward, reverse).Error(0)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockRateRepo *MockExchangeRateRepository
	service      *services.ExchangeRateService
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, domain.NewCurrencySet([]string{"USD", "EUR", "ARS"}))
}

func (suite *ExchangeRateServiceTestSuite) TestSetRate_WritesReciprocalPair() {
	suite.mockRateRepo.On("SaveExchangeRatePair", suite.ctx,
		mock.MatchedBy(func(r domain.ExchangeRate) bool {
			return r.BaseCurrency == "USD" && r.CounterCurrency == "ARS" && r.Rate.Equal(decimal.NewFromInt(3))
		}),
		mock.MatchedBy(func(r domain.ExchangeRate) bool {
			return r.BaseCurrency == "ARS" && r.CounterCurrency == "USD" && r.Rate.Equal(decimal.RequireFromString("0.33333"))
		}),
	).Return(nil).Once()

	rate, err := suite.service.SetRate(suite.ctx, "USD", "ARS", decimal.NewFromInt(3))

	suite.Require().NoError(err)
	suite.Equal("USD", rate.BaseCurrency)
	suite.False(rate.UpdatedAt.IsZero())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestSetRate_Validation() {
	cases := []struct {
		name    string
		base    string
		counter string
		rate    decimal.Decimal
	}{
		{"same currency", "USD", "USD", decimal.NewFromInt(1)},
		{"malformed code", "US", "EUR", decimal.NewFromInt(1)},
		{"unsupported code", "USD", "BRL", decimal.NewFromInt(1)},
		{"zero rate", "USD", "EUR", decimal.Zero},
		{"negative rate", "USD", "EUR", decimal.NewFromInt(-2)},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := suite.service.SetRate(suite.ctx, tc.base, tc.counter, tc.rate)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRatePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestSetRate_StorageError() {
	storageErr := apperrors.NewStorageError("set many", errors.New("timeout"))
	suite.mockRateRepo.On("SaveExchangeRatePair", suite.ctx, mock.Anything, mock.Anything).Return(storageErr).Once()

	rate, err := suite.service.SetRate(suite.ctx, "USD", "EUR", decimal.RequireFromString("0.9"))

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_NotFound() {
	suite.mockRateRepo.On("FindExchangeRate", suite.ctx, "USD", "EUR").Return(nil, apperrors.ErrRateNotFound).Once()

	rate, err := suite.service.GetRate(suite.ctx, "USD", "EUR")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}

// Against the real store, the forward rate reads back exactly and the reverse is round(1/rate, 5).
func TestSetRate_ReciprocalProperty(t *testing.T) {
	ctx := context.Background()
	repos := newMemoryRepos()
	svc := services.NewExchangeRateService(repos.ExchangeRateRepo, nil)

	cases := []struct {
		rate    string
		reverse string
	}{
		{"0.9", "1.11111"},
		{"3", "0.33333"},
		{"0.00015", "6666.66667"},
		{"1", "1"},
		{"1234.5678", "0.00081"},
	}
	for _, tc := range cases {
		t.Run(tc.rate, func(t *testing.T) {
			_, err := svc.SetRate(ctx, "USD", "EUR", decimal.RequireFromString(tc.rate))
			require.NoError(t, err)

			forward, err := svc.GetRate(ctx, "USD", "EUR")
			require.NoError(t, err)
			assert.True(t, forward.Rate.Equal(decimal.RequireFromString(tc.rate)), "forward %s", forward.Rate)

			reverse, err := svc.GetRate(ctx, "EUR", "USD")
			require.NoError(t, err)
			assert.True(t, reverse.Rate.Equal(decimal.RequireFromString(tc.reverse)), "reverse %s", reverse.Rate)
		})
	}

	rates, err := svc.ListRates(ctx)
	require.NoError(t, err)
	assert.Len(t, rates, 2)
}
