package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const validExchangeBody = `{"baseCurrency":"USD","counterCurrency":"EUR","baseAccountId":"c1","counterAccountId":"c2","baseAmount":100}`

func exchangeResult(ok bool) *domain.ExchangeResult {
	r := domain.NewExchangeResult("ex1", fixedTime, domain.ExchangeRequest{
		BaseCurrency:     "USD",
		CounterCurrency:  "EUR",
		BaseAccountID:    "c1",
		CounterAccountID: "c2",
		BaseAmount:       decimal.NewFromInt(100),
	})
	r.ExchangeRate = decimal.RequireFromString("0.9")
	r.CounterAmount = decimal.NewFromInt(90)
	if ok {
		r.Succeed()
	} else {
		r.Fail(domain.ReasonInsufficientFunds, domain.ObsInsufficientFunds)
	}
	return r
}

// --- Exchange ---

func (suite *HandlerTestSuite) TestExchange_Success() {
	suite.mockExchange.On("Exchange", mock.Anything, mock.MatchedBy(func(r domain.ExchangeRequest) bool {
		return r.BaseCurrency == "USD" && r.CounterAccountID == "c2" && r.BaseAmount.Equal(decimal.NewFromInt(100))
	})).Return(exchangeResult(true), nil).Once()

	w := suite.do(http.MethodPost, "/exchange", validExchangeBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.ExchangeResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.OK)
	suite.Nil(resp.Obs)
	suite.True(resp.CounterAmount.Equal(decimal.NewFromInt(90)))
}

func (suite *HandlerTestSuite) TestExchange_BusinessFailure() {
	suite.mockExchange.On("Exchange", mock.Anything, mock.Anything).Return(exchangeResult(false), nil).Once()

	w := suite.do(http.MethodPost, "/exchange", validExchangeBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp domain.ExchangeResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.OK)
	suite.Equal(domain.ReasonInsufficientFunds, resp.Reason)
	suite.Require().NotNil(resp.Obs)
	suite.Contains(*resp.Obs, "insufficient funds")
}

func (suite *HandlerTestSuite) TestExchange_StorageFailure() {
	result := exchangeResult(false)
	result.Fail(domain.ReasonStorageUnavailable, domain.ObsStorageUnavailable)
	suite.mockExchange.On("Exchange", mock.Anything, mock.Anything).
		Return(result, apperrors.NewStorageError("get", errors.New("broken pipe"))).Once()

	w := suite.do(http.MethodPost, "/exchange", validExchangeBody)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Contains(w.Body.String(), string(domain.ReasonStorageUnavailable))
}

func (suite *HandlerTestSuite) TestExchange_InvalidBodies() {
	bodies := []string{
		`{"baseCurrency":"USD","counterCurrency":"USD","baseAccountId":"c1","counterAccountId":"c2","baseAmount":1}`,
		`{"baseCurrency":"usd","counterCurrency":"EUR","baseAccountId":"c1","counterAccountId":"c2","baseAmount":1}`,
		`{"baseCurrency":"USD","counterCurrency":"GBP","baseAccountId":"c1","counterAccountId":"c2","baseAmount":1}`,
		`{"baseCurrency":"USD","counterCurrency":"EUR","baseAccountId":"c1","counterAccountId":"c2","baseAmount":0}`,
		`{"baseCurrency":"USD","counterCurrency":"EUR","baseAccountId":"c1","counterAccountId":"c1","baseAmount":1}`,
		`{"baseCurrency":"USD","counterCurrency":"EUR","counterAccountId":"c2","baseAmount":1}`,
		`not json`,
	}
	for _, body := range bodies {
		w := suite.do(http.MethodPost, "/exchange", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockExchange.AssertNotCalled(suite.T(), "Exchange", mock.Anything, mock.Anything)
}

// --- Log ---

func (suite *HandlerTestSuite) TestListLog_DefaultsAndToken() {
	next := "bG9nfDUw"
	suite.mockExchange.On("ListLog", mock.Anything, dto.ListLogParams{Limit: 50}).
		Return(&dto.ListLogResponse{Entries: []domain.ExchangeLogEntry{*exchangeResult(true)}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/log", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListLogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListLog_InvalidLimit() {
	w := suite.do(http.MethodGet, "/log?limit=1000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListLog_BadToken() {
	suite.mockExchange.On("ListLog", mock.Anything, dto.ListLogParams{Limit: 10, NextToken: "nope"}).
		Return(nil, apperrors.NewValidationError("invalid token")).Once()

	w := suite.do(http.MethodGet, "/log?limit=10&nextToken=nope", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Rates ---

func (suite *HandlerTestSuite) TestSetRate_ReturnsBothDirections() {
	suite.mockRates.On("SetRate", mock.Anything, "USD", "EUR", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("0.9"))
	})).Return(&domain.ExchangeRate{BaseCurrency: "USD", CounterCurrency: "EUR", Rate: decimal.RequireFromString("0.9"), UpdatedAt: fixedTime}, nil).Once()

	w := suite.do(http.MethodPut, "/rates", `{"baseCurrency":"USD","counterCurrency":"EUR","rate":0.9}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SetExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.Reciprocal.BaseCurrency)
	suite.Equal("1.11111", resp.Reciprocal.Rate.String())
}

func (suite *HandlerTestSuite) TestSetRate_SameCurrency() {
	w := suite.do(http.MethodPut, "/rates", `{"baseCurrency":"USD","counterCurrency":"USD","rate":1}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRates.AssertNotCalled(suite.T(), "SetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetRate_NotFound() {
	suite.mockRates.On("GetRate", mock.Anything, "USD", "BRL").Return(nil, apperrors.ErrRateNotFound).Once()

	w := suite.do(http.MethodGet, "/rates/USD/BRL", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListRates() {
	suite.mockRates.On("ListRates", mock.Anything).Return([]domain.ExchangeRate{
		{BaseCurrency: "USD", CounterCurrency: "EUR", Rate: decimal.RequireFromString("0.9")},
		{BaseCurrency: "EUR", CounterCurrency: "USD", Rate: decimal.RequireFromString("1.11111")},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

// --- Transfer ---

func (suite *HandlerTestSuite) TestTransfer_Success() {
	suite.mockTransferer.On("Transfer", mock.Anything, mock.MatchedBy(func(r domain.TransferRequest) bool {
		return r.OperationID == "op-1" && r.FromAccountID == "a" && r.ToAccountID == "b"
	})).Return(nil).Once()

	w := suite.do(http.MethodPost, "/transfer", `{"operationId":"op-1","fromAccountId":"a","toAccountId":"b","amount":5}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.OK)
	suite.Equal("op-1", resp.OperationID)
}

func (suite *HandlerTestSuite) TestTransfer_GeneratesOperationID() {
	suite.mockTransferer.On("Transfer", mock.Anything, mock.MatchedBy(func(r domain.TransferRequest) bool {
		return r.OperationID != ""
	})).Return(nil).Once()

	w := suite.do(http.MethodPost, "/transfer", `{"fromAccountId":"a","toAccountId":"b","amount":5}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.OperationID)
}

func (suite *HandlerTestSuite) TestTransfer_Rejected() {
	suite.mockTransferer.On("Transfer", mock.Anything, mock.Anything).Return(apperrors.ErrTransferFailed).Once()

	w := suite.do(http.MethodPost, "/transfer", `{"operationId":"op-2","fromAccountId":"a","toAccountId":"b","amount":5}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.OK)
	suite.NotEmpty(resp.Error)
}

func (suite *HandlerTestSuite) TestTransfer_SameAccount() {
	w := suite.do(http.MethodPost, "/transfer", `{"fromAccountId":"a","toAccountId":"a","amount":5}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransferer.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything)
}
