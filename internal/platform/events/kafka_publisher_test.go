package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func TestKafkaPublisher_PublishExchange(t *testing.T) {
	w := new(mockWriter)
	p := &KafkaPublisher{writer: w}

	result := domain.NewExchangeResult("abc", time.Now().UTC(), domain.ExchangeRequest{
		BaseCurrency:     "USD",
		CounterCurrency:  "EUR",
		BaseAccountID:    "client-usd",
		CounterAccountID: "client-eur",
		BaseAmount:       decimal.NewFromInt(100),
	})
	result.ExchangeRate = decimal.RequireFromString("0.9")
	result.CounterAmount = decimal.NewFromInt(90)
	result.Succeed()

	var sent []kafka.Message
	w.On("WriteMessages", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).([]kafka.Message)
	}).Return(nil).Once()

	require.NoError(t, p.PublishExchange(context.Background(), *result))
	require.Len(t, sent, 1)
	assert.Equal(t, "abc", string(sent[0].Key))

	var ev ExchangeEvent
	require.NoError(t, json.Unmarshal(sent[0].Value, &ev))
	assert.True(t, ev.OK)
	assert.Equal(t, "USD", ev.BaseCurrency)
	assert.True(t, ev.CounterAmount.Equal(decimal.NewFromInt(90)))
	w.AssertExpectations(t)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := new(mockWriter)
	p := &KafkaPublisher{writer: w}
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	err := p.PublishExchange(context.Background(), domain.ExchangeResult{ID: "x"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewPublisher_NoBrokers(t *testing.T) {
	p := NewPublisher(nil, "exchange.results")
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.PublishExchange(context.Background(), domain.ExchangeResult{}))
	assert.NoError(t, p.Close())
}
