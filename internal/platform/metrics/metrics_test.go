package metrics

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestObserveExchange(t *testing.T) {
	m := New(prometheus.NewRegistry())

	ok := domain.NewExchangeResult("1", time.Now(), domain.ExchangeRequest{
		BaseCurrency:    "USD",
		CounterCurrency: "EUR",
		BaseAmount:      decimal.NewFromInt(100),
	})
	ok.CounterAmount = decimal.NewFromInt(90)
	ok.Succeed()
	m.ObserveExchange(*ok)

	failed := domain.NewExchangeResult("2", ok.Timestamp, ok.Request)
	failed.Fail(domain.ReasonInsufficientFunds, domain.ObsInsufficientFunds)
	m.ObserveExchange(*failed)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangesTotal.WithLabelValues("success", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangesTotal.WithLabelValues("error", string(domain.ReasonInsufficientFunds))))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.ExchangeVolumeTotal.WithLabelValues("USD")))
	assert.Equal(t, 90.0, testutil.ToFloat64(m.ExchangeVolumeTotal.WithLabelValues("EUR")))
	assert.Equal(t, -100.0, testutil.ToFloat64(m.ExchangeNetVolume.WithLabelValues("USD")))
	assert.Equal(t, 90.0, testutil.ToFloat64(m.ExchangeNetVolume.WithLabelValues("EUR")))
}

func TestObserveExchange_NilMetrics(t *testing.T) {
	var m *ExchangeMetrics
	assert.NotPanics(t, func() { m.ObserveExchange(domain.ExchangeResult{}) })
}
