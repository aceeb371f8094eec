package metrics

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics holds the collectors for the HTTP surface and the exchange engine.
type ExchangeMetrics struct {
	RequestDuration *prometheus.HistogramVec

	ExchangesTotal      *prometheus.CounterVec
	ExchangeVolumeTotal *prometheus.CounterVec
	ExchangeNetVolume   *prometheus.GaugeVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *ExchangeMetrics {
	factory := promauto.With(reg)
	return &ExchangeMetrics{
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route and status",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method", "route", "status"},
		),

		ExchangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchanges_total",
				Help: "Exchange attempts by outcome and failure reason",
			},
			[]string{"outcome", "reason"},
		),

		ExchangeVolumeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_volume_total",
				Help: "Amount moved by successful exchanges, per currency",
			},
			[]string{"currency"},
		),

		ExchangeNetVolume: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "exchange_net_volume",
				Help: "Net client flow per currency: counter currency paid out minus base currency taken in",
			},
			[]string{"currency"},
		),
	}
}

// ObserveExchange records one exchange result. Volumes are only counted for successful exchanges.
func (m *ExchangeMetrics) ObserveExchange(result domain.ExchangeResult) {
	if m == nil {
		return
	}
	if !result.OK {
		m.ExchangesTotal.WithLabelValues("error", string(result.Reason)).Inc()
		return
	}
	m.ExchangesTotal.WithLabelValues("success", "").Inc()

	base := result.Request.BaseAmount.InexactFloat64()
	counter := result.CounterAmount.InexactFloat64()
	m.ExchangeVolumeTotal.WithLabelValues(result.Request.BaseCurrency).Add(base)
	m.ExchangeVolumeTotal.WithLabelValues(result.Request.CounterCurrency).Add(counter)
	m.ExchangeNetVolume.WithLabelValues(result.Request.BaseCurrency).Sub(base)
	m.ExchangeNetVolume.WithLabelValues(result.Request.CounterCurrency).Add(counter)
}
