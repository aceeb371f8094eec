package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReciprocalRatePrecision is the number of decimal places kept when deriving counter→base from base→counter.
const ReciprocalRatePrecision int32 = 5

// ExchangeRate is a directional multiplier: counterAmount = baseAmount * Rate.
type ExchangeRate struct {
	BaseCurrency    string          `json:"baseCurrency"`
	CounterCurrency string          `json:"counterCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ReciprocalRate returns 1/rate rounded half away from zero to ReciprocalRatePrecision places.
func ReciprocalRate(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).DivRound(rate, ReciprocalRatePrecision)
}

// Reciprocal returns the opposite direction of r.
func (r ExchangeRate) Reciprocal() ExchangeRate {
	return ExchangeRate{
		BaseCurrency:    r.CounterCurrency,
		CounterCurrency: r.BaseCurrency,
		Rate:            ReciprocalRate(r.Rate),
		UpdatedAt:       r.UpdatedAt,
	}
}

// Convert applies the rate to a base amount without rounding.
func (r ExchangeRate) Convert(baseAmount decimal.Decimal) decimal.Decimal {
	return baseAmount.Mul(r.Rate)
}
