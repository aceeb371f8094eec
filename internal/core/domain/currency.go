package domain

import (
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
)

// CurrencyCodeLength is the exact length of an ISO-4217 style code.
const CurrencyCodeLength = 3

// DefaultSupportedCurrencies is used when no explicit list is configured.
var DefaultSupportedCurrencies = []string{"USD", "EUR", "BRL", "ARS"}

// ValidateCurrencyCode checks that code is three upper-case ASCII letters.
// Codes are compared case-sensitively everywhere, so "usd" is not "USD".
func ValidateCurrencyCode(code string) error {
	if !IsCurrencyCode(code) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid currency code %q: must be %d upper-case letters", code, CurrencyCodeLength))
	}
	return nil
}

// IsCurrencyCode is the boolean form of ValidateCurrencyCode.
func IsCurrencyCode(code string) bool {
	if len(code) != CurrencyCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// CurrencySet is the set of currencies the service accepts.
type CurrencySet map[string]struct{}

// NewCurrencySet builds a set from codes, ignoring malformed entries.
func NewCurrencySet(codes []string) CurrencySet {
	set := make(CurrencySet, len(codes))
	for _, c := range codes {
		if IsCurrencyCode(c) {
			set[c] = struct{}{}
		}
	}
	return set
}

// Contains reports whether code is in the set. An empty set accepts every well-formed code.
func (s CurrencySet) Contains(code string) bool {
	if !IsCurrencyCode(code) {
		return false
	}
	if len(s) == 0 {
		return true
	}
	_, ok := s[code]
	return ok
}

// Validate returns a validation error for malformed or unsupported codes.
func (s CurrencySet) Validate(code string) error {
	if err := ValidateCurrencyCode(code); err != nil {
		return err
	}
	if !s.Contains(code) {
		return apperrors.NewValidationError(fmt.Sprintf("unsupported currency %q", code))
	}
	return nil
}
