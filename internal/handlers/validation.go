package handlers

import (
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the `currency` binding tag: a 3 upper-case letter code that belongs
// to currencies. An empty set accepts every well-formed code.
func RegisterValidators(currencies domain.CurrencySet) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return currencies.Contains(fl.Field().String())
	})
}
