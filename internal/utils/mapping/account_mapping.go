package mapping

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		CurrencyCode:  d.CurrencyCode,
		Balance:       d.Balance,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		CurrencyCode:  m.CurrencyCode,
		Balance:       m.Balance,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}
