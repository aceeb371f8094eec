package accounting

import (
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeBalances returns the post-exchange balances of both liquidity accounts: the base account
// receives baseAmount and the counter account pays counterAmount.
// This is used when committing an exchange so the conservation rule lives in one place.
func ExchangeBalances(baseAccount, counterAccount domain.Account, baseAmount, counterAmount decimal.Decimal) (map[string]decimal.Decimal, error) {
	if baseAccount.AccountID == counterAccount.AccountID {
		return nil, fmt.Errorf("base and counter liquidity accounts must differ, both are %s", baseAccount.AccountID)
	}
	if !baseAmount.IsPositive() || !counterAmount.IsPositive() {
		return nil, fmt.Errorf("exchange amounts must be positive: base %s, counter %s", baseAmount, counterAmount)
	}
	if !counterAccount.CanCover(counterAmount) {
		return nil, fmt.Errorf("account %s cannot cover %s", counterAccount.AccountID, counterAmount)
	}

	return map[string]decimal.Decimal{
		baseAccount.AccountID:    baseAccount.Balance.Add(baseAmount),
		counterAccount.AccountID: counterAccount.Balance.Sub(counterAmount),
	}, nil
}
