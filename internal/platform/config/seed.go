package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// SeedAccount is a liquidity account created at startup.
type SeedAccount struct {
	ID       string
	Currency string
	Balance  decimal.Decimal
}

// SeedRate is a directional rate set at startup; the reciprocal is derived.
type SeedRate struct {
	Base    string
	Counter string
	Rate    decimal.Decimal
}

// SeedData is the static data applied on startup.
type SeedData struct {
	Accounts []SeedAccount
	Rates    []SeedRate
}

type rawSeed struct {
	Accounts []struct {
		ID       string `mapstructure:"id"`
		Currency string `mapstructure:"currency"`
		Balance  string `mapstructure:"balance"`
	} `mapstructure:"accounts"`
	Rates []struct {
		Base    string `mapstructure:"base"`
		Counter string `mapstructure:"counter"`
		Rate    string `mapstructure:"rate"`
	} `mapstructure:"rates"`
}

// LoadSeed reads the seed file. A missing file yields empty seed data.
func LoadSeed(path string) (*SeedData, error) {
	if path == "" {
		return &SeedData{}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &SeedData{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var raw rawSeed
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	seed := &SeedData{}
	for _, a := range raw.Accounts {
		balance := decimal.Zero
		if a.Balance != "" {
			b, err := decimal.NewFromString(a.Balance)
			if err != nil {
				return nil, fmt.Errorf("seed account %s: invalid balance %q: %w", a.ID, a.Balance, err)
			}
			balance = b
		}
		seed.Accounts = append(seed.Accounts, SeedAccount{ID: a.ID, Currency: a.Currency, Balance: balance})
	}
	for _, r := range raw.Rates {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("seed rate %s/%s: invalid rate %q: %w", r.Base, r.Counter, r.Rate, err)
		}
		seed.Rates = append(seed.Rates, SeedRate{Base: r.Base, Counter: r.Counter, Rate: rate})
	}
	return seed, nil
}
