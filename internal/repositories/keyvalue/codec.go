package keyvalue

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
)

const (
	accountPrefix = "accounts:"
	ratePrefix    = "rates:"
)

func accountKey(accountID string) string {
	return accountPrefix + accountID
}

func rateKey(base, counter string) string {
	return ratePrefix + base + ":" + counter
}

func encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return b, nil
}

// decode treats an unreadable stored record as a storage failure rather than a client error.
func decode(key string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to decode %s", key), err)
	}
	return nil
}
