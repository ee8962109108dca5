// Package kvstore holds the small key-value stores the ledger persists into.
package kvstore

import (
	"encoding/json"
	"fmt"
)

// Store is a synchronous key-value store. Get reports ok=false for a
// missing key.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// GetJSON decodes the value stored under key into v.
func GetJSON(s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func SetJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(key, raw)
}
