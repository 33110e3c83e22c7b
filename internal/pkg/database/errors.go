package database

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks failures of the record store itself, as opposed
// to a lookup that simply found nothing.
var ErrStoreUnavailable = errors.New("record store unavailable")

// Unavailable wraps a driver error so callers can match ErrStoreUnavailable
// while the original cause stays reachable through errors.Is/As.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
