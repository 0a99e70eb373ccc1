package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups when no row matches the key.
// It is an expected outcome, distinct from storage failures.
var ErrNotFound = errors.New("record not found")

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
