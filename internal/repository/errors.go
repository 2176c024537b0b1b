package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel error kinds returned by every repository. Handlers branch on these
// with errors.Is, so "not found", "conflict" and "storage failure" stay
// distinguishable all the way to the HTTP layer.
var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a uniqueness or state conflict
	ErrConflict = errors.New("conflict")

	// ErrStorage wraps any other database failure
	ErrStorage = errors.New("storage failure")
)

// wrap translates a gorm error into one of the sentinel kinds
func wrap(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
