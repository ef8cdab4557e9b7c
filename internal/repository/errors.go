package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is the single lookup-miss sentinel; services translate it
// into their own entity-specific errors.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
