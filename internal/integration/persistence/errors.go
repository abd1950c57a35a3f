// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKeyError reports whether err is a unique constraint violation.
// Drivers that implement gorm's error translation return gorm.ErrDuplicatedKey;
// the message checks cover drivers that do not.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
