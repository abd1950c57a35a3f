// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// IDLength is the length of an entity identifier in hex characters.
const IDLength = 24

var idRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID generates a 24 character hex identifier: 4 bytes of Unix seconds
// (big endian) followed by 8 random bytes.
func NewID() (string, error) {
	random, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes for id: %w", err)
	}

	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	copy(raw[4:], random[:8])

	return hex.EncodeToString(raw[:]), nil
}

// IsValidID reports whether id is a 24 character hex token.
func IsValidID(id string) bool {
	return idRegex.MatchString(id)
}
