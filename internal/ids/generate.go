// Package ids generates short opaque identifiers for tracked entities.
package ids

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"strings"
	"time"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

// New creates a lowercase base32 ID derived from the input, the timestamp,
// and a few bytes of entropy. Two calls with identical arguments produce
// different IDs.
func New(input string, timestamp time.Time, length int) string {
	var salt [4]byte
	// rand.Read never fails on supported platforms.
	rand.Read(salt[:])
	return Derive(input+timestamp.Format(time.RFC3339Nano)+string(salt[:]), length)
}

// Derive creates a deterministic lowercase base32 ID from input alone.
func Derive(input string, length int) string {
	if length <= 0 {
		return ""
	}
	hash := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.EncodeToString(hash[:])
	if length > len(encoded) {
		length = len(encoded)
	}
	return strings.ToLower(encoded[:length])
}
