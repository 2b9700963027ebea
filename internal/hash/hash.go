// Package hash provides content hashing for change detection.
//
// The interactive shell hashes the encoded plan after every load and save and
// compares it with the current encoding to tell whether there are unsaved
// changes. Comparing content rather than tracking a flag means that undoing a
// change leaves the plan clean again.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher provides an abstraction for content hashing.
type Hasher interface {
	// Sum returns the hash of data as a hex string.
	Sum(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum computes the SHA-256 hash of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
