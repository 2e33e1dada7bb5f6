package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashName converts a snapshot name into a stable hex string usable as a
// filename, regardless of what characters the name contains.
func hashName(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
