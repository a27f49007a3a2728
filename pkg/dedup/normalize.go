package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Normalize canonicalizes candidate text for exact matching: lowercased,
// trimmed, inner whitespace runs collapsed to single spaces.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ContentHash returns the SHA-256 hex digest of the normalized text.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(Normalize(text)))
	return hex.EncodeToString(sum[:])
}
