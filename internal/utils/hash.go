package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword computes the SHA-256 digest of password and returns it as a
// lowercase hex string.
//
// This is the exact on-disk credential format used by accounts.json; it must
// stay byte-compatible with documents written by earlier versions of the
// application, which is why no salt or KDF is involved here.
//
// Parameters:
//
//	password - the plaintext password to hash
//
// Returns:
//
//	string - 64-character lowercase hex SHA-256 digest
//
// Example usage:
//
//	digest := utils.HashPassword("pw123")
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsSHA256Hex reports whether s has the shape of a stored password digest:
// exactly 64 lowercase hexadecimal characters.
//
// Used by the legacy migration to tell already-hashed credentials apart from
// plaintext ones. A plaintext password that happens to match this shape is
// indistinguishable from a digest; that ambiguity is inherited from the
// original data format.
func IsSHA256Hex(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
