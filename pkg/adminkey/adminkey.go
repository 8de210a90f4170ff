// Package adminkey generates and verifies the single back-office API
// key the admin routes are protected with.
package adminkey

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base32"
	"strings"
)

// Generate creates a new admin key with the given prefix, formatted as
// prefix_base32.
func Generate(prefix string) (string, error) {
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	encoded := base32.StdEncoding.EncodeToString(bytes)
	encoded = strings.ReplaceAll(encoded, "=", "")

	return prefix + "_" + encoded, nil
}

// Verify compares a presented key against the configured one in
// constant time. An unconfigured key never verifies.
func Verify(candidate, expected string) bool {
	if expected == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}
