// Package iphash derives an opaque identity key from a client address so the
// original IP is never stored or logged.
package iphash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const unknownClient = "unknown"

// FromHeader extracts the client IP from an X-Forwarded-For value (the
// first comma-separated hop) and returns its hash. A missing or empty
// header maps to the hash of "unknown".
func FromHeader(forwardedFor string) string {
	ip, _, _ := strings.Cut(forwardedFor, ",")
	ip = strings.TrimSpace(ip)
	if ip == "" {
		ip = unknownClient
	}
	return Hash(ip)
}

// Hash returns the lowercase hex SHA-256 digest of the given identifier.
func Hash(identifier string) string {
	sum := sha256.Sum256([]byte(identifier))
	return hex.EncodeToString(sum[:])
}
