// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

var ErrInvalidPassphrase = errors.New("invalid admin passphrase")

// ValidateAdminPass checks a submitted passphrase against the configured one.
// The comparison is constant-time over fixed-length digests so neither the
// length nor the content of the configured passphrase leaks through timing.
// Callers surface the same generic denial whether the attempt was wrong or
// absent.
func ValidateAdminPass(pass, configured string) error {
	if configured == "" {
		// Never accept when no passphrase is configured.
		return ErrInvalidPassphrase
	}
	got := sha256.Sum256([]byte(pass))
	want := sha256.Sum256([]byte(configured))
	if !hmac.Equal(got[:], want[:]) {
		return ErrInvalidPassphrase
	}
	return nil
}
