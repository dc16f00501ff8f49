// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidToken = errors.New("invalid admin token")

// ValidateAdminToken checks the token presented on a mutating request
// against the configured one. Comparison is constant time.
func ValidateAdminToken(provided, configured string) error {
	if provided == "" || !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidToken
	}
	return nil
}
