// Package auth gates the admin surface on a capability token. Token
// issuance belongs to the external authentication provider; this side only
// checks that the presented token matches the configured one.
package auth

import (
	"crypto/subtle"

	"github.com/myapplevix/store-backend/pkg/e"
)

type StaticVerifier struct {
	token string
}

func NewStaticVerifier(token string) *StaticVerifier {
	return &StaticVerifier{token: token}
}

// Verify compares in constant time. An empty configured token rejects
// everything rather than opening the admin surface.
func (v *StaticVerifier) Verify(token string) error {
	if v.token == "" || token == "" {
		return e.ErrUnauthorized
	}

	if subtle.ConstantTimeCompare([]byte(v.token), []byte(token)) != 1 {
		return e.ErrUnauthorized
	}

	return nil
}
