// Package admingate implements the capability check for administrative
// writes. The gate is passed explicitly into the transport layer so tests
// can swap it out; it carries no knowledge of the data model.
package admingate

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotConfigured = errors.New("admin secret is not configured")
	ErrUnauthorized  = errors.New("admin token mismatch")
)

// Gate authorizes a request-supplied token. Authorize returns nil when the
// token grants administrative capability.
type Gate interface {
	Authorize(token string) error
}

// SecretGate compares tokens against a bcrypt digest of the shared admin
// secret. Holding only the digest keeps the plaintext secret out of
// long-lived process state.
type SecretGate struct {
	digest []byte
}

// NewSecretGate digests a plaintext secret. An empty secret yields a gate
// that rejects everything with ErrNotConfigured.
func NewSecretGate(secret string) (*SecretGate, error) {
	if secret == "" {
		return &SecretGate{}, nil
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &SecretGate{digest: digest}, nil
}

// NewSecretGateFromDigest wraps a pre-computed bcrypt digest.
func NewSecretGateFromDigest(digest string) *SecretGate {
	if digest == "" {
		return &SecretGate{}
	}
	return &SecretGate{digest: []byte(digest)}
}

func (g *SecretGate) Authorize(token string) error {
	if len(g.digest) == 0 {
		return ErrNotConfigured
	}
	if token == "" {
		return ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(g.digest, []byte(token)); err != nil {
		return ErrUnauthorized
	}
	return nil
}
