package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cloux/internal/domain"
)

type secretVerifier struct {
	digest []byte
}

// NewSecretVerifier returns a SecretVerifier for the admin bearer secret.
// Only a bcrypt digest of the secret is kept. The secret is pre-hashed with SHA256
// so secrets longer than bcrypt's 72-byte input limit still compare in full.
// An empty secret yields a verifier that rejects every credential.
func NewSecretVerifier(secret string, cost int) (domain.SecretVerifier, error) {
	if secret == "" {
		return &secretVerifier{}, nil
	}
	digest, err := bcrypt.GenerateFromPassword(prehash(secret), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin secret: %w", err)
	}
	return &secretVerifier{digest: digest}, nil
}

func (v *secretVerifier) Verify(credential string) error {
	if len(v.digest) == 0 || credential == "" {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(v.digest, prehash(credential)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

func prehash(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return []byte(hex.EncodeToString(sum[:]))
}
