package auth

import (
	"crypto/rand"
	"encoding/base64"

	"ashcosmetic/internal/domain/service"
	"ashcosmetic/internal/errors"
)

// sessionTokenBytes is the entropy of a session token before encoding.
const sessionTokenBytes = 32

type randomTokenGenerator struct{}

// NewTokenGenerator returns a generator of base64url session tokens backed by crypto/rand.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns 32 random bytes encoded with unpadded base64url.
func (g *randomTokenGenerator) Generate() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for session token")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
