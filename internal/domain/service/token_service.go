package service

// TokenGenerator produces opaque, unguessable session tokens.
type TokenGenerator interface {
	// Generate returns a new URL-safe token.
	Generate() (string, error)
}
