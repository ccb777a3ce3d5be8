package auth

import (
	"strings"
	"testing"

	"ashcosmetic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "pw1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same", first))
	assert.True(t, hasher.Check("same", second))
}

func TestBcryptHasher_AcceptsEmptyPassword(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("")
	require.NoError(t, err)
	assert.True(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(" ", hash))
}

func TestBcryptHasher_TruncatesPast72Bytes(t *testing.T) {
	hasher := newTestHasher()

	prefix := strings.Repeat("a", 72)
	first := prefix + "first-suffix"
	second := prefix + "another-much-longer-suffix"

	hash, err := hasher.Hash(first)
	require.NoError(t, err, "passwords longer than 72 bytes must not be rejected")

	assert.True(t, hasher.Check(second, hash))
	assert.True(t, hasher.Check(prefix, hash))
	assert.False(t, hasher.Check(prefix[:71], hash))
}

func TestBcryptHasher_TruncatesMultiByteInputByBytes(t *testing.T) {
	hasher := newTestHasher()

	// 36 two-byte runes fill exactly 72 bytes.
	prefix := strings.Repeat("é", 36)
	hash, err := hasher.Hash(prefix + "ü")
	require.NoError(t, err)

	assert.True(t, hasher.Check(prefix+"x", hash))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
	assert.True(t, hasher.Check(password, hash))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "missing auth section", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, want: 5},
		{name: "too low", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}, want: bcrypt.DefaultCost},
		{name: "too high", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 40}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
