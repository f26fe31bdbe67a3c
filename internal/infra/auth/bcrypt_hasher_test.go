package auth

import (
	"testing"

	"mangahub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(newHasherConfig(12)).(*bcryptHasher)
	assert.Equal(t, 12, hasher.cost)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("SamePassword1")
	require.NoError(t, err)
	second, err := hasher.Hash("SamePassword1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("SamePassword1", first))
	assert.True(t, hasher.Check("SamePassword1", second))
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	weak := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))
	strong := NewBcryptHasher(newHasherConfig(bcrypt.MinCost + 1))

	hash, err := weak.Hash("Secret123")
	require.NoError(t, err)

	assert.False(t, weak.NeedsRehash(hash))
	assert.True(t, strong.NeedsRehash(hash))
	assert.True(t, strong.NeedsRehash("not-a-bcrypt-hash"))
}
