package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	secret := "longenoughpass1"
	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	assert.True(t, hasher.Check(secret, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("longenoughpass1")
	assert.NoError(t, err)

	assert.True(t, hasher.Check("longenoughpass1", hash))
	assert.False(t, hasher.Check("wrongpassword1", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("longenoughpass1", "invalid_hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("longenoughpass1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("longenoughpass1")
	assert.NoError(t, err)
	second, err := hasher.Hash("longenoughpass1")
	assert.NoError(t, err)

	// Same input, different salts, different hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("longenoughpass1", first))
	assert.True(t, hasher.Check("longenoughpass1", second))
}
