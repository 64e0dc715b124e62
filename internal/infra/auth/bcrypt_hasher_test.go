package auth

import (
	"testing"

	"companion/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasherTestConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(4))

	hashed, err := hasher.Hash("one-time-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "one-time-secret", hashed)

	assert.NoError(t, hasher.Compare(hashed, "one-time-secret"))
	assert.Error(t, hasher.Compare(hashed, "wrong-secret"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(4))

	first, err := hasher.Hash("one-time-secret")
	require.NoError(t, err)
	second, err := hasher.Hash("one-time-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ClampsOutOfRangeCost(t *testing.T) {
	// An out-of-range cost falls back to the bcrypt default instead of failing.
	hasher := NewBcryptHasher(newHasherTestConfig(99))

	hashed, err := hasher.Hash("one-time-secret")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hashed, "one-time-secret"))
}
