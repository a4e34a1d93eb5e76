package auth

import (
	"strings"
	"testing"

	"ethos/config"
	domainerrors "ethos/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	h, err := NewBcryptHasherWithCost(bcrypt.MinCost, 8)
	require.NoError(t, err)

	return h.(*bcryptHasher)
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"))

	assert.True(t, hasher.Compare("correct horse", hash))
	assert.False(t, hasher.Compare("wrong horse!", hash))
	assert.False(t, hasher.Compare("", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Compare("password123", first))
	assert.True(t, hasher.Compare("password123", second))
}

func TestBcryptHasher_TrimsBeforeHashing(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	hash, err := hasher.Hash("  password123  ")
	require.NoError(t, err)

	assert.True(t, hasher.Compare("password123", hash))
	assert.True(t, hasher.Compare("  password123  ", hash))
}

func TestBcryptHasher_RejectsInvalidPasswords(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	tests := []struct {
		name     string
		password string
	}{
		{"empty", ""},
		{"too short", "1234567"},
		{"short after trim", "   abc1234   "},
		{"whitespace only", "            "},
		{"over 72 bytes", strings.Repeat("a", 73)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := hasher.Hash(tt.password)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestBcryptHasher_MinLengthCountsRunes(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	// 8 runes, 16 bytes
	_, err := hasher.Hash("éééééééé")
	assert.NoError(t, err)

	_, err = hasher.Hash("ééééééé")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestBcryptHasher_CompareMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	assert.False(t, hasher.Compare("password123", "invalid_hash"))
	assert.False(t, hasher.Compare("password123", ""))
	assert.False(t, hasher.Compare("password123", "$2a$04$short"))
}

func TestNewBcryptHasherWithCost_Configuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cost      int
		minLength int
	}{
		{"cost below minimum", bcrypt.MinCost - 1, 8},
		{"cost above maximum", bcrypt.MaxCost + 1, 8},
		{"zero min length", bcrypt.MinCost, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBcryptHasherWithCost(tt.cost, tt.minLength)

			assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
		})
	}
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	t.Parallel()

	_, err := NewBcryptHasher(&config.Config{})
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)

	hasher, err := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5, PasswordMinLength: 8}})
	require.NoError(t, err)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
