package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast
var testParams = &Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestArgon2_HashAndCompare(t *testing.T) {
	h := NewArgon2Hasher(testParams)

	encoded, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))

	assert.NoError(t, h.Compare(encoded, "correct horse battery staple"))
	assert.ErrorIs(t, h.Compare(encoded, "wrong"), ErrPasswordMismatch)
}

func TestArgon2_SaltsDiffer(t *testing.T) {
	h := NewArgon2Hasher(testParams)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestArgon2_CompareUsesStoredParams(t *testing.T) {
	encoded, err := NewArgon2Hasher(testParams).Hash("pw")
	require.NoError(t, err)

	// a hasher configured differently still verifies older hashes
	other := NewArgon2Hasher(&Argon2Params{Memory: 2048, Iterations: 2, Parallelism: 1, SaltLength: 8, KeyLength: 16})
	assert.NoError(t, other.Compare(encoded, "pw"))
}

func TestArgon2_MalformedHash(t *testing.T) {
	h := NewArgon2Hasher(testParams)
	for _, bad := range []string{"", "plain", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", "$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA"} {
		assert.Error(t, h.Compare(bad, "pw"), bad)
	}
}
