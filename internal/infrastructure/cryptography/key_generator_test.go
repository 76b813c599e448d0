//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGenerator(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	generator, err := NewKeyGenerator(logger, nil)
	require.NoError(t, err)
	msg := []byte("This is a test message.")

	t.Run("Blake3", func(t *testing.T) {
		keys, err := generator.Generate(crypto.AlgorithmBlake3)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, crypto.KeyRoleSymmetric, keys[0].Role)
		assert.Len(t, keys[0].Bytes, crypto.KeySize)
		assert.True(t, strings.ContainsAny(string(keys[0].Bytes), symbolChars))

		processor, err := NewBlake3Processor(keys[0], logger)
		require.NoError(t, err)
		sig, err := processor.Sign(bytes.NewReader(msg))
		require.NoError(t, err)
		valid, err := processor.Verify(bytes.NewReader(msg), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Ed25519", func(t *testing.T) {
		keys, err := generator.Generate(crypto.AlgorithmEd25519)
		require.NoError(t, err)
		require.Len(t, keys, 2)
		assert.Equal(t, crypto.KeyRolePrivate, keys[0].Role)
		assert.Equal(t, crypto.KeyRolePublic, keys[1].Role)

		signer, err := NewEd25519Signer(keys[0], logger)
		require.NoError(t, err)
		verifier, err := NewEd25519Verifier(keys[1], logger)
		require.NoError(t, err)

		sig, err := signer.Sign(bytes.NewReader(msg))
		require.NoError(t, err)
		valid, err := verifier.Verify(bytes.NewReader(msg), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("ChaCha20Poly1305", func(t *testing.T) {
		first, err := generator.Generate(crypto.AlgorithmChaCha20Poly1305)
		require.NoError(t, err)
		second, err := generator.Generate(crypto.AlgorithmChaCha20Poly1305)
		require.NoError(t, err)

		require.Len(t, first, 1)
		assert.NotEqual(t, first[0].Bytes, second[0].Bytes)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := generator.Generate(crypto.Algorithm("rsa"))
		assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := NewKeyGenerator(logger, nil, WithRandReader(testutil.DeterministicReader(4)))
		require.NoError(t, err)
		b, err := NewKeyGenerator(logger, nil, WithRandReader(testutil.DeterministicReader(4)))
		require.NoError(t, err)

		ka, err := a.Generate(crypto.AlgorithmEd25519)
		require.NoError(t, err)
		kb, err := b.Generate(crypto.AlgorithmEd25519)
		require.NoError(t, err)
		assert.Equal(t, ka[1].Bytes, kb[1].Bytes)
	})

	t.Run("EntropyFailure", func(t *testing.T) {
		failing, err := NewKeyGenerator(logger, nil, WithRandReader(testutil.ErrReader{Err: errors.New("no entropy")}))
		require.NoError(t, err)

		_, err = failing.Generate(crypto.AlgorithmChaCha20Poly1305)
		assert.Error(t, err)
	})
}
