//go:build unit
// +build unit

package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/pkg/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSignService(t *testing.T) {
	services := setupServices(t)
	ctx := context.Background()
	msg := []byte("This is a test message.")

	t.Run("Blake3RoundTrip", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmBlake3)

		sig, err := services.TextSignService.Sign(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRoleSymmetric), crypto.AlgorithmBlake3)
		require.NoError(t, err)
		assert.Len(t, sig, 43)
		assert.NotContains(t, sig, "=")

		valid, err := services.TextSignService.Verify(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRoleSymmetric), sig, crypto.AlgorithmBlake3)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Ed25519RoundTrip", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmEd25519)

		sig, err := services.TextSignService.Sign(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRolePrivate), crypto.AlgorithmEd25519)
		require.NoError(t, err)
		assert.Len(t, sig, 86)

		valid, err := services.TextSignService.Verify(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRolePublic), sig, crypto.AlgorithmEd25519)
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = services.TextSignService.Verify(ctx, bytes.NewReader([]byte("other")), keyReader(set, crypto.KeyRolePublic), sig, crypto.AlgorithmEd25519)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("SignatureWithSurroundingWhitespace", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmBlake3)

		sig, err := services.TextSignService.Sign(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRoleSymmetric), crypto.AlgorithmBlake3)
		require.NoError(t, err)

		valid, err := services.TextSignService.Verify(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRoleSymmetric), "  "+sig+"\n", crypto.AlgorithmBlake3)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("MalformedEncoding", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmBlake3)

		_, err := services.TextSignService.Verify(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRoleSymmetric), "not*base64", crypto.AlgorithmBlake3)
		assert.ErrorIs(t, err, crypto.ErrEncoding)
	})

	t.Run("DecodeBeforeKeyLoad", func(t *testing.T) {
		_, err := services.TextSignService.Verify(ctx, bytes.NewReader(msg), bytes.NewReader([]byte("short")), "not*base64", crypto.AlgorithmBlake3)
		assert.ErrorIs(t, err, crypto.ErrEncoding)
		assert.NotErrorIs(t, err, crypto.ErrKeyFormat)
	})

	t.Run("WrongSignatureLength", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmEd25519)

		_, err := services.TextSignService.Verify(ctx, bytes.NewReader(msg), keyReader(set, crypto.KeyRolePublic), codec.Encode(make([]byte, 32)), crypto.AlgorithmEd25519)
		assert.ErrorIs(t, err, crypto.ErrMalformedSignature)
	})

	t.Run("ShortKey", func(t *testing.T) {
		_, err := services.TextSignService.Sign(ctx, bytes.NewReader(msg), strings.NewReader("short"), crypto.AlgorithmBlake3)
		assert.ErrorIs(t, err, crypto.ErrKeyTooShort)
	})

	t.Run("CipherAlgorithm", func(t *testing.T) {
		_, err := services.TextSignService.Sign(ctx, bytes.NewReader(msg), bytes.NewReader(make([]byte, 32)), crypto.AlgorithmChaCha20Poly1305)
		assert.ErrorIs(t, err, crypto.ErrOperationNotSupported)

		_, err = services.TextSignService.Verify(ctx, bytes.NewReader(msg), bytes.NewReader(make([]byte, 32)), "", crypto.AlgorithmChaCha20Poly1305)
		assert.ErrorIs(t, err, crypto.ErrOperationNotSupported)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := services.TextSignService.Sign(ctx, bytes.NewReader(msg), bytes.NewReader(make([]byte, 32)), crypto.Algorithm("BLAKE3"))
		assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := services.TextSignService.Sign(canceled, bytes.NewReader(msg), bytes.NewReader(make([]byte, 32)), crypto.AlgorithmBlake3)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTextCipherService(t *testing.T) {
	services := setupServices(t)
	ctx := context.Background()
	plaintext := []byte("This is a test message.")

	t.Run("RoundTrip", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmChaCha20Poly1305)

		ciphertext, err := services.TextCipherService.Encrypt(ctx, bytes.NewReader(plaintext), keyReader(set, crypto.KeyRoleSymmetric), crypto.AlgorithmChaCha20Poly1305)
		require.NoError(t, err)

		decrypted, err := services.TextCipherService.Decrypt(ctx, ciphertext, keyReader(set, crypto.KeyRoleSymmetric), crypto.AlgorithmChaCha20Poly1305)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("Tampered", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmChaCha20Poly1305)

		ciphertext, err := services.TextCipherService.Encrypt(ctx, bytes.NewReader(plaintext), keyReader(set, crypto.KeyRoleSymmetric), crypto.AlgorithmChaCha20Poly1305)
		require.NoError(t, err)

		blob, err := codec.Decode(ciphertext)
		require.NoError(t, err)
		blob[len(blob)-1] ^= 0x01

		_, err = services.TextCipherService.Decrypt(ctx, codec.Encode(blob), keyReader(set, crypto.KeyRoleSymmetric), crypto.AlgorithmChaCha20Poly1305)
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
	})

	t.Run("TooShort", func(t *testing.T) {
		set := generateKeys(t, services, crypto.AlgorithmChaCha20Poly1305)

		_, err := services.TextCipherService.Decrypt(ctx, codec.Encode(make([]byte, 20)), keyReader(set, crypto.KeyRoleSymmetric), crypto.AlgorithmChaCha20Poly1305)
		assert.ErrorIs(t, err, crypto.ErrMalformedCiphertext)
	})

	t.Run("MalformedEncoding", func(t *testing.T) {
		_, err := services.TextCipherService.Decrypt(ctx, "%%%", bytes.NewReader(nil), crypto.AlgorithmChaCha20Poly1305)
		assert.ErrorIs(t, err, crypto.ErrEncoding)
	})

	t.Run("SignatureAlgorithm", func(t *testing.T) {
		_, err := services.TextCipherService.Encrypt(ctx, bytes.NewReader(plaintext), bytes.NewReader(make([]byte, 32)), crypto.AlgorithmBlake3)
		assert.ErrorIs(t, err, crypto.ErrOperationNotSupported)

		_, err = services.TextCipherService.Decrypt(ctx, "AAAA", bytes.NewReader(make([]byte, 32)), crypto.AlgorithmEd25519)
		assert.ErrorIs(t, err, crypto.ErrOperationNotSupported)
	})
}
