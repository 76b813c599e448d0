//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, alg crypto.Algorithm, role crypto.KeyRole, b []byte) *crypto.KeyMaterial {
	t.Helper()
	key, err := crypto.NewKeyMaterial(alg, role, b)
	require.NoError(t, err)
	return key
}

func filledKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, crypto.KeySize)
}

func flipBit(b []byte, i int) []byte {
	out := append([]byte(nil), b...)
	out[i/8] ^= 1 << (i % 8)
	return out
}
