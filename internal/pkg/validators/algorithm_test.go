//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type algorithmHolder struct {
	Any    string `validate:"text_algorithm"`
	Sign   string `validate:"text_sign_algorithm"`
	Cipher string `validate:"text_cipher_algorithm"`
}

func TestTextValidations(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		holder    algorithmHolder
		shouldErr bool
	}{
		{"blake3 signer", algorithmHolder{"blake3", "blake3", "chacha20poly1305"}, false},
		{"ed25519 signer", algorithmHolder{"ed25519", "ed25519", "chacha20poly1305"}, false},
		{"cipher used for signing", algorithmHolder{"chacha20poly1305", "chacha20poly1305", "chacha20poly1305"}, true},
		{"signer used for cipher", algorithmHolder{"blake3", "blake3", "ed25519"}, true},
		{"unknown tag", algorithmHolder{"aes", "blake3", "chacha20poly1305"}, true},
		{"wrong case", algorithmHolder{"Blake3", "blake3", "chacha20poly1305"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.holder)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
