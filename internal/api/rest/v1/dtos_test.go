//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequests_Validate(t *testing.T) {
	no := false

	tests := []struct {
		name      string
		request   interface{ Validate() error }
		shouldErr bool
	}{
		{"Valid blake3 sign", &SignRequest{Algorithm: "blake3", Key: "a2V5"}, false},
		{"Valid ed25519 sign", &SignRequest{Algorithm: "ed25519", Data: "x", Key: "a2V5"}, false},
		{"Sign with cipher", &SignRequest{Algorithm: "chacha20poly1305", Key: "a2V5"}, true},
		{"Sign without key", &SignRequest{Algorithm: "blake3"}, true},
		{"Valid verify", &VerifyRequest{Algorithm: "blake3", Key: "a2V5", Signature: "c2ln"}, false},
		{"Verify without signature", &VerifyRequest{Algorithm: "blake3", Key: "a2V5"}, true},
		{"Valid encrypt", &EncryptRequest{Algorithm: "chacha20poly1305", Key: "a2V5"}, false},
		{"Encrypt with signer", &EncryptRequest{Algorithm: "blake3", Key: "a2V5"}, true},
		{"Valid decrypt", &DecryptRequest{Algorithm: "chacha20poly1305", Ciphertext: "Y3Q", Key: "a2V5"}, false},
		{"Decrypt without ciphertext", &DecryptRequest{Algorithm: "chacha20poly1305", Key: "a2V5"}, true},
		{"Valid key request", &GenerateKeyRequest{Algorithm: "ed25519"}, false},
		{"Mixed case algorithm", &GenerateKeyRequest{Algorithm: "Ed25519"}, true},
		{"Empty key request", &GenerateKeyRequest{}, true},
		{"Default password request", &PasswordRequest{}, false},
		{"Short password", &PasswordRequest{Length: 3}, true},
		{"No classes", &PasswordRequest{Upper: &no, Lower: &no, Number: &no, Symbol: &no}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
