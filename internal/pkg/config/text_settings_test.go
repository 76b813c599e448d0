//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *TextSettings
		expectedError bool
	}{
		{
			name: "valid defaults",
			settings: &TextSettings{
				DefaultSignAlgorithm:   DefaultSignAlgorithm,
				DefaultCipherAlgorithm: DefaultCipherAlgorithm,
				KeyDir:                 ".",
			},
			expectedError: false,
		},
		{
			name: "ed25519 as sign default",
			settings: &TextSettings{
				DefaultSignAlgorithm:   "ed25519",
				DefaultCipherAlgorithm: DefaultCipherAlgorithm,
				KeyDir:                 "/tmp/keys",
			},
			expectedError: false,
		},
		{
			name: "cipher as sign default",
			settings: &TextSettings{
				DefaultSignAlgorithm:   "chacha20poly1305",
				DefaultCipherAlgorithm: DefaultCipherAlgorithm,
				KeyDir:                 ".",
			},
			expectedError: true,
		},
		{
			name: "signer as cipher default",
			settings: &TextSettings{
				DefaultSignAlgorithm:   DefaultSignAlgorithm,
				DefaultCipherAlgorithm: "blake3",
				KeyDir:                 ".",
			},
			expectedError: true,
		},
		{
			name: "missing key dir",
			settings: &TextSettings{
				DefaultSignAlgorithm:   DefaultSignAlgorithm,
				DefaultCipherAlgorithm: DefaultCipherAlgorithm,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}
