package config

import (
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/pkg/validators"
)

// Default algorithm tags used when a command does not name one.
const (
	DefaultSignAlgorithm   = "blake3"
	DefaultCipherAlgorithm = "chacha20poly1305"
)

// TextSettings holds defaults for text sign/verify/encrypt/decrypt operations
type TextSettings struct {
	DefaultSignAlgorithm   string `mapstructure:"default_sign_algorithm" validate:"required,text_sign_algorithm"`
	DefaultCipherAlgorithm string `mapstructure:"default_cipher_algorithm" validate:"required,text_cipher_algorithm"`
	KeyDir                 string `mapstructure:"key_dir" validate:"required"`
}

// Validate checks that all fields in TextSettings are valid
func (s *TextSettings) Validate() error {
	validate := validators.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TextSettings: %w", err)
	}

	return nil
}
