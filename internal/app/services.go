package app

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/keys"
	"github.com/MGTheTrain/text-vault/internal/domain/text"
	"github.com/MGTheTrain/text-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
)

// Services holds every application service behind the CLI and REST boundaries
type Services struct {
	TextSignService      text.TextSignService
	TextCipherService    text.TextCipherService
	PasswordService      text.PasswordService
	KeyGenerationService keys.KeyGenerationService
}

// NewServices wires the cryptographic processors into the application services.
// stdin backs the "-" key path; opts replace the entropy source of every generator and cipher.
func NewServices(logger logger.Logger, stdin io.Reader, opts ...cryptography.Option) (*Services, error) {
	keyLoader, err := cryptography.NewKeyLoader(logger, stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to create key loader: %w", err)
	}

	passwordGenerator, err := cryptography.NewPasswordGenerator(logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create password generator: %w", err)
	}

	keyGenerator, err := cryptography.NewKeyGenerator(logger, passwordGenerator, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	textSignService, err := NewTextSignService(keyLoader, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create text sign service: %w", err)
	}

	textCipherService, err := NewTextCipherService(keyLoader, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text cipher service: %w", err)
	}

	passwordService, err := NewPasswordService(passwordGenerator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create password service: %w", err)
	}

	keyGenerationService, err := NewKeyGenerationService(keyGenerator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	return &Services{
		TextSignService:      textSignService,
		TextCipherService:    textCipherService,
		PasswordService:      passwordService,
		KeyGenerationService: keyGenerationService,
	}, nil
}
