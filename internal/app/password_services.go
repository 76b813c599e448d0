package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/domain/text"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
)

// passwordService implements the PasswordService interface
type passwordService struct {
	generator cryptoalg.PasswordGenerator
	logger    logger.Logger
}

// NewPasswordService creates a new passwordService instance
func NewPasswordService(generator cryptoalg.PasswordGenerator, logger logger.Logger) (text.PasswordService, error) {
	if generator == nil {
		return nil, fmt.Errorf("password generator cannot be nil")
	}
	return &passwordService{
		generator: generator,
		logger:    logger,
	}, nil
}

// Generate returns a random password with the requested length and character classes.
func (s *passwordService) Generate(ctx context.Context, length int, upper, lower, number, symbol bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	password, err := s.generator.Generate(cryptoalg.PasswordOptions{
		Length: length,
		Upper:  upper,
		Lower:  lower,
		Number: number,
		Symbol: symbol,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Generated password of length %d", length))
	return password, nil
}
