package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/domain/keys"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"

	"github.com/google/uuid"
)

// keyFileMode keeps generated key files readable by their owner only
const keyFileMode = 0600

// keyGenerationService implements the KeyGenerationService interface
type keyGenerationService struct {
	generator cryptoalg.KeyGenerator
	logger    logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance
func NewKeyGenerationService(generator cryptoalg.KeyGenerator, logger logger.Logger) (keys.KeyGenerationService, error) {
	if generator == nil {
		return nil, fmt.Errorf("key generator cannot be nil")
	}
	return &keyGenerationService{
		generator: generator,
		logger:    logger,
	}, nil
}

// Generate creates fresh key material and tags it with a new key pair ID.
func (s *keyGenerationService) Generate(ctx context.Context, alg crypto.Algorithm) (*keys.GeneratedKeySet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !alg.IsValid() {
		return nil, fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}

	material, err := s.generator.Generate(alg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s key: %w", alg, err)
	}

	set := &keys.GeneratedKeySet{
		KeyPairID:       uuid.New().String(),
		Algorithm:       alg,
		Keys:            material,
		DateTimeCreated: time.Now(),
	}

	s.logger.Info(fmt.Sprintf("Generated %s key set with ID %s", alg, set.KeyPairID))
	return set, nil
}

// Save writes each key of set into dir. Existing files are overwritten.
func (s *keyGenerationService) Save(ctx context.Context, set *keys.GeneratedKeySet, dir string) ([]string, error) {
	if set == nil || len(set.Keys) == 0 {
		return nil, fmt.Errorf("%w: empty key set", crypto.ErrKeyFormat)
	}
	if err := utils.VerifyDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrIO, err)
	}

	paths := make([]string, 0, len(set.Keys))
	for _, key := range set.Keys {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		name, err := keys.FileName(key.Algorithm, key.Role)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, key.Bytes, keyFileMode); err != nil {
			return paths, fmt.Errorf("%w: failed to write %s: %v", crypto.ErrIO, path, err)
		}
		// WriteFile keeps the mode of a pre-existing file
		if err := os.Chmod(path, keyFileMode); err != nil {
			return paths, fmt.Errorf("%w: failed to restrict %s: %v", crypto.ErrIO, path, err)
		}

		s.logger.Info(fmt.Sprintf("Wrote %s %s key of set %s to %s", key.Algorithm, key.Role, set.KeyPairID, path))
		paths = append(paths, path)
	}

	return paths, nil
}
