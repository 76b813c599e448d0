package keys

import (
	"context"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// KeyGenerationService defines methods for generating key material and writing it to disk.
type KeyGenerationService interface {
	// Generate creates fresh key material for the algorithm.
	// It returns a key set holding one symmetric key or a private/public pair.
	Generate(ctx context.Context, alg crypto.Algorithm) (*GeneratedKeySet, error)

	// Save writes every key of the set as raw bytes into dir using the per-algorithm file names.
	// It returns the written paths in key order.
	Save(ctx context.Context, set *GeneratedKeySet, dir string) ([]string, error)
}
