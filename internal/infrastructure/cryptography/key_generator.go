package cryptography

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
)

type keyGenerator struct {
	rand      io.Reader
	passwords cryptoalg.PasswordGenerator
	logger    logger.Logger
}

// NewKeyGenerator creates a KeyGenerator. blake3 keys are printable passwords taken from
// passwords; when it is nil a generator sharing the same entropy source is used.
func NewKeyGenerator(logger logger.Logger, passwords cryptoalg.PasswordGenerator, opts ...Option) (cryptoalg.KeyGenerator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	o := applyOptions(opts)
	if passwords == nil {
		var err error
		passwords, err = NewPasswordGenerator(logger, WithRandReader(o.rand))
		if err != nil {
			return nil, err
		}
	}

	return &keyGenerator{
		rand:      o.rand,
		passwords: passwords,
		logger:    logger,
	}, nil
}

// Generate creates key material for alg.
func (g *keyGenerator) Generate(alg crypto.Algorithm) ([]*crypto.KeyMaterial, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		return g.generateBlake3()
	case crypto.AlgorithmEd25519:
		return g.generateEd25519()
	case crypto.AlgorithmChaCha20Poly1305:
		return g.generateChaCha20Poly1305()
	default:
		return nil, fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}
}

func (g *keyGenerator) generateBlake3() ([]*crypto.KeyMaterial, error) {
	password, err := g.passwords.Generate(cryptoalg.PasswordOptions{
		Length: crypto.KeySize,
		Upper:  true,
		Lower:  true,
		Number: true,
		Symbol: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate blake3 key: %w", err)
	}

	key, err := crypto.NewKeyMaterial(crypto.AlgorithmBlake3, crypto.KeyRoleSymmetric, []byte(password))
	if err != nil {
		return nil, err
	}

	g.logger.Info("Generated blake3 key")
	return []*crypto.KeyMaterial{key}, nil
}

func (g *keyGenerator) generateEd25519() ([]*crypto.KeyMaterial, error) {
	seed := make([]byte, ed25519.SeedSize)
	defer wipe(seed)
	if _, err := io.ReadFull(g.rand, seed); err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 seed: %w", err)
	}

	priv, err := crypto.NewKeyMaterial(crypto.AlgorithmEd25519, crypto.KeyRolePrivate, seed)
	if err != nil {
		return nil, err
	}

	pub, err := Ed25519PublicFromPrivate(priv)
	if err != nil {
		priv.Zero()
		return nil, err
	}

	g.logger.Info("Generated ed25519 key pair")
	return []*crypto.KeyMaterial{priv, pub}, nil
}

func (g *keyGenerator) generateChaCha20Poly1305() ([]*crypto.KeyMaterial, error) {
	raw := make([]byte, crypto.KeySize)
	defer wipe(raw)
	if _, err := io.ReadFull(g.rand, raw); err != nil {
		return nil, fmt.Errorf("failed to generate chacha20poly1305 key: %w", err)
	}

	key, err := crypto.NewKeyMaterial(crypto.AlgorithmChaCha20Poly1305, crypto.KeyRoleSymmetric, raw)
	if err != nil {
		return nil, err
	}

	g.logger.Info("Generated chacha20poly1305 key")
	return []*crypto.KeyMaterial{key}, nil
}
