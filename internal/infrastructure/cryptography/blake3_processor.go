package cryptography

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"

	"github.com/zeebo/blake3"
)

// blake3Processor signs and verifies with the BLAKE3 keyed hash. The same key does both.
type blake3Processor struct {
	key    []byte
	logger logger.Logger
}

// NewBlake3Processor creates a keyed-hash signer/verifier bound to a symmetric blake3 key.
func NewBlake3Processor(key *crypto.KeyMaterial, logger logger.Logger) (cryptoalg.SignerVerifier, error) {
	if err := requireKey(key, crypto.AlgorithmBlake3, crypto.KeyRoleSymmetric); err != nil {
		return nil, err
	}

	return &blake3Processor{
		key:    key.Bytes,
		logger: logger,
	}, nil
}

// Sign reads data to EOF and returns its 32-byte keyed hash.
func (p *blake3Processor) Sign(data io.Reader) ([]byte, error) {
	buf, err := utils.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	sum, err := p.keyedHash(buf)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("BLAKE3 signing succeeded")
	return sum, nil
}

// Verify recomputes the keyed hash of data and compares it in constant time.
func (p *blake3Processor) Verify(data io.Reader, signature []byte) (bool, error) {
	if len(signature) != crypto.Blake3SignatureSize {
		return false, fmt.Errorf("%w: blake3 signature must be %d bytes, got %d",
			crypto.ErrMalformedSignature, crypto.Blake3SignatureSize, len(signature))
	}

	buf, err := utils.ReadAll(data)
	if err != nil {
		return false, fmt.Errorf("failed to read data: %w", err)
	}

	sum, err := p.keyedHash(buf)
	if err != nil {
		return false, err
	}

	valid := subtle.ConstantTimeCompare(sum, signature) == 1
	p.logger.Debug("BLAKE3 verification finished, valid=", valid)
	return valid, nil
}

func (p *blake3Processor) keyedHash(buf []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(p.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrKeyFormat, err)
	}
	// hash.Hash writes never fail
	_, _ = h.Write(buf)
	return h.Sum(nil), nil
}

// requireKey checks that key is present, valid, and belongs to alg in the given role.
func requireKey(key *crypto.KeyMaterial, alg crypto.Algorithm, role crypto.KeyRole) error {
	if key == nil {
		return fmt.Errorf("%w: key cannot be nil", crypto.ErrKeyFormat)
	}
	if key.Algorithm != alg {
		return fmt.Errorf("%w: expected %s key, got %s", crypto.ErrKeyFormat, alg, key.Algorithm)
	}
	if key.Role != role {
		return fmt.Errorf("%w: expected %s key, got %s", crypto.ErrKeyRole, role, key.Role)
	}
	return key.Validate()
}
