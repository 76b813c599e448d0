package cryptography

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"

	"filippo.io/edwards25519"
)

// ed25519Signer signs with an Ed25519 private key expanded from a 32-byte seed.
type ed25519Signer struct {
	key    ed25519.PrivateKey
	logger logger.Logger
}

// ed25519Verifier verifies with an Ed25519 public key only.
type ed25519Verifier struct {
	key    ed25519.PublicKey
	logger logger.Logger
}

// NewEd25519Signer creates a signer from a private (seed) key.
func NewEd25519Signer(key *crypto.KeyMaterial, logger logger.Logger) (cryptoalg.Signer, error) {
	if err := requireKey(key, crypto.AlgorithmEd25519, crypto.KeyRolePrivate); err != nil {
		return nil, err
	}

	return &ed25519Signer{
		key:    ed25519.NewKeyFromSeed(key.Bytes),
		logger: logger,
	}, nil
}

// NewEd25519Verifier creates a verifier from a public key.
// The key must decode to a point on the curve.
func NewEd25519Verifier(key *crypto.KeyMaterial, logger logger.Logger) (cryptoalg.Verifier, error) {
	if err := requireKey(key, crypto.AlgorithmEd25519, crypto.KeyRolePublic); err != nil {
		return nil, err
	}
	if err := ValidateEd25519PublicKey(key.Bytes); err != nil {
		return nil, err
	}

	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, key.Bytes)

	return &ed25519Verifier{
		key:    pub,
		logger: logger,
	}, nil
}

// Ed25519PublicFromPrivate derives the verifying key of a private (seed) key.
func Ed25519PublicFromPrivate(key *crypto.KeyMaterial) (*crypto.KeyMaterial, error) {
	if err := requireKey(key, crypto.AlgorithmEd25519, crypto.KeyRolePrivate); err != nil {
		return nil, err
	}

	priv := ed25519.NewKeyFromSeed(key.Bytes)
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected ed25519 public key type", crypto.ErrKeyFormat)
	}

	return crypto.NewKeyMaterial(crypto.AlgorithmEd25519, crypto.KeyRolePublic, pub)
}

// ValidateEd25519PublicKey checks that b is a canonical encoding of a curve point.
func ValidateEd25519PublicKey(b []byte) error {
	if len(b) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d",
			crypto.ErrKeyFormat, ed25519.PublicKeySize, len(b))
	}
	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return fmt.Errorf("%w: invalid ed25519 public key: %v", crypto.ErrKeyFormat, err)
	}
	return nil
}

// Sign reads data to EOF and returns its 64-byte Ed25519 signature.
func (s *ed25519Signer) Sign(data io.Reader) ([]byte, error) {
	buf, err := utils.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	signature := ed25519.Sign(s.key, buf)

	s.logger.Debug("Ed25519 signing succeeded")
	return signature, nil
}

// Verify reads data to EOF and checks signature against the public key.
func (v *ed25519Verifier) Verify(data io.Reader, signature []byte) (bool, error) {
	if len(signature) != crypto.Ed25519SignatureSize {
		return false, fmt.Errorf("%w: ed25519 signature must be %d bytes, got %d",
			crypto.ErrMalformedSignature, crypto.Ed25519SignatureSize, len(signature))
	}

	buf, err := utils.ReadAll(data)
	if err != nil {
		return false, fmt.Errorf("failed to read data: %w", err)
	}

	valid := ed25519.Verify(v.key, buf, signature)
	v.logger.Debug("Ed25519 verification finished, valid=", valid)
	return valid, nil
}
