package cryptography

import (
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"

	"golang.org/x/crypto/chacha20poly1305"
)

// chaCha20Poly1305Processor seals and opens payloads with ChaCha20-Poly1305.
// Output layout: nonce (12 bytes) || ciphertext || tag (16 bytes).
type chaCha20Poly1305Processor struct {
	aead   cipher.AEAD
	rand   io.Reader
	logger logger.Logger
}

// NewChaCha20Poly1305Processor creates an AEAD processor bound to a symmetric key.
func NewChaCha20Poly1305Processor(key *crypto.KeyMaterial, logger logger.Logger, opts ...Option) (cryptoalg.AEADProcessor, error) {
	if err := requireKey(key, crypto.AlgorithmChaCha20Poly1305, crypto.KeyRoleSymmetric); err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create ChaCha20-Poly1305 AEAD: %v", crypto.ErrKeyFormat, err)
	}

	return &chaCha20Poly1305Processor{
		aead:   aead,
		rand:   applyOptions(opts).rand,
		logger: logger,
	}, nil
}

// Encrypt reads plaintext to EOF and seals it under a fresh random nonce.
func (p *chaCha20Poly1305Processor) Encrypt(plaintext io.Reader) ([]byte, error) {
	buf, err := utils.ReadAll(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to read plaintext: %w", err)
	}

	nonceSize := p.aead.NonceSize()
	out := make([]byte, nonceSize, nonceSize+len(buf)+p.aead.Overhead())
	if _, err := io.ReadFull(p.rand, out); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends to the nonce so the blob carries everything Decrypt needs.
	out = p.aead.Seal(out, out[:nonceSize], buf, nil)

	p.logger.Debug("ChaCha20-Poly1305 encryption succeeded")
	return out, nil
}

// Decrypt splits the nonce from blob and opens the remaining payload.
func (p *chaCha20Poly1305Processor) Decrypt(blob []byte) ([]byte, error) {
	nonceSize := p.aead.NonceSize()
	if len(blob) < nonceSize+p.aead.Overhead() {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d",
			crypto.ErrMalformedCiphertext, nonceSize+p.aead.Overhead(), len(blob))
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := p.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		p.logger.Warn("ChaCha20-Poly1305 authentication failed")
		return nil, fmt.Errorf("%w: %v", crypto.ErrAuthentication, err)
	}

	p.logger.Debug("ChaCha20-Poly1305 decryption succeeded")
	return plaintext, nil
}
