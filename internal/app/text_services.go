package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/domain/text"
	"github.com/MGTheTrain/text-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-vault/internal/pkg/codec"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
)

// textSignService implements the TextSignService interface for signing and verifying text
type textSignService struct {
	keyLoader cryptoalg.KeyLoader
	logger    logger.Logger
}

// NewTextSignService creates a new textSignService instance
func NewTextSignService(keyLoader cryptoalg.KeyLoader, logger logger.Logger) (text.TextSignService, error) {
	if keyLoader == nil {
		return nil, fmt.Errorf("key loader cannot be nil")
	}
	return &textSignService{
		keyLoader: keyLoader,
		logger:    logger,
	}, nil
}

// Sign signs input with the key read from key and returns the base64url signature.
func (s *textSignService) Sign(ctx context.Context, input, key io.Reader, alg crypto.Algorithm) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var signer cryptoalg.Signer
	switch alg {
	case crypto.AlgorithmBlake3:
		km, err := s.keyLoader.Load(key, alg, crypto.KeyRoleSymmetric)
		if err != nil {
			return "", fmt.Errorf("failed to load blake3 key: %w", err)
		}
		defer km.Zero()
		if signer, err = cryptography.NewBlake3Processor(km, s.logger); err != nil {
			return "", err
		}
	case crypto.AlgorithmEd25519:
		km, err := s.keyLoader.Load(key, alg, crypto.KeyRolePrivate)
		if err != nil {
			return "", fmt.Errorf("failed to load ed25519 private key: %w", err)
		}
		defer km.Zero()
		if signer, err = cryptography.NewEd25519Signer(km, s.logger); err != nil {
			return "", err
		}
	case crypto.AlgorithmChaCha20Poly1305:
		return "", fmt.Errorf("%w: sign with %s", crypto.ErrOperationNotSupported, alg)
	default:
		return "", fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}

	signature, err := signer.Sign(input)
	if err != nil {
		return "", fmt.Errorf("failed to sign input: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Signed input with %s", alg))
	return codec.Encode(signature), nil
}

// Verify decodes signature, loads the verifying key and checks the signature over input.
func (s *textSignService) Verify(ctx context.Context, input, key io.Reader, signature string, alg crypto.Algorithm) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !alg.IsValid() {
		return false, fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}
	if !alg.CanSign() {
		return false, fmt.Errorf("%w: verify with %s", crypto.ErrOperationNotSupported, alg)
	}

	sig, err := codec.Decode(signature)
	if err != nil {
		return false, fmt.Errorf("failed to decode signature: %w", err)
	}

	var verifier cryptoalg.Verifier
	switch alg {
	case crypto.AlgorithmBlake3:
		km, err := s.keyLoader.Load(key, alg, crypto.KeyRoleSymmetric)
		if err != nil {
			return false, fmt.Errorf("failed to load blake3 key: %w", err)
		}
		defer km.Zero()
		if verifier, err = cryptography.NewBlake3Processor(km, s.logger); err != nil {
			return false, err
		}
	case crypto.AlgorithmEd25519:
		km, err := s.keyLoader.Load(key, alg, crypto.KeyRolePublic)
		if err != nil {
			return false, fmt.Errorf("failed to load ed25519 public key: %w", err)
		}
		if verifier, err = cryptography.NewEd25519Verifier(km, s.logger); err != nil {
			return false, err
		}
	case crypto.AlgorithmChaCha20Poly1305:
		return false, fmt.Errorf("%w: verify with %s", crypto.ErrOperationNotSupported, alg)
	}

	valid, err := verifier.Verify(input, sig)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	if valid {
		s.logger.Info(fmt.Sprintf("Signature verified with %s", alg))
	} else {
		s.logger.Warn(fmt.Sprintf("Signature not verified with %s", alg))
	}
	return valid, nil
}

// textCipherService implements the TextCipherService interface for authenticated encryption of text
type textCipherService struct {
	keyLoader cryptoalg.KeyLoader
	opts      []cryptography.Option
	logger    logger.Logger
}

// NewTextCipherService creates a new textCipherService instance.
// opts are handed to every cipher the service constructs.
func NewTextCipherService(keyLoader cryptoalg.KeyLoader, logger logger.Logger, opts ...cryptography.Option) (text.TextCipherService, error) {
	if keyLoader == nil {
		return nil, fmt.Errorf("key loader cannot be nil")
	}
	return &textCipherService{
		keyLoader: keyLoader,
		opts:      opts,
		logger:    logger,
	}, nil
}

// Encrypt seals input and returns the base64url encoded nonce||ciphertext||tag.
func (s *textCipherService) Encrypt(ctx context.Context, input, key io.Reader, alg crypto.Algorithm) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	processor, release, err := s.processor(key, alg, "encrypt")
	if err != nil {
		return "", err
	}
	defer release()

	blob, err := processor.Encrypt(input)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt input: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Encrypted input with %s", alg))
	return codec.Encode(blob), nil
}

// Decrypt decodes ciphertext before touching the key and returns the opened plaintext.
func (s *textCipherService) Decrypt(ctx context.Context, ciphertext string, key io.Reader, alg crypto.Algorithm) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !alg.IsValid() {
		return nil, fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}
	if !alg.CanEncrypt() {
		return nil, fmt.Errorf("%w: decrypt with %s", crypto.ErrOperationNotSupported, alg)
	}

	blob, err := codec.Decode(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	processor, release, err := s.processor(key, alg, "decrypt")
	if err != nil {
		return nil, err
	}
	defer release()

	plaintext, err := processor.Decrypt(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt ciphertext: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Decrypted ciphertext with %s", alg))
	return plaintext, nil
}

func (s *textCipherService) processor(key io.Reader, alg crypto.Algorithm, op string) (cryptoalg.AEADProcessor, func(), error) {
	switch alg {
	case crypto.AlgorithmChaCha20Poly1305:
		km, err := s.keyLoader.Load(key, alg, crypto.KeyRoleSymmetric)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load chacha20poly1305 key: %w", err)
		}
		p, err := cryptography.NewChaCha20Poly1305Processor(km, s.logger, s.opts...)
		if err != nil {
			km.Zero()
			return nil, nil, err
		}
		return p, km.Zero, nil
	case crypto.AlgorithmBlake3, crypto.AlgorithmEd25519:
		return nil, nil, fmt.Errorf("%w: %s with %s", crypto.ErrOperationNotSupported, op, alg)
	default:
		return nil, nil, fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}
}
