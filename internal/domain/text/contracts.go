package text

import (
	"context"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// TextSignService defines methods for signing and verifying byte streams.
type TextSignService interface {
	// Sign signs input with the key read from key and returns the base64url signature.
	Sign(ctx context.Context, input, key io.Reader, alg crypto.Algorithm) (string, error)

	// Verify checks a base64url signature over input.
	// It returns false with a nil error when the signature simply does not match.
	Verify(ctx context.Context, input, key io.Reader, signature string, alg crypto.Algorithm) (bool, error)
}

// TextCipherService defines methods for authenticated encryption of byte streams.
type TextCipherService interface {
	// Encrypt seals input and returns the base64url nonce||ciphertext||tag blob.
	Encrypt(ctx context.Context, input, key io.Reader, alg crypto.Algorithm) (string, error)

	// Decrypt opens a base64url blob produced by Encrypt and returns the plaintext.
	Decrypt(ctx context.Context, ciphertext string, key io.Reader, alg crypto.Algorithm) ([]byte, error)
}

// PasswordService defines methods for generating random passwords.
type PasswordService interface {
	Generate(ctx context.Context, length int, upper, lower, number, symbol bool) (string, error)
}
