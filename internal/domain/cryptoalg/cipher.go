package cryptoalg

import "io"

// AEADProcessor handles authenticated symmetric encryption.
// Each ciphertext carries the nonce it was sealed with, so Decrypt never needs one supplied.
type AEADProcessor interface {
	// Encrypt reads plaintext to EOF and returns nonce || ciphertext || tag.
	Encrypt(plaintext io.Reader) ([]byte, error)

	// Decrypt splits the embedded nonce from blob and opens the payload.
	// A tag mismatch returns an authentication error and no plaintext.
	Decrypt(blob []byte) ([]byte, error)
}
