package cryptoalg

import "io"

// Signer produces signatures over a byte stream.
// BLAKE3 (keyed hash) and Ed25519 signers implement it.
type Signer interface {
	// Sign reads data to EOF and returns the raw, unencoded signature.
	Sign(data io.Reader) ([]byte, error)
}

// Verifier checks signatures over a byte stream.
type Verifier interface {
	// Verify reads data to EOF and reports whether signature matches it.
	// A signature of the wrong length is rejected with an error before any comparison;
	// a well-formed signature that does not match returns false and a nil error.
	Verify(data io.Reader, signature []byte) (bool, error)
}

// SignerVerifier is implemented by symmetric schemes where one key both signs and verifies.
type SignerVerifier interface {
	Signer
	Verifier
}
