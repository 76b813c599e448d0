package crypto

import "fmt"

// Algorithm identifies the primitive backing a text operation.
type Algorithm string

const (
	// AlgorithmBlake3 is the BLAKE3 keyed hash used as a message authentication code.
	AlgorithmBlake3 Algorithm = "blake3"

	// AlgorithmEd25519 is the Ed25519 signature scheme.
	AlgorithmEd25519 Algorithm = "ed25519"

	// AlgorithmChaCha20Poly1305 is the ChaCha20-Poly1305 AEAD cipher.
	AlgorithmChaCha20Poly1305 Algorithm = "chacha20poly1305"
)

// AlgorithmKind groups algorithms by the capability they provide.
type AlgorithmKind int

const (
	// KindKeyedHash signs and verifies with one shared key.
	KindKeyedHash AlgorithmKind = iota + 1
	// KindAsymmetricSignature signs with a private key and verifies with a public key.
	KindAsymmetricSignature
	// KindAuthenticatedCipher encrypts and decrypts with one shared key.
	KindAuthenticatedCipher
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBlake3, AlgorithmEd25519, AlgorithmChaCha20Poly1305}
}

// ParseAlgorithm parses a case-sensitive algorithm tag.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}

// String returns the tag as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	return string(a)
}

// IsValid returns true if the algorithm is a recognized tag.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmBlake3, AlgorithmEd25519, AlgorithmChaCha20Poly1305:
		return true
	default:
		return false
	}
}

// Kind returns the capability class of the algorithm, or 0 for unknown tags.
func (a Algorithm) Kind() AlgorithmKind {
	switch a {
	case AlgorithmBlake3:
		return KindKeyedHash
	case AlgorithmEd25519:
		return KindAsymmetricSignature
	case AlgorithmChaCha20Poly1305:
		return KindAuthenticatedCipher
	default:
		return 0
	}
}

// CanSign reports whether the algorithm produces signatures.
func (a Algorithm) CanSign() bool {
	k := a.Kind()
	return k == KindKeyedHash || k == KindAsymmetricSignature
}

// CanEncrypt reports whether the algorithm encrypts.
func (a Algorithm) CanEncrypt() bool {
	return a.Kind() == KindAuthenticatedCipher
}

// SignatureSize returns the fixed signature length, or 0 for algorithms that do not sign.
func (a Algorithm) SignatureSize() int {
	switch a {
	case AlgorithmBlake3:
		return Blake3SignatureSize
	case AlgorithmEd25519:
		return Ed25519SignatureSize
	default:
		return 0
	}
}

// TextEncodedKeys reports whether keys of this algorithm are stored as printable text,
// in which case trailing whitespace in a key file is not part of the key.
func (a Algorithm) TextEncodedKeys() bool {
	return a == AlgorithmBlake3
}
