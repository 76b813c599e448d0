package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when an input file or stream cannot be read.
	ErrIO = errors.New("i/o error")

	// ErrKeyFormat is returned when key material has the wrong length, encoding or role.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrKeyTooShort is returned when a key source holds fewer bytes than the algorithm requires.
	ErrKeyTooShort = fmt.Errorf("%w: key too short", ErrKeyFormat)

	// ErrKeyRole is returned when a key is used in a role its algorithm does not allow,
	// e.g. a public key handed to a signer.
	ErrKeyRole = fmt.Errorf("%w: wrong key role", ErrKeyFormat)

	// ErrEncoding is returned when base64url text cannot be decoded.
	ErrEncoding = errors.New("invalid encoding")

	// ErrMalformedSignature is returned when a signature does not have the algorithm's fixed length.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrMalformedCiphertext is returned when a ciphertext is too short to hold a nonce and tag.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrAuthentication is returned when an AEAD tag does not match.
	ErrAuthentication = errors.New("authentication failed")

	// ErrUnsupportedAlgorithm is returned for unknown algorithm tags.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrOperationNotSupported is returned when an operation is requested for an algorithm
	// that does not provide it, e.g. signing with an AEAD cipher.
	ErrOperationNotSupported = errors.New("operation not supported for algorithm")
)
