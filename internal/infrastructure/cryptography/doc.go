// Package cryptography implements the text processors: BLAKE3 keyed-hash signing,
// Ed25519 signing, ChaCha20-Poly1305 authenticated encryption, and the key loader,
// key generator and password generator that feed them.
package cryptography
