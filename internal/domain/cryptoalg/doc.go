// Package cryptoalg defines the processor contracts for the supported text algorithms:
// keyed-hash and asymmetric signing, authenticated encryption, and key loading/generation.
package cryptoalg
