// Package crypto defines the core types shared by every text operation: the algorithm tag,
// key roles, typed key material and the error taxonomy used for signing, verification,
// encryption and decryption of byte streams.
package crypto
