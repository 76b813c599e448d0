// Package codec renders binary signatures and ciphertexts as text and back.
// Signatures and ciphertexts always use base64url without padding so that the
// output can be pasted into a shell argument unchanged.
package codec
