package crypto

// OperationSign represents the signing operation type
const OperationSign = "sign"

// OperationVerify represents the verification operation type
const OperationVerify = "verify"

// OperationEncrypt represents the encryption operation type
const OperationEncrypt = "encrypt"

// OperationDecrypt represents the decryption operation type
const OperationDecrypt = "decrypt"

// KeySize is the raw key length in bytes shared by every supported algorithm
const KeySize = 32

// Blake3SignatureSize is the length of a BLAKE3 keyed-hash signature in bytes
const Blake3SignatureSize = 32

// Ed25519SignatureSize is the length of an Ed25519 signature in bytes
const Ed25519SignatureSize = 64

// ChaCha20Poly1305NonceSize is the length of the nonce prepended to every ciphertext
const ChaCha20Poly1305NonceSize = 12

// ChaCha20Poly1305TagSize is the length of the Poly1305 authentication tag
const ChaCha20Poly1305TagSize = 16

// StdinSentinel is the input path that selects standard input
const StdinSentinel = "-"
