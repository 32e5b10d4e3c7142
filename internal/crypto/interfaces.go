package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDerivation turns a low-entropy secret (the user's PIN) and a random salt
// into a 256-bit symmetric key.
//
// The derivation is deliberately slow and fully deterministic in its inputs:
// the same (secret, salt, iterations, hash) always yields the same key, and a
// fresh salt yields an unrelated key even for the same secret.
type KeyDerivation interface {
	// DeriveKey returns a KeySize-byte key. It fails with [ErrKeyDerivation]
	// if the hash algorithm is unavailable or the inputs violate the
	// constraints (empty secret, salt shorter than MinSaltSize, iterations <= 0).
	DeriveKey(secret, salt []byte, iterations int, hash HashAlgorithm) ([]byte, error)
}

// SymmetricCipher performs authenticated encryption of opaque payloads.
// The caller supplies a fresh NonceSize-byte nonce for every encryption.
type SymmetricCipher interface {
	// Encrypt seals plaintext and returns ciphertext with the tag appended.
	Encrypt(key, nonce, plaintext []byte) ([]byte, error)

	// Decrypt opens ciphertextWithTag. A tag mismatch (wrong key, wrong PIN,
	// tampered data) is reported as [ErrAuthentication]; malformed
	// parameters as [ErrInvalidCipherInput].
	Decrypt(key, nonce, ciphertextWithTag []byte) ([]byte, error)
}
