// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// HashAlgorithm names the PRF used by PBKDF2.
type HashAlgorithm string

const (
	SHA256 HashAlgorithm = "SHA-256"
)

const (
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32
	// SaltSize is the salt length generated for each envelope.
	SaltSize = 32
	// MinSaltSize is the shortest salt DeriveKey accepts.
	MinSaltSize = 16
	// DefaultIterations is the PBKDF2 cost used for new envelopes.
	DefaultIterations = 100_000
	// MaxIterations caps the PBKDF2 cost read back from an envelope.
	MaxIterations = 10 * DefaultIterations
)

type pbkdf2KeyDerivation struct {
	hashes map[HashAlgorithm]func() hash.Hash
}

// NewKeyDerivation returns a PBKDF2 implementation of [KeyDerivation]. Only
// SHA-256 is registered.
func NewKeyDerivation() KeyDerivation {
	return &pbkdf2KeyDerivation{
		hashes: map[HashAlgorithm]func() hash.Hash{
			SHA256: sha256.New,
		},
	}
}

// DeriveKey implements [KeyDerivation].
func (k *pbkdf2KeyDerivation) DeriveKey(secret, salt []byte, iterations int, hashAlg HashAlgorithm) ([]byte, error) {
	newHash, ok := k.hashes[hashAlg]
	if !ok {
		return nil, fmt.Errorf("%w: hash %q is not available", ErrKeyDerivation, hashAlg)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrKeyDerivation)
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, need at least %d", ErrKeyDerivation, len(salt), MinSaltSize)
	}
	if iterations <= 0 || iterations > MaxIterations {
		return nil, fmt.Errorf("%w: iterations must be in 1..%d, got %d", ErrKeyDerivation, MaxIterations, iterations)
	}

	return pbkdf2.Key(secret, salt, iterations, KeySize, newHash), nil
}
