// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// NonceSize is the AES-GCM nonce length (96 bits).
const NonceSize = 12

type aesGCMCipher struct{}

// NewSymmetricCipher returns the AES-256-GCM implementation of
// [SymmetricCipher].
func NewSymmetricCipher() SymmetricCipher {
	return &aesGCMCipher{}
}

// Encrypt implements [SymmetricCipher]. The output is ciphertext ‖ tag; the
// nonce is not prepended, callers store it separately.
func (c *aesGCMCipher) Encrypt(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt implements [SymmetricCipher].
func (c *aesGCMCipher) Decrypt(key, nonce, ciphertextWithTag []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertextWithTag) < gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrAuthentication)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertextWithTag, nil)
	if err != nil {
		// gcm.Open returns a single opaque error for any tag mismatch.
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: invalid key length: %d", ErrInvalidCipherInput, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: invalid nonce length: %d", ErrInvalidCipherInput, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %v", ErrInvalidCipherInput, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %v", ErrInvalidCipherInput, err)
	}

	return gcm, nil
}

// RandomBytes reads n bytes from the OS CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return b, nil
}
