// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secretcache keeps the user's PIN in memory for the lifetime of the
// process so automatic backups can run without prompting. The PIN is held
// only as AES-GCM ciphertext under a random key that is generated once per
// cache and never leaves the process.
package secretcache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-snapshot-keeper/internal/crypto"
)

// ErrEmptySecret is returned by Store when asked to cache an empty string.
var ErrEmptySecret = errors.New("secret is empty")

// Cache is an in-memory holder for a single secret.
type Cache struct {
	cipher crypto.SymmetricCipher

	keyOnce sync.Once
	key     []byte
	keyErr  error

	mu         sync.Mutex
	nonce      []byte
	ciphertext []byte
}

// New returns an empty cache. The process key is generated lazily on the
// first Store.
func New() *Cache {
	return &Cache{cipher: crypto.NewSymmetricCipher()}
}

func (c *Cache) processKey() ([]byte, error) {
	c.keyOnce.Do(func() {
		c.key, c.keyErr = crypto.RandomBytes(crypto.KeySize)
	})
	return c.key, c.keyErr
}

// Store replaces any cached secret with secret.
func (c *Cache) Store(secret string) error {
	if secret == "" {
		return ErrEmptySecret
	}

	key, err := c.processKey()
	if err != nil {
		return fmt.Errorf("secret cache key: %w", err)
	}
	nonce, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		return fmt.Errorf("secret cache nonce: %w", err)
	}
	ct, err := c.cipher.Encrypt(key, nonce, []byte(secret))
	if err != nil {
		return fmt.Errorf("secret cache encrypt: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	wipe(c.ciphertext)
	c.nonce = nonce
	c.ciphertext = ct
	return nil
}

// Get returns the cached secret. The second result is false when nothing is
// cached or the stored ciphertext cannot be decrypted.
func (c *Cache) Get() (string, bool) {
	c.mu.Lock()
	if c.ciphertext == nil {
		c.mu.Unlock()
		return "", false
	}
	nonce := append([]byte(nil), c.nonce...)
	ct := append([]byte(nil), c.ciphertext...)
	c.mu.Unlock()

	key, err := c.processKey()
	if err != nil {
		return "", false
	}
	pt, err := c.cipher.Decrypt(key, nonce, ct)
	if err != nil {
		return "", false
	}
	defer wipe(pt)
	return string(pt), true
}

// Has reports whether a secret is currently cached.
func (c *Cache) Has() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ciphertext != nil
}

// Clear drops the cached secret. The process key is kept so later stores
// reuse it.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	wipe(c.ciphertext)
	c.ciphertext = nil
	c.nonce = nil
}

// String keeps the cache contents out of logs and %v output.
func (c *Cache) String() string {
	if c.Has() {
		return "secretcache.Cache{secret: [REDACTED]}"
	}
	return "secretcache.Cache{empty}"
}

// GoString keeps %#v output redacted as well.
func (c *Cache) GoString() string {
	return c.String()
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
