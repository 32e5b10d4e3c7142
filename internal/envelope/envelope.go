// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/crypto"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// TimestampLayout matches the ISO-8601 form produced by JavaScript's
// Date.toISOString, always in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type envelopeSealer struct {
	kdf    crypto.KeyDerivation
	cipher crypto.SymmetricCipher

	iterations int
	now        func() time.Time
}

// Option customises a [Sealer] built by [NewSealer].
type Option func(*envelopeSealer)

// WithIterations overrides the PBKDF2 iteration count for new envelopes.
// Open always uses the count recorded in the envelope.
func WithIterations(n int) Option {
	return func(s *envelopeSealer) {
		s.iterations = n
	}
}

// WithClock overrides the clock used to stamp envelope timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *envelopeSealer) {
		s.now = now
	}
}

// NewSealer constructs a [Sealer] over the given primitives, defaulting to
// [crypto.DefaultIterations] and the wall clock.
func NewSealer(kdf crypto.KeyDerivation, cipher crypto.SymmetricCipher, opts ...Option) Sealer {
	s := &envelopeSealer{
		kdf:        kdf,
		cipher:     cipher,
		iterations: crypto.DefaultIterations,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seal implements [Sealer].
func (s *envelopeSealer) Seal(snapshotJSON string, secret *string, encryptionRequired bool) (models.BackupEnvelope, error) {
	env := models.BackupEnvelope{
		Version:   models.EnvelopeVersion,
		Timestamp: s.now().UTC().Format(TimestampLayout),
	}

	if !encryptionRequired {
		data := snapshotJSON
		env.Encrypted = false
		env.Data = &data
		env.Metadata = models.EnvelopeMetadata{
			Algorithm:     models.MetadataNone,
			KeyDerivation: models.MetadataNone,
			Iterations:    0,
		}
		return env, nil
	}

	if secret == nil || *secret == "" {
		return models.BackupEnvelope{}, ErrMissingSecret
	}

	salt, err := crypto.RandomBytes(crypto.SaltSize)
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("generate salt: %w", err)
	}
	nonce, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("generate iv: %w", err)
	}

	key, err := s.kdf.DeriveKey([]byte(*secret), salt, s.iterations, crypto.SHA256)
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("derive key: %w", err)
	}
	defer wipe(key)

	ciphertext, err := s.cipher.Encrypt(key, nonce, []byte(snapshotJSON))
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("encrypt snapshot: %w", err)
	}

	encData := base64.StdEncoding.EncodeToString(ciphertext)
	encSalt := base64.StdEncoding.EncodeToString(salt)
	encIV := base64.StdEncoding.EncodeToString(nonce)

	env.Encrypted = true
	env.EncryptedData = &encData
	env.Salt = &encSalt
	env.IV = &encIV
	env.Metadata = models.EnvelopeMetadata{
		Algorithm:     models.AlgorithmAESGCM,
		KeyDerivation: models.KeyDerivationPBKDF,
		Iterations:    models.KDFIterations(s.iterations),
	}

	return env, nil
}

// Open implements [Sealer].
func (s *envelopeSealer) Open(env models.BackupEnvelope, secret *string) (string, error) {
	if !env.Encrypted {
		if env.Data == nil {
			return "", fmt.Errorf("%w: plaintext envelope has no data", ErrMalformedEnvelope)
		}
		return *env.Data, nil
	}

	if secret == nil || *secret == "" {
		return "", ErrMissingSecret
	}

	ciphertext, salt, nonce, err := decodeEncryptedBranch(env)
	if err != nil {
		return "", err
	}

	key, err := s.kdf.DeriveKey([]byte(*secret), salt, int(env.Metadata.Iterations), crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	defer wipe(key)

	plaintext, err := s.cipher.Decrypt(key, nonce, ciphertext)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthentication) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return string(plaintext), nil
}

func decodeEncryptedBranch(env models.BackupEnvelope) (ciphertext, salt, nonce []byte, err error) {
	if env.EncryptedData == nil || env.Salt == nil || env.IV == nil {
		return nil, nil, nil, fmt.Errorf("%w: encrypted envelope needs encryptedData, salt and iv", ErrMalformedEnvelope)
	}
	if !strings.EqualFold(env.Metadata.Algorithm, models.AlgorithmAESGCM) {
		return nil, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedEnvelope, env.Metadata.Algorithm)
	}
	if !strings.EqualFold(env.Metadata.KeyDerivation, models.KeyDerivationPBKDF) {
		return nil, nil, nil, fmt.Errorf("%w: unsupported key derivation %q", ErrMalformedEnvelope, env.Metadata.KeyDerivation)
	}
	if env.Metadata.Iterations <= 0 || env.Metadata.Iterations > crypto.MaxIterations {
		return nil, nil, nil, fmt.Errorf("%w: iterations %d outside 1..%d", ErrMalformedEnvelope, env.Metadata.Iterations, crypto.MaxIterations)
	}

	if ciphertext, err = base64.StdEncoding.DecodeString(*env.EncryptedData); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode encryptedData: %v", ErrMalformedEnvelope, err)
	}
	if salt, err = base64.StdEncoding.DecodeString(*env.Salt); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode salt: %v", ErrMalformedEnvelope, err)
	}
	if nonce, err = base64.StdEncoding.DecodeString(*env.IV); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode iv: %v", ErrMalformedEnvelope, err)
	}

	if len(salt) < crypto.MinSaltSize {
		return nil, nil, nil, fmt.Errorf("%w: salt is %d bytes", ErrMalformedEnvelope, len(salt))
	}
	if len(nonce) != crypto.NonceSize {
		return nil, nil, nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrMalformedEnvelope, len(nonce), crypto.NonceSize)
	}

	return ciphertext, salt, nonce, nil
}

// Encode serialises env to its JSON interchange form.
func Encode(env models.BackupEnvelope) ([]byte, error) {
	b, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return b, nil
}

// Decode parses the JSON interchange form. Undecodable input is reported as
// [ErrMalformedEnvelope]; branch completeness is checked later by Open.
func Decode(b []byte) (models.BackupEnvelope, error) {
	var env models.BackupEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	return env, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
