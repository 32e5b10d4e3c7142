// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope builds and opens [models.BackupEnvelope] values, the
// serialization unit wrapping an application snapshot for storage or export.
//
// Sealing with encryption generates a fresh 32-byte salt and 96-bit nonce,
// derives a key from the PIN with PBKDF2-SHA256 and encrypts the snapshot with
// AES-256-GCM. The parameters used are recorded in the envelope metadata so
// that Open never has to guess them.
package envelope

import "github.com/MKhiriev/go-snapshot-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_mock.go -package=mock

// Sealer seals snapshots into envelopes and opens them again.
type Sealer interface {
	// Seal wraps snapshotJSON. When encryptionRequired is true the secret
	// must be present and non-empty, otherwise [ErrMissingSecret] is
	// returned. When false, the snapshot is stored verbatim and secret is
	// ignored.
	Seal(snapshotJSON string, secret *string, encryptionRequired bool) (models.BackupEnvelope, error)

	// Open returns the snapshot JSON held by env. Encrypted envelopes need a
	// secret ([ErrMissingSecret]); a wrong secret or tampered payload yields
	// crypto.ErrAuthentication; missing or undecodable fields yield
	// [ErrMalformedEnvelope].
	Open(env models.BackupEnvelope, secret *string) (string, error)
}
