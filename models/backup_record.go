// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupMode distinguishes user-initiated backups from timer-driven ones.
type BackupMode string

const (
	BackupModeManual    BackupMode = "manual"
	BackupModeAutomatic BackupMode = "automatic"
)

// BackupObject describes a backup stored in the remote blob store. CreatedAt
// is decoded from the object key, never taken from the store's metadata.
type BackupObject struct {
	Key       string
	Mode      BackupMode
	CreatedAt time.Time
}

// JournalEntry is one row of the local backup journal: the outcome of a
// manual backup or of an automatic run, successful or not.
type JournalEntry struct {
	ID        int64      `json:"id"`
	ObjectKey string     `json:"object_key"`
	Mode      BackupMode `json:"mode"`
	Encrypted bool       `json:"encrypted"`
	Outcome   string     `json:"outcome"`
	Detail    string     `json:"detail"`
	CreatedAt time.Time  `json:"created_at"`
}
