package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-snapshot-keeper/internal/adapter"
	"github.com/MKhiriev/go-snapshot-keeper/internal/crypto"
	"github.com/MKhiriev/go-snapshot-keeper/internal/envelope"
	"github.com/MKhiriev/go-snapshot-keeper/internal/store"
)

// Kind classifies backup errors for presentation.
type Kind string

const (
	KindNone              Kind = ""
	KindMissingSecret     Kind = "missing_secret"
	KindAuthentication    Kind = "authentication"
	KindMalformedEnvelope Kind = "malformed_envelope"
	KindKeyDerivation     Kind = "key_derivation"
	KindUpload            Kind = "upload"
	KindDownload          Kind = "download"
	KindList              Kind = "list"
	KindDelete            Kind = "delete"
	KindNotFound          Kind = "not_found"
	KindNotConfigured     Kind = "not_configured"
	KindNotConfirmed      Kind = "not_confirmed"
	KindSnapshot          Kind = "snapshot"
	KindTimeout           Kind = "timeout"
	KindUnknown           Kind = "unknown"
)

// ErrorKind maps err onto the backup error taxonomy. Decryption failures are
// checked before transport failures so a wrong PIN is never reported as a
// network problem.
func ErrorKind(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, envelope.ErrMissingSecret):
		return KindMissingSecret
	case errors.Is(err, crypto.ErrAuthentication):
		return KindAuthentication
	case errors.Is(err, envelope.ErrMalformedEnvelope):
		return KindMalformedEnvelope
	case errors.Is(err, crypto.ErrKeyDerivation),
		errors.Is(err, crypto.ErrRandomSource):
		return KindKeyDerivation
	case errors.Is(err, ErrRestoreNotConfirmed):
		return KindNotConfirmed
	case errors.Is(err, ErrStoreNotConfigured):
		return KindNotConfigured
	case errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, store.ErrEnvelopeFileNotFound):
		return KindNotFound
	case errors.Is(err, adapter.ErrUpload):
		return KindUpload
	case errors.Is(err, adapter.ErrDownload):
		return KindDownload
	case errors.Is(err, adapter.ErrList):
		return KindList
	case errors.Is(err, adapter.ErrDelete):
		return KindDelete
	case errors.Is(err, store.ErrSnapshotNotFound),
		errors.Is(err, store.ErrInvalidSnapshot):
		return KindSnapshot
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	}
	return KindUnknown
}

// Retryable reports whether retrying the same operation may succeed.
func (k Kind) Retryable() bool {
	switch k {
	case KindUpload, KindDownload, KindList, KindDelete, KindTimeout:
		return true
	}
	return false
}

// UserMessage is the text shown to the user for an error of this kind. The
// underlying error message is shown alongside it by the caller.
func (k Kind) UserMessage() string {
	switch k {
	case KindNone:
		return ""
	case KindMissingSecret:
		return "a PIN is required for this backup"
	case KindAuthentication:
		return "incorrect PIN or corrupted backup"
	case KindMalformedEnvelope:
		return "invalid backup file"
	case KindKeyDerivation:
		return "encryption is unavailable on this system"
	case KindUpload:
		return "uploading the backup failed, please retry"
	case KindDownload:
		return "downloading the backup failed, please retry"
	case KindList:
		return "listing backups failed, please retry"
	case KindDelete:
		return "deleting the backup failed, please retry"
	case KindNotFound:
		return "backup not found"
	case KindNotConfigured:
		return "no backup storage is configured"
	case KindNotConfirmed:
		return "restore cancelled"
	case KindSnapshot:
		return "application state could not be read or written"
	case KindTimeout:
		return "the operation timed out, please retry"
	}
	return "backup operation failed"
}
