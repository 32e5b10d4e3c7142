// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote object store used to keep backups.
//
// The primary abstraction is [BlobStore], a put/get/list/delete contract
// over keys. The package ships an HTTP implementation ([NewHTTPBlobStore])
// for generic authenticated object stores, a Google Cloud Storage
// implementation ([NewGCSBlobStore]) and an in-process map
// ([NewMemoryBlobStore]).
//
// Every failure is wrapped in one of the operation sentinels defined in
// errors.go ([ErrUpload], [ErrDownload], [ErrList], [ErrDelete]) or reported
// as [ErrNotFound], so callers can use [errors.Is] without knowing which
// backend is configured.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlobStore is a flat key/value object store.
type BlobStore interface {
	// Put stores content under key, replacing any existing object. Fails
	// with [ErrUpload].
	Put(ctx context.Context, key string, content []byte) error

	// Get returns the object stored under key. Fails with [ErrNotFound]
	// when the key does not exist and [ErrDownload] otherwise.
	Get(ctx context.Context, key string) ([]byte, error)

	// List returns every key starting with prefix. Order is unspecified;
	// callers that need chronological order must derive it from the keys.
	// Fails with [ErrList].
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes key. A key that is already absent is not an error.
	// Fails with [ErrDelete].
	Delete(ctx context.Context, key string) error
}

// ConnectivityChecker reports whether the remote store is reachable.
type ConnectivityChecker interface {
	Online(ctx context.Context) bool
}
