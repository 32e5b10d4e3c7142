package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type gcsBlobStore struct {
	client *storage.Client
	bucket *storage.BucketHandle
	folder string

	logger *logger.Logger
}

// NewGCSBlobStore constructs a Google Cloud Storage implementation of
// [BlobStore]. Objects live in adapterCfg.GCSBucket under the
// adapterCfg.Container folder, if one is set. Credentials come from
// adapterCfg.GCSCredentialsFile or, when empty, from application default
// credentials. Extra client options are appended last, which lets tests
// point the client at a fake endpoint.
func NewGCSBlobStore(ctx context.Context, adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...option.ClientOption) (BlobStore, error) {
	bucket := strings.TrimSpace(adapterCfg.GCSBucket)
	if bucket == "" {
		return nil, fmt.Errorf("invalid gcs bucket: empty")
	}

	var clientOpts []option.ClientOption
	if adapterCfg.GCSCredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(adapterCfg.GCSCredentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &gcsBlobStore{
		client: client,
		bucket: client.Bucket(bucket),
		folder: strings.Trim(strings.TrimSpace(adapterCfg.Container), "/"),
		logger: logger,
	}, nil
}

func (g *gcsBlobStore) objectName(key string) string {
	if g.folder == "" {
		return key
	}
	return g.folder + "/" + key
}

func (g *gcsBlobStore) keyFromObject(name string) string {
	if g.folder == "" {
		return name
	}
	return strings.TrimPrefix(name, g.folder+"/")
}

// Put implements [BlobStore].
func (g *gcsBlobStore) Put(ctx context.Context, key string, content []byte) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrUpload, err)
	}

	w := g.bucket.Object(g.objectName(key)).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return fmt.Errorf("%w: write object: %w", ErrUpload, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: finalize object: %w", ErrUpload, err)
	}

	g.logger.WithRunID(ctx).Debug().Str("key", key).Int("bytes", len(content)).Msg("object uploaded")
	return nil
}

// Get implements [BlobStore].
func (g *gcsBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	r, err := g.bucket.Object(g.objectName(key)).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("%w: open object: %w", ErrDownload, err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read object: %w", ErrDownload, err)
	}
	return content, nil
}

// List implements [BlobStore].
func (g *gcsBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	it := g.bucket.Objects(ctx, &storage.Query{Prefix: g.objectName(prefix)})

	var keys []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: iterate objects: %w", ErrList, err)
		}
		key := g.keyFromObject(attrs.Name)
		if strings.Contains(key, "/") {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Delete implements [BlobStore]. A missing object counts as deleted.
func (g *gcsBlobStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	err := g.bucket.Object(g.objectName(key)).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	g.logger.WithRunID(ctx).Debug().Str("key", key).Msg("object deleted")
	return nil
}
