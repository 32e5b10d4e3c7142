package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/utils"
	"github.com/go-resty/resty/v2"
)

const retryWait = 500 * time.Millisecond

type httpBlobStore struct {
	client *utils.HTTPClient

	container string
	token     string
	hasher    *utils.Hasher

	logger *logger.Logger
}

// listResponse is the body of GET {base}/{container}?prefix=. Next, when
// present, is passed back as the marker query parameter to fetch the
// following page.
type listResponse struct {
	Keys []string `json:"keys"`
	Next string   `json:"next,omitempty"`
}

// NewHTTPBlobStore constructs an HTTP implementation of [BlobStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with the resolved base URL, request
// timeout and retry count. When appCfg.HashKey is set, uploads carry a
// HashSHA256 header with the HMAC of the body.
//
// The bearer token is passed through as-is; it is never inspected.
//
// Returns an error if the address is empty or cannot be parsed as a valid
// URL, or the container is empty.
func NewHTTPBlobStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (BlobStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	container := strings.Trim(strings.TrimSpace(adapterCfg.Container), "/")
	if container == "" {
		return nil, fmt.Errorf("invalid adapter container: empty")
	}

	client := utils.NewHTTPClient().WithRetries(adapterCfg.RetryCount, retryWait)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBlobStore{
		client:    client,
		container: container,
		token:     strings.TrimSpace(adapterCfg.Token),
		hasher:    utils.NewHasher(appCfg.HashKey),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Put implements [BlobStore]. It sends PUT {base}/{container}/{key} with
// content as a JSON body.
func (h *httpBlobStore) Put(ctx context.Context, key string, content []byte) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrUpload, err)
	}

	req := h.objectRequest(ctx, key).
		SetHeader("Content-Type", "application/json").
		SetBody(content)
	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(content))
	}

	resp, err := req.Put("/{container}/{key}")
	if err != nil {
		return fmt.Errorf("%w: put request: %w", ErrUpload, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrUpload, err)
	}

	h.logger.WithRunID(ctx).Debug().Str("key", key).Int("bytes", len(content)).Msg("object uploaded")
	return nil
}

// Get implements [BlobStore]. It sends GET {base}/{container}/{key}; a 404
// is reported as [ErrNotFound].
func (h *httpBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	resp, err := h.objectRequest(ctx, key).Get("/{container}/{key}")
	if err != nil {
		return nil, fmt.Errorf("%w: get request: %w", ErrDownload, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	return resp.Body(), nil
}

// List implements [BlobStore]. It sends GET {base}/{container}?prefix=p and
// follows "next" markers until the listing is exhausted.
func (h *httpBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	marker := ""

	for {
		req := h.authedRequest(ctx).
			SetPathParam("container", h.container).
			SetQueryParam("prefix", prefix)
		if marker != "" {
			req.SetQueryParam("marker", marker)
		}

		resp, err := req.Get("/{container}")
		if err != nil {
			return nil, fmt.Errorf("%w: list request: %w", ErrList, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrList, err)
		}

		var page listResponse
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("%w: decode list response: %w", ErrList, err)
		}
		for _, k := range page.Keys {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}

		if page.Next == "" || page.Next == marker {
			break
		}
		marker = page.Next
	}

	return keys, nil
}

// Delete implements [BlobStore]. It sends DELETE {base}/{container}/{key};
// 404 counts as success.
func (h *httpBlobStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	resp, err := h.objectRequest(ctx, key).Delete("/{container}/{key}")
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrDelete, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		h.logger.WithRunID(ctx).Debug().Str("key", key).Msg("object already absent")
		return nil
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	h.logger.WithRunID(ctx).Debug().Str("key", key).Msg("object deleted")
	return nil
}

func (h *httpBlobStore) objectRequest(ctx context.Context, key string) *resty.Request {
	return h.authedRequest(ctx).SetPathParams(map[string]string{
		"container": h.container,
		"key":       key,
	})
}

func (h *httpBlobStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
