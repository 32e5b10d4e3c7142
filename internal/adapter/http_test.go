// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testContainer = "friends"
	testToken     = "sv=2024&sig=abc"
	testHashKey   = "testhashkey"
)

// fakeObjectStore is an in-memory HTTP object store speaking the same
// routes as httpBlobStore. pageSize > 0 splits listings into pages.
type fakeObjectStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	headers  []http.Header
	pageSize int
}

func newFakeObjectStore(t *testing.T) (*fakeObjectStore, *httptest.Server) {
	t.Helper()
	f := &fakeObjectStore{objects: map[string][]byte{}}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.headers = append(f.headers, r.Header.Clone())
			f.mu.Unlock()
			if r.Header.Get("Authorization") != "Bearer "+testToken {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Put("/{container}/{key}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.objects[chi.URLParam(r, "key")] = body
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/{container}/{key}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		body, ok := f.objects[chi.URLParam(r, "key")]
		f.mu.Unlock()
		if !ok {
			utils.WriteError(w, "blob not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	})
	r.Delete("/{container}/{key}", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		f.mu.Lock()
		_, ok := f.objects[key]
		delete(f.objects, key)
		f.mu.Unlock()
		if !ok {
			utils.WriteError(w, "blob not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	r.Get("/{container}", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		f.mu.Lock()
		var keys []string
		for k := range f.objects {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		f.mu.Unlock()
		sort.Strings(keys)

		resp := listResponse{Keys: keys}
		if f.pageSize > 0 {
			start := 0
			if m := r.URL.Query().Get("marker"); m != "" {
				start = sort.SearchStrings(keys, m)
			}
			end := min(start+f.pageSize, len(keys))
			resp.Keys = keys[start:end]
			if end < len(keys) {
				resp.Next = keys[end]
			}
		}
		_, _ = utils.WriteJSON(w, resp, http.StatusOK)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeObjectStore) lastHeader() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.headers[len(f.headers)-1]
}

// newTestStore creates an httpBlobStore pointed at serverURL.
func newTestStore(t *testing.T, serverURL, hashKey string) *httpBlobStore {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		Container:      testContainer,
		Token:          testToken,
		RequestTimeout: 5 * time.Second,
	}
	appCfg := config.ClientApp{HashKey: hashKey}

	s, err := NewHTTPBlobStore(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return s.(*httpBlobStore)
}

// statusServer answers every request with status and body.
func statusServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── NewHTTPBlobStore ────────────────────────────────────────────────────────

func TestNewHTTPBlobStore_InvalidConfig(t *testing.T) {
	_, err := NewHTTPBlobStore(config.ClientAdapter{Container: "c"}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPBlobStore(config.ClientAdapter{HTTPAddress: "localhost:8080", Container: " / "}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "  https://store.example.com/  ", want: "https://store.example.com"},
		{in: "https://store.example.com/v1/", want: "https://store.example.com/v1"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Put ─────────────────────────────────────────────────────────────────────

func TestPut_Success(t *testing.T) {
	fake, srv := newFakeObjectStore(t)
	s := newTestStore(t, srv.URL, testHashKey)
	body := []byte(`{"encrypted":false,"data":"{}"}`)

	err := s.Put(context.Background(), "auto_backup_1700000000000.json", body)

	require.NoError(t, err)
	assert.Equal(t, body, fake.objects["auto_backup_1700000000000.json"])

	h := fake.lastHeader()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, utils.HashString(string(body), testHashKey), h.Get(utils.HashHeader))
	assert.Equal(t, utils.DefaultUserAgent, h.Get("User-Agent"))
}

func TestPut_NoHashHeaderWithoutKey(t *testing.T) {
	fake, srv := newFakeObjectStore(t)
	s := newTestStore(t, srv.URL, "")

	require.NoError(t, s.Put(context.Background(), "k.json", []byte("{}")))
	assert.Empty(t, fake.lastHeader().Get(utils.HashHeader))
}

func TestPut_ServerError(t *testing.T) {
	srv := statusServer(t, http.StatusInternalServerError, "boom")
	s := newTestStore(t, srv.URL, "")

	err := s.Put(context.Background(), "k.json", []byte("{}"))

	assert.ErrorIs(t, err, ErrUpload)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestPut_Unauthorized(t *testing.T) {
	_, srv := newFakeObjectStore(t)
	s := newTestStore(t, srv.URL, "")
	s.token = "wrong"

	err := s.Put(context.Background(), "k.json", []byte("{}"))

	assert.ErrorIs(t, err, ErrUpload)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPut_InvalidKey(t *testing.T) {
	_, srv := newFakeObjectStore(t)
	s := newTestStore(t, srv.URL, "")

	for _, key := range []string{"", "  ", "a/b.json"} {
		err := s.Put(context.Background(), key, []byte("{}"))
		assert.ErrorIs(t, err, ErrUpload)
		assert.ErrorIs(t, err, ErrInvalidKey)
	}
}

func TestPut_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s := newTestStore(t, url, "")
	err := s.Put(context.Background(), "k.json", []byte("{}"))

	assert.ErrorIs(t, err, ErrUpload)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	fake, srv := newFakeObjectStore(t)
	fake.objects["k.json"] = []byte(`{"v":1}`)
	s := newTestStore(t, srv.URL, "")

	got, err := s.Get(context.Background(), "k.json")

	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(got))
}

func TestGet_NotFound(t *testing.T) {
	_, srv := newFakeObjectStore(t)
	s := newTestStore(t, srv.URL, "")

	_, err := s.Get(context.Background(), "missing.json")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrDownload)
}

func TestGet_OtherFailure(t *testing.T) {
	srv := statusServer(t, http.StatusForbidden, "expired sas")
	s := newTestStore(t, srv.URL, "")

	_, err := s.Get(context.Background(), "k.json")

	assert.ErrorIs(t, err, ErrDownload)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_FiltersByPrefix(t *testing.T) {
	fake, srv := newFakeObjectStore(t)
	for _, k := range []string{"auto_backup_1.json", "auto_backup_2.json", "manual_backup_3.json"} {
		fake.objects[k] = []byte("{}")
	}
	s := newTestStore(t, srv.URL, "")

	keys, err := s.List(context.Background(), "auto_backup")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"auto_backup_1.json", "auto_backup_2.json"}, keys)
}

func TestList_FollowsPages(t *testing.T) {
	fake, srv := newFakeObjectStore(t)
	fake.pageSize = 2
	want := []string{"p_1.json", "p_2.json", "p_3.json", "p_4.json", "p_5.json"}
	for _, k := range want {
		fake.objects[k] = []byte("{}")
	}
	s := newTestStore(t, srv.URL, "")

	keys, err := s.List(context.Background(), "p_")

	require.NoError(t, err)
	assert.Equal(t, want, keys)
}

func TestList_Empty(t *testing.T) {
	_, srv := newFakeObjectStore(t)
	s := newTestStore(t, srv.URL, "")

	keys, err := s.List(context.Background(), "auto_backup")

	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestList_BadBody(t *testing.T) {
	srv := statusServer(t, http.StatusOK, "<EnumerationResults/>")
	s := newTestStore(t, srv.URL, "")

	_, err := s.List(context.Background(), "auto_backup")

	assert.ErrorIs(t, err, ErrList)
}

func TestList_ServerError(t *testing.T) {
	srv := statusServer(t, http.StatusBadGateway, "")
	s := newTestStore(t, srv.URL, "")

	_, err := s.List(context.Background(), "auto_backup")

	assert.ErrorIs(t, err, ErrList)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Idempotent(t *testing.T) {
	fake, srv := newFakeObjectStore(t)
	fake.objects["k.json"] = []byte("{}")
	s := newTestStore(t, srv.URL, "")

	require.NoError(t, s.Delete(context.Background(), "k.json"))
	require.NoError(t, s.Delete(context.Background(), "k.json"))
	assert.Empty(t, fake.objects)
}

func TestDelete_NeverExisted(t *testing.T) {
	_, srv := newFakeObjectStore(t)
	s := newTestStore(t, srv.URL, "")

	assert.NoError(t, s.Delete(context.Background(), "ghost.json"))
}

func TestDelete_ServerError(t *testing.T) {
	srv := statusServer(t, http.StatusServiceUnavailable, "throttled")
	s := newTestStore(t, srv.URL, "")

	err := s.Delete(context.Background(), "k.json")

	assert.ErrorIs(t, err, ErrDelete)
	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := statusServer(t, http.StatusTeapot, "")
	s := newTestStore(t, srv.URL, "")

	err := s.Put(context.Background(), "k.json", []byte("{}"))

	require.ErrorIs(t, err, ErrUpload)
	assert.Contains(t, err.Error(), "http 418")
}
