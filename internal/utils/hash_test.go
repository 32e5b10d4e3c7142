// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

const testHashKey = "test-secret-key"

func TestNewHasher_EmptyKeyDisabled(t *testing.T) {
	h := NewHasher("")

	if h.Enabled() {
		t.Fatal("expected hasher with empty key to be disabled")
	}
}

func TestHasher_MatchesDirectHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(`{"encrypted":true,"version":"1.0"}`)

	got := h.Sum(data)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	want := mac.Sum(nil)

	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", want, got)
	}
}

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("backup body")

	if h.SumHex(data) != h.SumHex(data) {
		t.Fatal("hash must be deterministic for the same input")
	}
}

func TestHasher_DifferentBodies(t *testing.T) {
	h := NewHasher(testHashKey)

	if h.SumHex([]byte("a")) == h.SumHex([]byte("b")) {
		t.Error("different bodies must produce different hashes")
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("backup body")

	if NewHasher("key-one").SumHex(data) == NewHasher("key-two").SumHex(data) {
		t.Error("different keys must produce different hashes for the same body")
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("shared body")
	want := h.SumHex(data)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.SumHex(data); got != want {
				t.Errorf("concurrent hash mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestHashString_MatchesHasher(t *testing.T) {
	data := "backup body"

	got := HashString(data, testHashKey)
	want := NewHasher(testHashKey).SumHex([]byte(data))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
	if _, err := hex.DecodeString(got); err != nil {
		t.Errorf("HashString must be hex: %v", err)
	}
}
