package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the request header carrying the hex HMAC-SHA256 of the
// request body when the object store is configured with a hash key.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests. Hash instances are pooled per
// Hasher, so one Hasher can be shared by concurrent uploads.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey, or nil when hashKey is
// empty. A nil *Hasher is valid and reports itself as disabled.
//
//	h := utils.NewHasher(cfg.App.HashKey)
//	if h.Enabled() {
//	    req.SetHeader(utils.HashHeader, h.SumHex(body))
//	}
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Enabled reports whether h carries a key.
func (h *Hasher) Enabled() bool {
	return h != nil
}

// Sum computes an HMAC-SHA256 digest over data using a pooled hash.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex is Sum encoded as lowercase hex.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. Unlike Hasher it allocates a new HMAC per call,
// which suits one-off checks such as verifying a received header.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

func hashBytes(data []byte, hashKey string) []byte {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write(data)
	return mac.Sum(nil)
}
