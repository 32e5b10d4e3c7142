// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Algorithm and key-derivation labels recorded in [EnvelopeMetadata]. They
// use the Web Crypto naming so envelopes stay interchangeable with other
// readers of the same format.
const (
	AlgorithmAESGCM    = "AES-GCM"
	KeyDerivationPBKDF = "PBKDF2"
	MetadataNone       = "none"

	// EnvelopeVersion is stamped into every envelope produced by this module.
	EnvelopeVersion = "1.0"
)

// BackupEnvelope is the at-rest and exported unit of a backup. Exactly one
// branch is populated: Data when Encrypted is false, EncryptedData+Salt+IV
// (all base64) when Encrypted is true.
//
// Field names are part of the interchange format and must not change.
type BackupEnvelope struct {
	Encrypted bool             `json:"encrypted"`
	Version   string           `json:"version"`
	Timestamp string           `json:"timestamp"`
	Metadata  EnvelopeMetadata `json:"metadata"`

	Data *string `json:"data,omitempty"`

	EncryptedData *string `json:"encryptedData,omitempty"`
	Salt          *string `json:"salt,omitempty"`
	IV            *string `json:"iv,omitempty"`
}

// EnvelopeMetadata records the exact parameters used to seal an envelope so
// that readers never have to guess them.
type EnvelopeMetadata struct {
	Algorithm     string        `json:"algorithm"`
	KeyDerivation string        `json:"keyDerivation"`
	Iterations    KDFIterations `json:"iterations"`
}

// KDFIterations is the PBKDF2 iteration count. It marshals as a JSON number
// and unmarshals from a number or from the string "none" (treated as zero),
// which plaintext envelopes written by other implementations may carry.
type KDFIterations int

func (k *KDFIterations) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*k = 0
		return nil
	case json.Number:
		return k.parse(value.String())
	case string:
		if strings.EqualFold(value, MetadataNone) || value == "" {
			*k = 0
			return nil
		}
		return k.parse(value)
	default:
		return fmt.Errorf("invalid iterations type %T", v)
	}
}

// parse accepts only whole numbers that fit in an int.
func (k *KDFIterations) parse(raw string) error {
	n, err := strconv.ParseInt(raw, 10, strconv.IntSize)
	if err != nil {
		return fmt.Errorf("invalid iterations %q: %w", raw, err)
	}
	*k = KDFIterations(n)
	return nil
}
