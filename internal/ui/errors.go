// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ui

import (
	"strings"

	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

// networkUnavailable is shown instead of raw dial errors.
const networkUnavailable = "network is unavailable or the backup server is unreachable"

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}

// HumanizeError turns err into a one-line message for the terminal. The
// taxonomy message comes first, followed by a retry hint where it applies.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	kind := service.ErrorKind(err)
	switch kind {
	case service.KindAuthentication, service.KindMalformedEnvelope,
		service.KindMissingSecret, service.KindNotConfirmed:
		return kind.UserMessage()
	}

	msg := kind.UserMessage()
	if isNetworkError(err) {
		msg = networkUnavailable
	}
	if kind == service.KindUnknown {
		msg += ": " + err.Error()
	}
	if kind.Retryable() {
		msg += " " + Muted.Sprint("retryable")
	}
	return msg
}
