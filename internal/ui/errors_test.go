package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-snapshot-keeper/internal/adapter"
	"github.com/MKhiriev/go-snapshot-keeper/internal/crypto"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

func TestHumanizeError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "wrong pin",
			err:  fmt.Errorf("open: %w", crypto.ErrAuthentication),
			want: "incorrect PIN or corrupted backup",
		},
		{
			name: "not confirmed",
			err:  service.ErrRestoreNotConfirmed,
			want: "restore cancelled",
		},
		{
			name: "network",
			err:  fmt.Errorf("%w: dial tcp 127.0.0.1:1: connect: connection refused", adapter.ErrUpload),
			want: networkUnavailable + " (retryable)",
		},
		{
			name: "upload status",
			err:  fmt.Errorf("%w: status 500", adapter.ErrUpload),
			want: "uploading the backup failed, please retry (retryable)",
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: "backup operation failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeError(tt.err))
		})
	}
}
