// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

// Prompter collects user input. It is satisfied by *tui.TUI.
type Prompter interface {
	// PromptPIN asks for a PIN, twice when withConfirmation is set.
	PromptPIN(ctx context.Context, title string, withConfirmation bool) (string, error)

	// ConfirmFunc returns the restore confirmation hook.
	ConfirmFunc() service.ConfirmFunc
}
