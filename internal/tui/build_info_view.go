// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// RenderBuildInfo renders the version page printed by the keeper CLI.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-snapshot-keeper\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "")
}
