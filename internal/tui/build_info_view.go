// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RenderBuildInfo renders the version page printed by the version command.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-pass-vault\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("BUILD INFO", b.String(), "")
}
