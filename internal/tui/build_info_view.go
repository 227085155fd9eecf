// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"cmp"
	"fmt"

	"github.com/MKhiriev/go-case-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application: go-case-vault\nVersion: %s\nDate: %s\nCommit: %s",
		cmp.Or(info.BuildVersion(), models.BuildValueUnknown),
		info.BuildDate(),
		info.BuildCommit(),
	)

	return renderPage("ABOUT", body, "esc: back")
}
