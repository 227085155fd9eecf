// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        AppBuildInfo
		wantVersion string
		wantSummary string
	}{
		{
			name:        "release build",
			info:        NewAppBuildInfo("v1.2.0", "2026-03-01", "abc123"),
			wantVersion: "v1.2.0",
			wantSummary: "v1.2.0 (commit abc123, built 2026-03-01)",
		},
		{
			name:        "plain go build",
			info:        NewAppBuildInfo("", "", ""),
			wantVersion: "",
			wantSummary: "N/A (commit N/A, built N/A)",
		},
		{
			name:        "whitespace from ldflags",
			info:        NewAppBuildInfo(" v2 ", "\t", "def\n"),
			wantVersion: "v2",
			wantSummary: "v2 (commit def, built N/A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantVersion, tt.info.BuildVersion())
			assert.Equal(t, tt.wantSummary, tt.info.Summary())
		})
	}
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Empty(t, info.BuildVersion())
	assert.Equal(t, BuildValueUnknown, info.BuildDate())
	assert.Equal(t, BuildValueUnknown, info.BuildCommit())
}
