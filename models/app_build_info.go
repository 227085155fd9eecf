// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"fmt"
	"strings"
)

// BuildValueUnknown stands in for build metadata that was not injected at
// link time.
const BuildValueUnknown = "N/A"

// AppBuildInfo identifies the binary a case vault component runs from.
// The release build injects the values with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...";
// a plain go build leaves them empty.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build info for the linker-injected values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

// BuildVersion returns the release version. It is empty for binaries that
// were not built by the release pipeline.
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

// BuildDate returns the build timestamp or [BuildValueUnknown].
func (a AppBuildInfo) BuildDate() string {
	return cmp.Or(a.date, BuildValueUnknown)
}

// BuildCommit returns the commit hash or [BuildValueUnknown].
func (a AppBuildInfo) BuildCommit() string {
	return cmp.Or(a.commit, BuildValueUnknown)
}

// Summary renders the build on one line, e.g.
// "v1.2.0 (commit abc123, built 2026-03-01)".
func (a AppBuildInfo) Summary() string {
	return fmt.Sprintf("%s (commit %s, built %s)", cmp.Or(a.version, BuildValueUnknown), a.BuildCommit(), a.BuildDate())
}
