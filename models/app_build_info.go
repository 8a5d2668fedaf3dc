// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo identifies the go-pass-vault binary that is running. The
// values are set with -ldflags "-X main.buildVersion=..." at release time
// and stay empty in a plain go build.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns the build info of a binary. Any value may be empty.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: version,
		date:    date,
		commit:  commit,
	}
}

// BuildVersion returns the release tag, e.g. "v0.3.0".
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

// BuildDate returns the date the binary was built.
func (a AppBuildInfo) BuildDate() string {
	return a.date
}

// BuildCommit returns the git commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// String returns a one-line form for logs. A binary built without ldflags
// reports itself as a dev build.
func (a AppBuildInfo) String() string {
	if a.version == "" {
		return "go-pass-vault dev build"
	}

	s := "go-pass-vault " + a.version
	if a.commit != "" {
		s += fmt.Sprintf(" (commit %s)", a.commit)
	}
	return s
}
