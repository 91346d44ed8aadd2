// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

const unknownBuildValue = "N/A"

// BuildInfo carries build-time metadata injected by linker flags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo substitutes N/A for every value the linker left empty.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// Print writes the build banner to w.
func (b BuildInfo) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}

func orUnknown(value string) string {
	if value == "" {
		return unknownBuildValue
	}
	return value
}
