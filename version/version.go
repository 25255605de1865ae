// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package version provides shared version information and a reusable
// version command for CLIs built on script-core.
package version

import "fmt"

// Info holds version information for a tool. Version, BuildDate, and
// GitCommit are expected to be set via ldflags at build time.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

// New creates a new Info with default values.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   "0.0.0-dev",
		BuildDate: "unknown",
		GitCommit: "unknown",
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
