// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	info := New("scriptctl")

	if info.Name != "scriptctl" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Version != "0.0.0-dev" {
		t.Errorf("Version = %q, want dev default", info.Version)
	}
}

func TestString(t *testing.T) {
	info := &Info{Name: "scriptctl", Version: "1.2.3", GitCommit: "abc1234", BuildDate: "2026-08-29"}

	want := "scriptctl version 1.2.3 (commit: abc1234, built: 2026-08-29)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func runVersionCommand(t *testing.T, info *Info, args ...string) string {
	t.Helper()
	cmd := NewCommand(info)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return out.String()
}

func TestCommand(t *testing.T) {
	info := &Info{Name: "scriptctl", Version: "1.2.3", GitCommit: "abc1234", BuildDate: "2026-08-29"}

	if got := runVersionCommand(t, info); !strings.Contains(got, "scriptctl version 1.2.3") {
		t.Errorf("output = %q", got)
	}

	if got := runVersionCommand(t, info, "--quiet"); strings.TrimSpace(got) != "1.2.3" {
		t.Errorf("quiet output = %q, want bare version", got)
	}
}

func TestCommandJSON(t *testing.T) {
	info := &Info{Name: "scriptctl", Version: "1.2.3", GitCommit: "abc1234", BuildDate: "2026-08-29"}

	got := runVersionCommand(t, info, "--json")

	var decoded Info
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != *info {
		t.Errorf("decoded = %+v, want %+v", decoded, *info)
	}
}
