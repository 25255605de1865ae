// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDetectShellByExtension(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   string
		winAlt string // expected on Windows when it differs
	}{
		{"shell script", "deploy.sh", ShellBash, ""},
		{"zsh script", "setup.zsh", ShellZsh, ""},
		{"batch file", "install.bat", ShellCmd, ""},
		{"cmd file", "install.cmd", ShellCmd, ""},
		{"powershell script", "deploy.ps1", ShellPwsh, ShellPowerShell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			if runtime.GOOS == "windows" && tt.winAlt != "" {
				want = tt.winAlt
			}
			if got := DetectShell(tt.path); got != want {
				t.Errorf("DetectShell(%q) = %q, want %q", tt.path, got, want)
			}
		})
	}
}

func TestDetectShellShebang(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bash shebang", "#!/bin/bash\necho hi\n", "bash"},
		{"sh shebang", "#!/bin/sh\necho hi\n", "sh"},
		{"shebang with space", "#! /bin/zsh\necho hi\n", "zsh"},
		{"env shebang", "#!/usr/bin/env python3\nprint('hi')\n", "python3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "script")
			if err := os.WriteFile(path, []byte(tt.content), 0o700); err != nil {
				t.Fatalf("failed to write script: %v", err)
			}
			if got := DetectShell(path); got != tt.want {
				t.Errorf("DetectShell(%q) = %q, want %q", path, got, tt.want)
			}
		})
	}
}

func TestDetectShellDefault(t *testing.T) {
	// No extension, no shebang, file does not exist.
	got := DetectShell(filepath.Join(t.TempDir(), "missing"))
	if runtime.GOOS == "windows" {
		if got != ShellCmd {
			t.Errorf("DetectShell() = %q, want %q", got, ShellCmd)
		}
	} else if got != ShellBash {
		t.Errorf("DetectShell() = %q, want %q", got, ShellBash)
	}
}

func TestReadShebangNoShebang(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script")
	if err := os.WriteFile(path, []byte("echo no shebang\n"), 0o700); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	if got := ReadShebang(path); got != "" {
		t.Errorf("ReadShebang() = %q, want empty", got)
	}
}

func TestReadShebangEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0o700); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	if got := ReadShebang(path); got != "" {
		t.Errorf("ReadShebang() = %q, want empty", got)
	}
}

func TestDefaultShell(t *testing.T) {
	got := DefaultShell()
	if got == "" {
		t.Fatal("DefaultShell() returned empty string")
	}
	if runtime.GOOS != "windows" && got != ShellBash && got != ShellSh {
		t.Errorf("DefaultShell() = %q, want bash or sh", got)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"safe word", "hello", "hello"},
		{"path", "/usr/local/bin", "/usr/local/bin"},
		{"flag", "--count=3", "'--count=3'"},
		{"empty", "", "''"},
		{"space", "hello world", "'hello world'"},
		{"variable", "$HOME", "'$HOME'"},
		{"single quote", "it's", `'it'\''s'`},
		{"glob", "*.go", "'*.go'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.arg); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestJoinCommand(t *testing.T) {
	got := JoinCommand("grep", "-c", "hello world")
	want := "grep -c 'hello world'"
	if got != want {
		t.Errorf("JoinCommand() = %q, want %q", got, want)
	}
}
