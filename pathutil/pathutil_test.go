// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/script-core/echo"
)

func TestMain(m *testing.M) {
	echo.SetEnabled(false)
	os.Exit(m.Run())
}

func TestWhich(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX tools being on PATH")
	}

	if got := Which("sh"); got == "" {
		t.Error("Which(sh) = \"\", want resolved path")
	}
	if got := Which("tool-that-does-not-exist-anywhere"); got != "" {
		t.Errorf("Which() = %q for missing tool", got)
	}

	if Has("tool-that-does-not-exist-anywhere") {
		t.Error("Has() = true for missing tool")
	}
}

func TestDirs(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("PATH", "/usr/bin"+sep+sep+"/usr/local/bin")

	got := Dirs()
	want := []string{"/usr/bin", "/usr/local/bin"}
	if len(got) != len(want) {
		t.Fatalf("Dirs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Dirs() = %v, want %v", got, want)
		}
	}
}

func TestPrepend(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("PATH", "/usr/bin")

	if err := Prepend("/opt/tools/bin"); err != nil {
		t.Fatalf("Prepend() error = %v", err)
	}
	if got := os.Getenv("PATH"); got != "/opt/tools/bin"+sep+"/usr/bin" {
		t.Errorf("PATH = %q after Prepend", got)
	}

	// Idempotent.
	if err := Prepend("/opt/tools/bin"); err != nil {
		t.Fatalf("Prepend() error = %v", err)
	}
	if got := strings.Count(os.Getenv("PATH"), "/opt/tools/bin"); got != 1 {
		t.Errorf("PATH contains /opt/tools/bin %d times, want 1", got)
	}
}

func TestAppend(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("PATH", "/usr/bin")

	if err := Append("/opt/extra"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if got := os.Getenv("PATH"); got != "/usr/bin"+sep+"/opt/extra" {
		t.Errorf("PATH = %q after Append", got)
	}
}

func TestContains(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")

	if !Contains("/usr/bin") {
		t.Error("Contains(/usr/bin) = false")
	}
	if !Contains("/usr/bin/") {
		t.Error("Contains() should clean trailing separators")
	}
	if Contains("/nowhere") {
		t.Error("Contains(/nowhere) = true")
	}
}
