// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package editor opens files in the user's preferred text editor,
// resolved from the EDITOR and VISUAL environment variables with a
// per-platform fallback list.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/jongio/script-core/echo"
)

// Options configures how a file is opened.
type Options struct {
	// Editor overrides environment-based detection.
	Editor string

	// Wait blocks until the editor process exits. GUI editors that
	// detach immediately (like VS Code) are told to wait too.
	Wait bool

	// Line positions the cursor, for editors that support it.
	Line int
}

// Open opens path in the detected editor and waits for it to close.
func Open(path string) error {
	return OpenWithOptions(path, Options{Wait: true})
}

// OpenWithOptions opens path with explicit options.
func OpenWithOptions(path string, opts Options) error {
	editor := opts.Editor
	if editor == "" {
		editor = Detect()
	}
	if editor == "" {
		return fmt.Errorf("open %s: no editor found, set EDITOR or VISUAL", path)
	}

	args := buildArgs(editor, path, opts)

	echo.New().
		Styled("edit", echo.BrightBlack).
		Styled(editor, echo.Bold, echo.Cyan).
		Put(strings.Join(quoteAll(args), " ")).
		End()

	cmd := exec.Command(editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if opts.Wait {
		return cmd.Run()
	}
	return cmd.Start()
}

// editorName limits environment-supplied editors to bare command names,
// so a crafted EDITOR value cannot smuggle arguments.
var editorName = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Detect returns the editor to use, or "" when none is available.
// EDITOR wins over VISUAL; both must resolve on PATH.
func Detect() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		candidate := os.Getenv(env)
		if candidate == "" || !editorName.MatchString(candidate) {
			continue
		}
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	for _, candidate := range platformCandidates() {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func platformCandidates() []string {
	if runtime.GOOS == "windows" {
		return []string{"code", "notepad"}
	}
	return []string{"nano", "vim", "vi", "code"}
}

// buildArgs renders the editor invocation, including the line-number
// syntax for editors known to support one.
func buildArgs(editor, path string, opts Options) []string {
	base := strings.TrimSuffix(strings.ToLower(editor), ".exe")

	if opts.Line > 0 {
		switch base {
		case "vim", "nvim", "vi", "nano", "emacs":
			return []string{fmt.Sprintf("+%d", opts.Line), path}
		case "code", "code-insiders":
			args := []string{"--goto", fmt.Sprintf("%s:%d", path, opts.Line)}
			if opts.Wait {
				args = append(args, "--wait")
			}
			return args
		}
	}

	if opts.Wait && (base == "code" || base == "code-insiders") {
		return []string{"--wait", path}
	}
	return []string{path}
}

func quoteAll(args []string) []string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = echo.Quote(arg)
	}
	return quoted
}
