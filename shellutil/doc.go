// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package shellutil provides shell detection, selection, and command
// building utilities for script-core.
//
// The pipeline engine normally wires processes together with OS pipes and
// never consults a shell; shellutil exists for the paths that do need one:
// the shell-fallback pipeline strategy (which renders an entire chain as a
// single "a | b | c" invocation) and taskfile steps written as shell
// strings or script paths.
//
// # Key Features
//
//   - Detect shell from file extension (.ps1 → pwsh, .sh → bash, .cmd → cmd)
//   - Parse shebang lines (#!/bin/bash, #!/usr/bin/env python3)
//   - Pick the best available default shell per platform (DefaultShell)
//   - POSIX single-quote escaping (Quote) and command rendering (JoinCommand)
//   - Shell identifier constants (ShellBash, ShellPwsh, ShellCmd, ShellZsh, ShellSh)
//
// # Shell Detection Priority
//
// The DetectShell function uses the following priority:
//  1. File extension (.ps1, .sh, .cmd, .bat, .zsh)
//  2. Shebang line (if present and parseable)
//  3. OS-specific default (cmd on Windows, bash on Unix)
//
// # Quoting
//
// Quote produces an argument that a POSIX shell parses back to the original
// string, using the single-quote-everything strategy ('it'\''s' for embedded
// quotes). This is execution quoting; display quoting for echo output lives
// in the echo package and follows different, readability-oriented rules.
//
// # Example Usage
//
//	shell := shellutil.DetectShell("deploy.sh")
//	// Returns: "bash"
//
//	cmdline := shellutil.JoinCommand("grep", "-c", "hello world")
//	// Returns: grep -c 'hello world'
//
//	sh := shellutil.DefaultShell()
//	// Returns: "bash" when available, else "sh" (Unix); pwsh/powershell/cmd (Windows)
package shellutil
