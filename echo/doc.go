// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package echo is the presentation sink for script-core: every command,
// pipeline, and filesystem operation announces itself through this package
// before it runs, so scripts read like a shell session transcript.
//
// Output goes to stderr as a single styled line per operation:
//
//	e := echo.New()
//	e.Styled("cmd", echo.BrightBlack)
//	e.Styled("ls", echo.Bold, echo.Cyan)
//	e.Styled("-la", echo.Bold, echo.Underline)
//	e.End()
//
// # Disabling echo
//
// Setting the NO_ECHO environment variable suppresses all echo output
// globally, regardless of per-call settings. SetEnabled(false) does the
// same programmatically. Colors are dropped when NO_COLOR is set or when
// stderr is not a terminal (golang.org/x/term detection).
//
// # Display quoting
//
// Quote renders an argument for human eyes: arguments containing
// whitespace, quotes, control characters, or shell metacharacters are
// wrapped in quotes with control characters escaped. This is display
// formatting only; it is never passed to a shell.
package echo
