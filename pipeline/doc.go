// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pipeline executes commands and command chains the way a shell
// pipeline does, without invoking a shell.
//
// Commands are built fluently and echoed before they run, so scripts
// read like shell sessions while keeping typed errors:
//
//	out, err := pipeline.New("git", "status", "--short").Output(ctx)
//
//	err := pipeline.New("cat", "access.log").
//		Pipe(pipeline.New("grep", "500")).
//		Pipe(pipeline.New("wc", "-l")).
//		Run(ctx)
//
// # Stream Wiring
//
// Adjacent stages are connected with OS pipes allocated before any
// stage spawns. Each link carries the upstream stage's stdout by
// default; PipeStderr and PipeBoth switch a link to carry stderr or
// both streams merged. Data streams between processes with bounded
// memory regardless of volume.
//
// Literal input attached with Input feeds the first stage and is
// forwarded by a dedicated goroutine that closes stdin afterward, so
// the stage observes end-of-input. InputReader streams stdin from an
// io.Reader instead, for inputs too large to hold in memory. A
// downstream stage that stops reading early (head, grep -q) is
// tolerated, matching shell behavior. Without input, the first stage
// reads from the null device, never the caller's terminal.
//
// # Results and Errors
//
// Run inherits the caller's stdout and stderr. Output and OutputBytes
// capture the terminal stage's stdout; Capture returns stdout, stderr,
// and the combined stream plus every stage's exit status. StreamTo
// writes the terminal stdout to an io.Writer as it is produced, the
// unbuffered counterpart of Output. Any failing
// stage fails the pipeline, and StageExitError reports the lowest
// failing index with all statuses attached. Launch failures surface
// immediately as LaunchError without waiting on unrelated stages. Each
// Cmd and Pipeline executes at most once; a second run returns
// ErrConsumed.
//
// # Shell Fallback
//
// UseShell, or the SCRIPT_FORCE_SHELL environment variable, delegates
// the chain to the platform shell as a single command line with
// pipefail semantics where the shell supports them. Exit status and
// captured output match the native strategy.
//
// Echoing is controlled by the echo package and its NO_ECHO toggle;
// Quiet suppresses it per command or per pipeline.
package pipeline
