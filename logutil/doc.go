// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// It carries the diagnostic channel of script-core: the pipeline executor and
// task runner emit debug events (pipe allocation, spawns, waits, retries)
// through this package, separate from the user-facing echo output.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("spawned stage", "index", i, "program", prog)
//	logutil.Info("task completed", "duration", elapsed)
//	logutil.Warn("retrying task", "attempt", n)
//	logutil.Error("task failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set SCRIPT_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"spawned stage","index":0}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=DEBUG msg="spawned stage" index=0
package logutil
