// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger carries a fixed component attribute plus whatever
// execution context has been chained onto it, so a pipeline's debug
// trail can be filtered down to one stage or one task.
type ComponentLogger struct {
	slogger   *slog.Logger
	component string
}

// NewLogger creates a logger for one component ("pipeline",
// "taskfile").
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		slogger:   Logger().With("component", component),
		component: component,
	}
}

func (l *ComponentLogger) with(args ...any) *ComponentLogger {
	return &ComponentLogger{
		slogger:   l.slogger.With(args...),
		component: l.component,
	}
}

// WithStage attaches a zero-based pipeline stage index.
func (l *ComponentLogger) WithStage(index int) *ComponentLogger {
	return l.with("stage", index)
}

// WithTask attaches a taskfile task name.
func (l *ComponentLogger) WithTask(name string) *ComponentLogger {
	return l.with("task", name)
}

// WithFields attaches arbitrary alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return l.with(fields...)
}

// Component returns the component this logger was created for.
func (l *ComponentLogger) Component() string {
	return l.component
}

// Debug logs at debug level. Unlike the other levels it is gated on
// SCRIPT_DEBUG, since the executor calls it on every spawn and wait.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		l.slogger.Debug(msg, args...)
	}
}

// Info logs at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

// Warn logs at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

// Error logs at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}
