// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import (
	"context"
	"io"
)

// inputKind discriminates a stage's input source. Exactly one is active
// at spawn time.
type inputKind int

const (
	inputNone inputKind = iota
	inputLiteral
	inputReader
	inputUpstream
)

// envVar is one environment override. Overrides keep insertion order so
// echoed chains read the way they were written.
type envVar struct {
	Key   string
	Value string
}

// Cmd describes one process invocation: program, arguments, working
// directory and environment overrides, plus its input source. Build it
// with New and the fluent methods, then execute it directly or chain it
// into a Pipeline. A Cmd executes at most once.
type Cmd struct {
	program  string
	args     []string
	dir      string
	env      []envVar
	clearEnv bool
	quiet    bool

	inKind  inputKind
	literal []byte
	reader  io.Reader

	consumed bool
}

// New creates a command for the given program and arguments.
func New(program string, args ...string) *Cmd {
	return &Cmd{
		program: program,
		args:    append([]string(nil), args...),
	}
}

// Arg appends a single argument.
func (c *Cmd) Arg(arg string) *Cmd {
	c.args = append(c.args, arg)
	return c
}

// Args appends multiple arguments.
func (c *Cmd) Args(args ...string) *Cmd {
	c.args = append(c.args, args...)
	return c
}

// Env sets an environment variable for this command, merged over the
// inherited environment. Setting the same key again replaces the value.
func (c *Cmd) Env(key, value string) *Cmd {
	for i := range c.env {
		if c.env[i].Key == key {
			c.env[i].Value = value
			return c
		}
	}
	c.env = append(c.env, envVar{Key: key, Value: value})
	return c
}

// Dir sets the working directory. Unset means the caller's current
// directory.
func (c *Cmd) Dir(dir string) *Cmd {
	c.dir = dir
	return c
}

// ClearEnv drops the inherited environment; the child sees only the
// variables set with Env.
func (c *Cmd) ClearEnv() *Cmd {
	c.clearEnv = true
	return c
}

// Quiet suppresses echo output for this command.
func (c *Cmd) Quiet() *Cmd {
	c.quiet = true
	return c
}

// Input attaches literal bytes as the command's stdin. Without input the
// command reads from an empty stdin, never from the caller's terminal.
func (c *Cmd) Input(data []byte) *Cmd {
	c.inKind = inputLiteral
	c.literal = data
	return c
}

// InputString attaches a literal string as the command's stdin.
func (c *Cmd) InputString(s string) *Cmd {
	return c.Input([]byte(s))
}

// InputReader streams the command's stdin from r, so large inputs never
// need to be held in memory. The reader is drained when the command
// runs; a downstream consumer that exits early is tolerated the same
// way it is for literal input.
func (c *Cmd) InputReader(r io.Reader) *Cmd {
	c.inKind = inputReader
	c.reader = r
	c.literal = nil
	return c
}

// Pipe starts a pipeline feeding this command's stdout into next's
// stdin. Use the returned Pipeline's PipeStderr or PipeBoth to change
// what the new link carries.
func (c *Cmd) Pipe(next *Cmd) *Pipeline {
	p := &Pipeline{stages: []*Cmd{c}}
	return p.Pipe(next)
}

// pipeline wraps the command as a single-stage pipeline.
func (c *Cmd) pipeline() *Pipeline {
	return &Pipeline{stages: []*Cmd{c}}
}

// Run executes the command, inheriting the caller's stdout and stderr.
func (c *Cmd) Run(ctx context.Context) error {
	return c.pipeline().Run(ctx)
}

// Output executes the command and returns its stdout as text. Returns a
// *DecodeError when the output is not valid UTF-8.
func (c *Cmd) Output(ctx context.Context) (string, error) {
	return c.pipeline().Output(ctx)
}

// OutputBytes executes the command and returns its raw stdout.
func (c *Cmd) OutputBytes(ctx context.Context) ([]byte, error) {
	return c.pipeline().OutputBytes(ctx)
}

// Capture executes the command and returns stdout, stderr, and the
// combined stream along with the exit status.
func (c *Cmd) Capture(ctx context.Context) (*Result, error) {
	return c.pipeline().Capture(ctx)
}

// StreamTo executes the command, writing its stdout to w as it is
// produced instead of buffering it.
func (c *Cmd) StreamTo(ctx context.Context, w io.Writer) error {
	return c.pipeline().StreamTo(ctx, w)
}
