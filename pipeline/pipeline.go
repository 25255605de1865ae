// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jongio/script-core/logutil"
)

var plog = logutil.NewLogger("pipeline")

// Pipeline is a linear chain of commands whose streams are wired
// together with OS pipes, without an intervening shell. Build it with
// Cmd.Pipe and the fluent methods, then execute it once with Run,
// Output, OutputBytes, or Capture.
type Pipeline struct {
	stages    []*Cmd
	modes     []PipeMode // modes[i] links stages[i] to stages[i+1]
	quiet     bool
	useShell  bool
	streamOut io.Writer
	consumed  bool
}

// Pipe appends a stage, feeding the previous stage's stdout into its
// stdin. Use PipeStderr, PipeBoth, or SetPipeMode to change what the
// new link carries.
func (p *Pipeline) Pipe(next *Cmd) *Pipeline {
	if p.quiet {
		next.quiet = true
	}
	next.inKind = inputUpstream
	next.literal = nil
	next.reader = nil
	p.stages = append(p.stages, next)
	p.modes = append(p.modes, ModeStdout)
	return p
}

// PipeStderr switches the most recent link to carry stderr instead of
// stdout.
func (p *Pipeline) PipeStderr() *Pipeline {
	return p.SetPipeMode(ModeStderr)
}

// PipeBoth switches the most recent link to carry stdout and stderr
// merged.
func (p *Pipeline) PipeBoth() *Pipeline {
	return p.SetPipeMode(ModeBoth)
}

// SetPipeMode sets the mode of the most recently added link. Calling it
// before any link exists is a caller error and does nothing beyond a
// logged warning.
func (p *Pipeline) SetPipeMode(mode PipeMode) *Pipeline {
	if len(p.modes) == 0 {
		plog.Warn("SetPipeMode called on a pipeline with no links")
		return p
	}
	p.modes[len(p.modes)-1] = mode
	return p
}

// Input attaches literal bytes as the first stage's stdin.
func (p *Pipeline) Input(data []byte) *Pipeline {
	p.stages[0].Input(data)
	return p
}

// InputString attaches a literal string as the first stage's stdin.
func (p *Pipeline) InputString(s string) *Pipeline {
	return p.Input([]byte(s))
}

// InputReader streams the first stage's stdin from r.
func (p *Pipeline) InputReader(r io.Reader) *Pipeline {
	p.stages[0].InputReader(r)
	return p
}

// Quiet suppresses echo output for every stage, including stages added
// later.
func (p *Pipeline) Quiet() *Pipeline {
	p.quiet = true
	for _, s := range p.stages {
		s.quiet = true
	}
	return p
}

// UseShell delegates execution to the platform shell, rendering the
// whole chain as a single shell command line. The result is observably
// identical to native execution except that the failing stage index is
// not reported. The rendered command line uses POSIX syntax; under
// cmd.exe or PowerShell the env:, cd:, and stderr-link constructs are
// not translated.
func (p *Pipeline) UseShell() *Pipeline {
	p.useShell = true
	return p
}

// Run executes the pipeline, inheriting the caller's stdout and stderr
// for the terminal stage.
func (p *Pipeline) Run(ctx context.Context) error {
	_, err := p.run(ctx, false)
	return err
}

// Output executes the pipeline and returns the terminal stage's stdout
// as text. Returns a *DecodeError when the output is not valid UTF-8;
// OutputBytes is the raw fallback.
func (p *Pipeline) Output(ctx context.Context) (string, error) {
	res, err := p.run(ctx, true)
	if err != nil {
		return "", err
	}
	if off := invalidUTF8(res.Stdout); off >= 0 {
		return "", &DecodeError{Offset: off}
	}
	return string(res.Stdout), nil
}

// OutputBytes executes the pipeline and returns the terminal stage's
// raw stdout.
func (p *Pipeline) OutputBytes(ctx context.Context) ([]byte, error) {
	res, err := p.run(ctx, true)
	if err != nil {
		return nil, err
	}
	return res.Stdout, nil
}

// Capture executes the pipeline and returns the terminal stage's
// stdout, stderr, and combined streams along with every stage's exit
// status.
func (p *Pipeline) Capture(ctx context.Context) (*Result, error) {
	return p.run(ctx, true)
}

// StreamTo executes the pipeline, writing the terminal stage's stdout
// to w as it is produced instead of buffering it. Stderr still goes to
// the caller's stderr. Combine with InputReader to move data through
// the chain with bounded memory.
func (p *Pipeline) StreamTo(ctx context.Context, w io.Writer) error {
	p.streamOut = w
	_, err := p.run(ctx, false)
	return err
}

// run validates the chain, echoes it, and dispatches to the native or
// shell execution strategy.
func (p *Pipeline) run(ctx context.Context, capture bool) (*Result, error) {
	if p.consumed {
		return nil, ErrConsumed
	}
	for _, s := range p.stages {
		if s.consumed {
			return nil, ErrConsumed
		}
	}
	p.consumed = true
	for _, s := range p.stages {
		s.consumed = true
	}

	for i, s := range p.stages {
		if s.program == "" {
			return nil, fmt.Errorf("stage %d: %w", i, ErrEmptyProgram)
		}
	}

	p.echoChain()

	if p.useShell || forceShell() {
		return p.runShell(ctx, capture)
	}
	return p.runNative(ctx, capture)
}

// invalidUTF8 returns the byte offset of the first invalid UTF-8
// sequence, or -1 when the input is valid.
func invalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
