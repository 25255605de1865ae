// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/jongio/script-core/procutil"
)

// pipePair is one inter-stage OS pipe. Both ends exist before either
// adjacent stage spawns, so a fast-exiting upstream stage cannot lose
// output to a reader that is not ready yet.
type pipePair struct {
	r, w *os.File
}

func closePairs(pairs []pipePair) {
	for _, pp := range pairs {
		if pp.r != nil {
			_ = pp.r.Close()
		}
		if pp.w != nil {
			_ = pp.w.Close()
		}
	}
}

// runNative executes the chain by wiring OS pipes between stages.
//
// The order of operations matters: allocate every pipe, spawn every
// stage front to back, close the parent's copies of the pipe ends, then
// start the input-forwarding task and wait. A parent-held write end
// outliving its stage would keep the downstream reader from ever seeing
// EOF.
func (p *Pipeline) runNative(ctx context.Context, capture bool) (*Result, error) {
	n := len(p.stages)

	pipes := make([]pipePair, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			closePairs(pipes[:i])
			return nil, &PipeIOError{Role: "pipe", Err: err}
		}
		pipes[i] = pipePair{r: r, w: w}
	}

	head := p.stages[0]
	var stdinR, stdinW *os.File
	if head.inKind == inputLiteral {
		var err error
		stdinR, stdinW, err = os.Pipe()
		if err != nil {
			closePairs(pipes)
			return nil, &PipeIOError{Role: "pipe", Err: err}
		}
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	combined := &syncBuffer{}

	cmds := make([]*exec.Cmd, n)
	for i, stage := range p.stages {
		cmd := exec.CommandContext(ctx, stage.program, stage.args...)
		cmd.Dir = stage.dir
		cmd.Env = buildEnv(stage)

		// CommandContext alone kills only the direct child on
		// cancellation; a canceled shell stage would leave its
		// grandchildren running.
		cmd.Cancel = func() error {
			return procutil.TerminateTree(cmd.Process.Pid)
		}

		switch {
		case i > 0:
			cmd.Stdin = pipes[i-1].r
		case stage.inKind == inputLiteral:
			cmd.Stdin = stdinR
		case stage.inKind == inputReader:
			// os/exec forwards the reader and tolerates a child that
			// stops reading early, same as the literal-input path.
			cmd.Stdin = stage.reader
		default:
			// nil Stdin reads from the null device: deterministic,
			// never the caller's terminal.
		}

		if i < n-1 {
			switch p.modes[i] {
			case ModeStderr:
				cmd.Stdout = os.Stdout
				cmd.Stderr = pipes[i].w
			case ModeBoth:
				// Same file for both streams merges them at the OS
				// level; interleaving is best-effort.
				cmd.Stdout = pipes[i].w
				cmd.Stderr = pipes[i].w
			default:
				cmd.Stdout = pipes[i].w
				cmd.Stderr = os.Stderr
			}
		} else if capture {
			cmd.Stdout = io.MultiWriter(&stdoutBuf, combined)
			cmd.Stderr = io.MultiWriter(&stderrBuf, combined)
		} else if p.streamOut != nil {
			cmd.Stdout = p.streamOut
			cmd.Stderr = os.Stderr
		} else {
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
		}

		cmds[i] = cmd
	}

	for i, cmd := range cmds {
		plog.WithStage(i).Debug("starting stage", "program", p.stages[i].program)
		if err := cmd.Start(); err != nil {
			closePairs(pipes)
			if stdinR != nil {
				_ = stdinR.Close()
				_ = stdinW.Close()
			}
			// Already-spawned stages will exit on their own once their
			// pipes break; reap them without blocking the caller.
			for _, started := range cmds[:i] {
				go func(c *exec.Cmd) { _ = c.Wait() }(started)
			}
			return nil, &LaunchError{Stage: i, Program: p.stages[i].program, Err: err}
		}
	}

	// The children hold their own copies of every pipe end now.
	closePairs(pipes)
	if stdinR != nil {
		_ = stdinR.Close()
	}

	var wg sync.WaitGroup
	var inputErr error
	if stdinW != nil {
		wg.Add(1)
		go func(data []byte) {
			defer wg.Done()
			_, err := stdinW.Write(data)
			_ = stdinW.Close()
			if err != nil && !isBrokenPipe(err) {
				inputErr = &PipeIOError{Role: "input", Err: err}
			}
		}(head.literal)
	}

	// Every stage is waited on regardless of earlier failures; cleanup
	// takes priority over fast-fail.
	statuses := make([]Status, n)
	var ioErr error
	for i, cmd := range cmds {
		err := cmd.Wait()
		statuses[i] = newStatus(cmd.ProcessState)
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) && ioErr == nil {
			ioErr = &PipeIOError{Role: "capture", Err: err}
		}
		plog.WithStage(i).Debug("stage exited", "status", statuses[i].String())
	}
	wg.Wait()
	if ioErr == nil {
		ioErr = inputErr
	}

	res := &Result{Statuses: statuses}
	if capture {
		res.Stdout = stdoutBuf.Bytes()
		res.Stderr = stderrBuf.Bytes()
		res.Combined = combined.Bytes()
	}

	for i, s := range statuses {
		if !s.Success() {
			return res, &StageExitError{Stage: i, Status: s, Statuses: statuses}
		}
	}
	if ioErr != nil {
		return res, ioErr
	}
	return res, nil
}

// buildEnv resolves a stage's environment: overrides merged over the
// inherited environment, or only the overrides when ClearEnv is set.
// Returns nil (inherit as-is) when there is nothing to change.
func buildEnv(c *Cmd) []string {
	if !c.clearEnv && len(c.env) == 0 {
		return nil
	}
	env := make([]string, 0, len(c.env))
	if !c.clearEnv {
		env = append(env, os.Environ()...)
	}
	for _, v := range c.env {
		env = append(env, v.Key+"="+v.Value)
	}
	return env
}

// isBrokenPipe reports whether err means the reader went away. A
// downstream stage that stops reading early (head, grep -q) is normal
// pipeline behavior, not a failure.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
