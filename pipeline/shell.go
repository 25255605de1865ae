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
	"strings"

	"github.com/jongio/script-core/procutil"
	"github.com/jongio/script-core/shellutil"
)

// EnvForceShell routes every pipeline through the shell strategy when
// set, for platforms or environments where native pipe wiring is not
// wanted.
const EnvForceShell = "SCRIPT_FORCE_SHELL"

func forceShell() bool {
	_, ok := os.LookupEnv(EnvForceShell)
	return ok
}

// runShell executes the chain as a single shell command line. Exit
// status and captured output match the native strategy, but the shell
// reports one status for the whole chain, so a failing stage index is
// not available (StageExitError.Stage is -1).
//
// This strategy targets POSIX shells. With bash or zsh the script sets
// pipefail so any failing stage fails the chain; plain sh falls back to
// the last stage's status.
func (p *Pipeline) runShell(ctx context.Context, capture bool) (*Result, error) {
	shell := shellutil.DefaultShell()
	script := p.renderScript(shell)
	plog.Debug("running via shell", "shell", shell, "script", script)

	cmd := exec.CommandContext(ctx, shell, shellFlag(shell), script)
	cmd.Cancel = func() error {
		return procutil.TerminateTree(cmd.Process.Pid)
	}
	switch p.stages[0].inKind {
	case inputLiteral:
		cmd.Stdin = bytes.NewReader(p.stages[0].literal)
	case inputReader:
		cmd.Stdin = p.stages[0].reader
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	combined := &syncBuffer{}
	if capture {
		cmd.Stdout = io.MultiWriter(&stdoutBuf, combined)
		cmd.Stderr = io.MultiWriter(&stderrBuf, combined)
	} else if p.streamOut != nil {
		cmd.Stdout = p.streamOut
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &LaunchError{Stage: 0, Program: shell, Err: err}
		}
	}

	status := newStatus(cmd.ProcessState)
	res := &Result{Statuses: []Status{status}}
	if capture {
		res.Stdout = stdoutBuf.Bytes()
		res.Stderr = stderrBuf.Bytes()
		res.Combined = combined.Bytes()
	}
	if !status.Success() {
		return res, &StageExitError{Stage: -1, Status: status, Statuses: res.Statuses}
	}
	return res, nil
}

// shellFlag returns the option that makes a shell execute a command
// string: /c for cmd.exe, -c for every other supported shell.
func shellFlag(shell string) string {
	if shell == shellutil.ShellCmd {
		return "/c"
	}
	return "-c"
}

// renderScript renders the chain as one shell command line. Stderr-mode
// links use the fd-swap idiom (3>&1 1>&2 2>&3 3>&-), which routes the
// upstream stage's stdout to the caller's stderr rather than stdout; a
// known divergence of this strategy.
func (p *Pipeline) renderScript(shell string) string {
	var sb strings.Builder
	if len(p.stages) > 1 && (shell == shellutil.ShellBash || shell == shellutil.ShellZsh) {
		sb.WriteString("set -o pipefail; ")
	}
	for i, stage := range p.stages {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(renderStage(stage))
		if i < len(p.modes) {
			switch p.modes[i] {
			case ModeStderr:
				sb.WriteString(" 3>&1 1>&2 2>&3 3>&-")
			case ModeBoth:
				sb.WriteString(" 2>&1")
			}
		}
	}
	return sb.String()
}

// renderStage renders one stage with its environment assignments and
// working directory, shell-quoted.
func renderStage(c *Cmd) string {
	parts := make([]string, 0, len(c.args)+len(c.env)+3)
	if c.clearEnv {
		parts = append(parts, "env", "-i")
	}
	for _, v := range c.env {
		parts = append(parts, v.Key+"="+shellutil.Quote(v.Value))
	}
	parts = append(parts, shellutil.Quote(c.program))
	for _, arg := range c.args {
		parts = append(parts, shellutil.Quote(arg))
	}
	s := strings.Join(parts, " ")
	if c.dir != "" {
		s = "(cd " + shellutil.Quote(c.dir) + " && " + s + ")"
	}
	return s
}
