// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package taskfile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jongio/script-core/logutil"
	"github.com/jongio/script-core/pipeline"
	"github.com/jongio/script-core/shellutil"
)

var rlog = logutil.NewLogger("taskfile")

// Runner executes tasks from a loaded Taskfile.
type Runner struct {
	file *Taskfile
}

// NewRunner creates a Runner over the given taskfile.
func NewRunner(file *Taskfile) *Runner {
	return &Runner{file: file}
}

// Run executes the named task: every step in order, with the task's
// env, dir, quiet, retry, and continue-on-error settings applied.
func (r *Runner) Run(ctx context.Context, name string) error {
	task, ok := r.file.Tasks[name]
	if !ok {
		return fmt.Errorf("taskfile: unknown task %q", name)
	}

	log := rlog.WithTask(name)
	log.Debug("running task", "steps", len(task.Steps))

	var failures []error
	for i, step := range task.Steps {
		if err := r.runStep(ctx, task, step); err != nil {
			err = fmt.Errorf("task %q step %d: %w", name, i, err)
			if !task.ContinueOnError {
				return err
			}
			log.Warn("step failed, continuing", "step", i, "error", err)
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// runStep executes one step, re-running it with exponential backoff
// when the task allows retries.
func (r *Runner) runStep(ctx context.Context, task *Task, step Step) error {
	if task.Retries == 0 {
		return r.buildCmd(task, step).Run(ctx)
	}

	// Commands execute at most once, so each attempt builds a fresh one.
	operation := func() error {
		return r.buildCmd(task, step).Run(ctx)
	}

	b := backoff.NewExponentialBackOff()
	if task.RetryDelay > 0 {
		b.InitialInterval = time.Duration(task.RetryDelay)
	}
	return backoff.Retry(operation,
		backoff.WithMaxRetries(backoff.WithContext(b, ctx), uint64(task.Retries)))
}

// buildCmd maps a step onto a command with the task's settings applied.
func (r *Runner) buildCmd(task *Task, step Step) *pipeline.Cmd {
	var cmd *pipeline.Cmd
	switch {
	case step.Program != "":
		cmd = pipeline.New(step.Program, step.Args...)
	case step.Run != "":
		cmd = pipeline.New(shellutil.DefaultShell(), "-c", step.Run)
	default:
		cmd = pipeline.New(shellutil.DetectShell(step.Script), step.Script)
	}

	for _, key := range sortedKeys(r.file.Env) {
		cmd.Env(key, r.file.Env[key])
	}
	for _, key := range sortedKeys(task.Env) {
		cmd.Env(key, task.Env[key])
	}
	if task.Dir != "" {
		cmd.Dir(task.Dir)
	}
	if task.Quiet {
		cmd.Quiet()
	}
	if step.Input != "" {
		cmd.InputString(step.Input)
	}
	return cmd
}

// sortedKeys keeps env application order deterministic across runs.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
