// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package taskfile

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Taskfile is the root of a parsed task definition file.
type Taskfile struct {
	// Version identifies the taskfile format; informational for now.
	Version string `yaml:"version,omitempty"`

	// Env applies to every task, overridden by task-level entries.
	Env map[string]string `yaml:"env,omitempty"`

	// Tasks maps task names to their definitions.
	Tasks map[string]*Task `yaml:"tasks"`
}

// Task is one named unit of work: a sequence of steps with shared
// settings.
type Task struct {
	// Description is shown when listing tasks.
	Description string `yaml:"description,omitempty"`

	// Steps run in order; the first failure stops the task unless
	// ContinueOnError is set.
	Steps []Step `yaml:"steps"`

	// Env applies to every step, merged over the taskfile-level env.
	Env map[string]string `yaml:"env,omitempty"`

	// Dir is the working directory for every step.
	Dir string `yaml:"dir,omitempty"`

	// Quiet suppresses echo output for the task's commands.
	Quiet bool `yaml:"quiet,omitempty"`

	// ContinueOnError runs remaining steps after a failure and reports
	// the collected errors at the end.
	ContinueOnError bool `yaml:"continueOnError,omitempty"`

	// Retries re-runs a failing step up to this many extra times.
	Retries int `yaml:"retries,omitempty"`

	// RetryDelay is the initial backoff interval between retries,
	// written in Go duration syntax ("500ms", "2s").
	RetryDelay Duration `yaml:"retryDelay,omitempty"`
}

// Duration parses YAML duration strings like "2s" or "500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Step is one command within a task. Exactly one of Program, Run, or
// Script must be set.
type Step struct {
	// Program runs an executable directly with Args, no shell involved.
	Program string   `yaml:"program,omitempty"`
	Args    []string `yaml:"args,omitempty"`

	// Run passes a command line to the platform shell.
	Run string `yaml:"run,omitempty"`

	// Script runs a script file; the interpreter is detected from the
	// file's extension and shebang.
	Script string `yaml:"script,omitempty"`

	// Input is literal stdin for the step.
	Input string `yaml:"input,omitempty"`
}

// Load parses and validates taskfile content.
func Load(data []byte) (*Taskfile, error) {
	var tf Taskfile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("taskfile: failed to parse: %w", err)
	}
	if err := tf.validate(); err != nil {
		return nil, err
	}
	return &tf, nil
}

// LoadFile reads and parses a taskfile from disk.
func LoadFile(path string) (*Taskfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taskfile: failed to read %s: %w", path, err)
	}
	return Load(data)
}

// Names returns the task names in sorted order.
func (tf *Taskfile) Names() []string {
	names := make([]string, 0, len(tf.Tasks))
	for name := range tf.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tf *Taskfile) validate() error {
	if len(tf.Tasks) == 0 {
		return fmt.Errorf("taskfile: no tasks defined")
	}
	for name, task := range tf.Tasks {
		if task == nil || len(task.Steps) == 0 {
			return fmt.Errorf("taskfile: task %q has no steps", name)
		}
		if task.Retries < 0 {
			return fmt.Errorf("taskfile: task %q has negative retries", name)
		}
		for i, step := range task.Steps {
			if err := step.validate(); err != nil {
				return fmt.Errorf("taskfile: task %q step %d: %w", name, i, err)
			}
		}
	}
	return nil
}

func (s Step) validate() error {
	set := 0
	if s.Program != "" {
		set++
	}
	if s.Run != "" {
		set++
	}
	if s.Script != "" {
		set++
	}
	switch {
	case set == 0:
		return fmt.Errorf("one of program, run, or script is required")
	case set > 1:
		return fmt.Errorf("program, run, and script are mutually exclusive")
	}
	if s.Program == "" && len(s.Args) > 0 {
		return fmt.Errorf("args requires program")
	}
	return nil
}
