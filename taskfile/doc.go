// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package taskfile runs named tasks defined in a YAML file, mapping
// each step onto a command or pipeline execution.
//
// A taskfile looks like:
//
//	version: "1"
//	env:
//	  CGO_ENABLED: "0"
//	tasks:
//	  build:
//	    description: Build the project
//	    steps:
//	      - program: go
//	        args: [build, ./...]
//	  logs:
//	    dir: /var/log
//	    steps:
//	      - run: "grep ERROR app.log | tail -20"
//	  deploy:
//	    retries: 3
//	    retryDelay: 2s
//	    steps:
//	      - script: ./scripts/deploy.sh
//
// A step is exactly one of program+args (direct execution), run (a
// shell command line), or script (a file path; the interpreter is
// picked by extension and shebang). Task-level env, dir, and quiet
// apply to every step. Tasks with retries re-run failing steps with
// exponential backoff.
//
// NewCommand exposes the runner as a cobra command for CLIs built on
// this module.
package taskfile
