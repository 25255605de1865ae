// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package taskfile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// commandOptions holds the flag values for the task command.
type commandOptions struct {
	file string
	list bool
}

// registerFlags binds the task command's flags onto a flag set.
func (o *commandOptions) registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.file, "file", "f", "taskfile.yaml", "Path to the taskfile")
	flags.BoolVarP(&o.list, "list", "l", false, "List available tasks")
}

// NewCommand creates a cobra command that lists and runs tasks, for
// embedding in CLIs built on this module.
func NewCommand() *cobra.Command {
	opts := &commandOptions{}
	cmd := &cobra.Command{
		Use:   "task [name...]",
		Short: "Run tasks from a taskfile",
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := LoadFile(opts.file)
			if err != nil {
				return err
			}

			if opts.list || len(args) == 0 {
				for _, name := range tf.Names() {
					task := tf.Tasks[name]
					if task.Description != "" {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, task.Description)
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), name)
					}
				}
				return nil
			}

			runner := NewRunner(tf)
			for _, name := range args {
				if err := runner.Run(cmd.Context(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	opts.registerFlags(cmd.Flags())
	return cmd
}
