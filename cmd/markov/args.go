package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errUsage is reported for a wrong number of positional arguments.
var errUsage = errors.New("USAGE: Incorrect num of arguments")

// usageArgs replaces cobra's argument count errors with the usage message.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Join(errUsage, err)
		}
		return nil
	}
}
