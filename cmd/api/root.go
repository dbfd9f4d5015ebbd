package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	cmd := &cobra.Command{
		Use:          "enrollment-api",
		Short:        "Course enrollment REST API",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	cmd.AddCommand(serve)
	cmd.AddCommand(newTokenCommand())
	return cmd
}
