package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "striker-validate",
		Short:         "Validate striker form inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "load environment variables from these .env files")

	root.AddCommand(
		newServeCmd(&envFiles),
		newCheckCmd(),
		newFormsCmd(),
	)
	return root
}
