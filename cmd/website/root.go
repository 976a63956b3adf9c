package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "website",
		Short: "gogetwell.ai landing site",
		Long: `Serves the gogetwell.ai landing page, its live channel and the contact API.

Configuration is read from the environment (and .env / .env.local when present).`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newContentCommand(),
		newVersionCommand(),
	)
	return root
}
