package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "kinetic",
		Short:         "Kinetic is a catalog of animated terminal UI components",
		Long:          "Browse, preview and install animated Bubble Tea widgets: countdowns, loaders, particle buttons, carousels and more.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{ownsTerminal: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (default ~/.kinetic/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newShowcaseCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newCopyCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}
