package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kinetic/internal/tui/showcase"
)

func newShowcaseCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "showcase",
		Short:       "Browse the catalog with live previews",
		Long:        `Launch the interactive showcase: pick a component on the left and play with its live preview on the right.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{ownsTerminal: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, app)
		},
	}

	return cmd
}

func runShowcase(cmd *cobra.Command, app *AppContext) error {
	log := app.Logger
	log.WithFields(map[string]any{"components": app.Catalog.Len()}).Info("launching showcase")

	m := showcase.New(app.Catalog, showcase.Options{
		Settings:  app.Settings,
		Clipboard: app.Clipboard,
		Logger:    log,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase execution failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}

	log.Info("showcase closed")
	return nil
}
