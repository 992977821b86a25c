package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/tui/playground"
)

type playgroundOptions struct {
	text    string
	noArrow bool
}

func newPlaygroundCmd(app *AppContext) *cobra.Command {
	opts := &playgroundOptions{}

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Launch the interactive placement playground",
		Long: `Launch a terminal playground where a tooltip follows an anchor button.
Move the anchor with the arrow keys, scroll with page up/down and cycle
placements and strategies to watch the engine flip and clamp.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.playground")

			// The TUI owns the terminal; logs are held until it exits.
			buffer := logging.NewBuffer(0)
			defer buffer.Flush(logger)

			settings := app.Config.PlaygroundSettings()
			settings.Arrow.Enabled = !opts.noArrow

			width, height := 80, 24
			if size, ok := terminalSize(os.Stdout); ok {
				width, height = int(size.Width), int(size.Height)
			}

			model := playground.NewModel(ctx, playground.Options{
				Settings: settings,
				Throttle: app.Config.Throttle(),
				Logger:   buffer.Logger(),
				Window:   events.NewWindow(buffer.Logger()),
				Text:     opts.text,
				Width:    width,
				Height:   height,
			})
			defer model.Close()

			logger.Info(ctx, "launching playground", "width", width, "height", height)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				logger.Error(ctx, "playground execution failed", "error", err)
				return fmt.Errorf("failed to run playground: %w", err)
			}
			logger.Info(ctx, "playground closed", "buffered_logs", buffer.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Tooltip text")
	cmd.Flags().BoolVar(&opts.noArrow, "no-arrow", false, "Draw the tooltip without an arrow")

	return cmd
}
