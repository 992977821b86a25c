package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
	"github.com/alexisbeaulieu97/floatkit/pkg/diff"
	fkerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

type placeOptions struct {
	anchor    string
	floating  string
	viewport  string
	placement string
	strategy  string
	offset    string
	arrow     bool
	arrowSize float64
	margin    float64
	format    string
	expect    string
}

func newPlaceCmd(app *AppContext) *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute one placement and print the rendering contract",
		Example: `  floatkit place --anchor 350,290,100,20 --floating 100x50 --viewport 800x600
  floatkit place --anchor 20,20 --floating 160x90 --placement right-start --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.place")

			in, err := buildInput(cmd, app, opts)
			if err != nil {
				logger.Error(ctx, "invalid placement input", "error", err)
				return err
			}

			result := placement.Compute(in)
			logger.Debug(ctx, "placement computed",
				"requested", in.Placement,
				"final", result.Placement,
				"strategy", in.Strategy,
				"x", result.X,
				"y", result.Y,
			)

			rendered, err := encodeOutput(result.Output(), opts.format)
			if err != nil {
				return err
			}

			if opts.expect != "" {
				return compareSnapshot(cmd, opts.expect, rendered)
			}
			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.anchor, "anchor", "", "Anchor rectangle x,y,w,h (or x,y for a virtual point)")
	flags.StringVar(&opts.floating, "floating", "", "Measured floating panel size WxH")
	flags.StringVar(&opts.viewport, "viewport", "", "Viewport size WxH (defaults to the terminal, else 800x600)")
	flags.StringVar(&opts.placement, "placement", "", "Requested placement (default from config)")
	flags.StringVar(&opts.strategy, "strategy", "", "fixed|flip|prevent-overflow|auto (default from config)")
	flags.StringVar(&opts.offset, "offset", "", "Offset MAIN or CROSS,MAIN")
	flags.BoolVar(&opts.arrow, "arrow", false, "Reserve space for an arrow (default from config)")
	flags.Float64Var(&opts.arrowSize, "arrow-size", 0, "Arrow reserve override in pixels")
	flags.Float64Var(&opts.margin, "margin", 0, "Safety margin in pixels (default from config)")
	flags.StringVarP(&opts.format, "format", "o", "json", "Output format (json|yaml)")
	flags.StringVar(&opts.expect, "expect", "", "Compare against a recorded snapshot and fail with a diff when it differs")

	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("floating")

	return cmd
}

func buildInput(cmd *cobra.Command, app *AppContext, opts *placeOptions) (placement.Input, error) {
	settings := app.Config.Settings()
	flags := cmd.Flags()

	anchor, err := parseRect("anchor", opts.anchor)
	if err != nil {
		return placement.Input{}, err
	}
	floating, err := parseSize("floating", opts.floating)
	if err != nil {
		return placement.Input{}, err
	}

	view := fallbackViewport
	if opts.viewport != "" {
		if view, err = parseSize("viewport", opts.viewport); err != nil {
			return placement.Input{}, err
		}
	} else if f, ok := cmd.OutOrStdout().(*os.File); ok {
		if size, ok := terminalSize(f); ok {
			view = size
		}
	}

	if flags.Changed("placement") {
		p := placement.Placement(opts.placement)
		if !p.Valid() {
			return placement.Input{}, fkerrors.NewInputError("placement", opts.placement, fmt.Errorf("want one of %v", placement.All()))
		}
		settings.Placement = p
	}
	if flags.Changed("strategy") {
		s := placement.Strategy(opts.strategy)
		if !s.Valid() {
			return placement.Input{}, fkerrors.NewInputError("strategy", opts.strategy, fmt.Errorf("want one of %v", placement.Strategies()))
		}
		settings.Strategy = s
	}
	if flags.Changed("offset") {
		if settings.Offset, err = parseOffset("offset", opts.offset); err != nil {
			return placement.Input{}, err
		}
	}
	if flags.Changed("arrow") {
		settings.Arrow.Enabled = opts.arrow
	}
	if flags.Changed("arrow-size") {
		settings.Arrow.Size = opts.arrowSize
	}
	if flags.Changed("margin") {
		if opts.margin < 0 {
			return placement.Input{}, fkerrors.NewInputError("margin", fmt.Sprint(opts.margin), fmt.Errorf("must not be negative"))
		}
		settings.Margin = opts.margin
	}

	return placement.Input{
		Anchor:       anchor,
		Floating:     floating,
		Viewport:     geometry.WindowViewport(view.Width, view.Height),
		Placement:    settings.Placement,
		Strategy:     settings.Strategy,
		Offset:       settings.Offset,
		Arrow:        settings.Arrow,
		Margin:       settings.Margin,
		ArrowReserve: settings.ArrowReserve,
	}, nil
}

func encodeOutput(out placement.Output, format string) ([]byte, error) {
	switch format {
	case "json", "":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode output: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return nil, fmt.Errorf("encode output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode output: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fkerrors.NewInputError("format", format, fmt.Errorf("want json or yaml"))
}

func compareSnapshot(cmd *cobra.Command, path string, got []byte) error {
	want, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	delta := diff.Lines(want, got, path, "computed")
	if delta == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "placement matches %s\n", path)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), delta)
	return fmt.Errorf("placement differs from snapshot %s", path)
}
